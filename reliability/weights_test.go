// SPDX-License-Identifier: MIT
package reliability_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/congeneric/reliability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// TestWeights_PivotIsOne checks d[pivot] == 1 exactly for every possible pivot.
func TestWeights_PivotIsOne(t *testing.T) {
	t.Parallel()

	fixtures := map[string][][]float64{
		"example3":   example3,
		"equal":      equalCov(4, 1, 0.5),
		"congeneric": congeneric(congenericLoadings, congenericErrors),
		"zero cov":   {{1, 2, 0}, {2, 5, 0}, {0, 0, 1}},
	}

	for name, rows := range fixtures {
		rows := rows
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			fg, err := reliability.NewFeldtGilmer(mustCov(t, rows))
			require.NoError(t, err)
			for p := 0; p < fg.N(); p++ {
				d := fg.Weights(p)
				require.Len(t, d, fg.N())
				assert.Equal(t, 1.0, d[p], "pivot %d", p)
			}
		})
	}
}

// TestWeights_Example3 verifies the worked example: every ratio is 2/2.
func TestWeights_Example3(t *testing.T) {
	t.Parallel()

	fg, err := reliability.NewFeldtGilmer(mustCov(t, example3))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, fg.Weights(fg.Pivot()))
}

// TestWeights_CongenericRecoversLoadingRatios verifies d[i] = l_i / l_pivot
// on an exact one-factor covariance matrix.
func TestWeights_CongenericRecoversLoadingRatios(t *testing.T) {
	t.Parallel()

	fg, err := reliability.NewFeldtGilmer(mustCov(t, congeneric(congenericLoadings, congenericErrors)))
	require.NoError(t, err)

	pivot := fg.Pivot()
	want := make([]float64, len(congenericLoadings))
	for i, l := range congenericLoadings {
		want[i] = l / congenericLoadings[pivot]
	}
	assert.True(t, floats.EqualApprox(want, fg.Weights(pivot), tol), "got %v want %v", fg.Weights(pivot), want)
}

// TestWeights_NonFinitePropagation engineers a zero denominator
// rowSum(ℓ) − a[i][ℓ] − a[ℓ][ℓ] == 0 and checks the weight is non-finite.
func TestWeights_NonFinitePropagation(t *testing.T) {
	t.Parallel()

	// Pivot 0 covaries only with item 1, so the denominator for i=1 is a[0][2] = 0.
	inf, err := reliability.NewFeldtGilmer(mustCov(t, [][]float64{
		{1, 2, 0},
		{2, 5, -1},
		{0, -1, 1},
	}))
	require.NoError(t, err)
	require.Equal(t, 0, inf.Pivot())
	d := inf.Weights(0)
	assert.True(t, math.IsInf(d[1], -1), "want -Inf, got %v", d[1])
	assert.Equal(t, -0.5, d[2])
	assert.True(t, math.IsNaN(inf.Value()))

	// Same structure with a zero numerator: 0/0.
	nan, err := reliability.NewFeldtGilmer(mustCov(t, [][]float64{
		{1, 2, 0},
		{2, 5, 0},
		{0, 0, 1},
	}))
	require.NoError(t, err)
	require.Equal(t, 0, nan.Pivot())
	d = nan.Weights(0)
	assert.True(t, math.IsNaN(d[1]), "want NaN, got %v", d[1])
	assert.Equal(t, 0.0, d[2])
	assert.NotPanics(t, func() { _ = nan.ItemDeleted() })
}

// TestWeightsExcluding leaves the excluded slot at zero.
func TestWeightsExcluding(t *testing.T) {
	t.Parallel()

	fg, err := reliability.NewFeldtGilmer(mustCov(t, example3))
	require.NoError(t, err)

	for k := 0; k < fg.N(); k++ {
		p := fg.PivotExcluding(k)
		d := fg.WeightsExcluding(p, k)
		require.Len(t, d, 3)
		assert.Equal(t, 0.0, d[k], "excluded slot %d", k)
		assert.Equal(t, 1.0, d[p], "pivot slot %d", p)
		for i := range d {
			if i != k {
				assert.Equal(t, 1.0, d[i])
			}
		}
	}

	single, err := reliability.NewFeldtGilmer(mustCov(t, [][]float64{{2}}))
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, single.WeightsExcluding(single.PivotExcluding(0), 0))
}
