// SPDX-License-Identifier: MIT
package reliability_test

import (
	"testing"

	"github.com/katalvlaran/congeneric/covariance"
	"github.com/katalvlaran/congeneric/reliability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPivot covers the argmax and its first-occurrence tie-break.
func TestPivot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		want int
	}{
		{"all tied picks first", example3, 0},
		{"equal covariance picks first", equalCov(5, 1, 0.5), 0},
		{"tie between later items", [][]float64{
			{1, 0.5, 0.5},
			{0.5, 3, 2.5},
			{0.5, 2.5, 3},
		}, 1},
		{"all negative covariances", [][]float64{
			{1, -1, -2},
			{-1, 1, -0.5},
			{-2, -0.5, 1},
		}, 1},
		{"single item", [][]float64{{2}}, 0},
		{"congeneric largest loading", congeneric(congenericLoadings, congenericErrors), 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			fg, err := reliability.NewFeldtGilmer(mustCov(t, tc.rows))
			require.NoError(t, err)
			assert.Equal(t, tc.want, fg.Pivot())
		})
	}
}

// TestPivotExcluding verifies that the excluded item is never selected and
// that the scan is seeded below every finite value.
func TestPivotExcluding(t *testing.T) {
	t.Parallel()

	fg, err := reliability.NewFeldtGilmer(mustCov(t, example3))
	require.NoError(t, err)
	assert.Equal(t, 1, fg.PivotExcluding(0))
	assert.Equal(t, 0, fg.PivotExcluding(1))
	assert.Equal(t, 0, fg.PivotExcluding(2))

	// Off-diagonal sums are -3, -1.5, -2.5: without item 1 the best is item 2.
	neg, err := reliability.NewFeldtGilmer(mustCov(t, [][]float64{
		{1, -1, -2},
		{-1, 1, -0.5},
		{-2, -0.5, 1},
	}))
	require.NoError(t, err)
	assert.Equal(t, 2, neg.PivotExcluding(1))
	assert.Equal(t, 1, neg.PivotExcluding(0))

	single, err := reliability.NewFeldtGilmer(mustCov(t, [][]float64{{2}}))
	require.NoError(t, err)
	assert.Equal(t, -1, single.PivotExcluding(0))
}

// TestPivot_OutOfRangePanics verifies the programmer-error contract.
func TestPivot_OutOfRangePanics(t *testing.T) {
	t.Parallel()

	fg, err := reliability.NewFeldtGilmer(mustCov(t, example3))
	require.NoError(t, err)

	assert.PanicsWithValue(t, covariance.ErrOutOfRange, func() { fg.PivotExcluding(3) })
	assert.PanicsWithValue(t, covariance.ErrOutOfRange, func() { fg.Weights(-1) })
	assert.PanicsWithValue(t, covariance.ErrOutOfRange, func() { fg.WeightsExcluding(5, 0) })
	assert.NotPanics(t, func() { fg.WeightsExcluding(-1, 0) })
}
