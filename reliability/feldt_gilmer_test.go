// SPDX-License-Identifier: MIT
package reliability_test

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/congeneric/covariance"
	"github.com/katalvlaran/congeneric/reliability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// TestValue_TooFewItems verifies the NaN sentinel below MinItems.
func TestValue_TooFewItems(t *testing.T) {
	t.Parallel()

	for _, rows := range [][][]float64{
		{{2}},
		{{1, 0.5}, {0.5, 1}},
	} {
		fg, err := reliability.NewFeldtGilmer(mustCov(t, rows))
		require.NoError(t, err)
		assert.True(t, math.IsNaN(fg.Value()), "n=%d", len(rows))
	}
}

// TestValue_EqualCovariance checks the closed form n·c / (v + (n−1)·c).
func TestValue_EqualCovariance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want float64
	}{
		{3, 0.75},
		{4, 0.8},
		{5, 2.5 / 3.0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(fmt.Sprintf("n=%d", tc.n), func(t *testing.T) {
			t.Parallel()
			fg, err := reliability.NewFeldtGilmer(mustCov(t, equalCov(tc.n, 1.0, 0.5)))
			require.NoError(t, err)
			require.Equal(t, 0, fg.Pivot())
			assert.InDelta(t, tc.want, fg.Value(), tol, "n=%d", tc.n)
		})
	}
}

// TestValue_Example3 verifies the worked example: (9/6)·(12/27) = 2/3.
func TestValue_Example3(t *testing.T) {
	t.Parallel()

	fg, err := reliability.NewFeldtGilmer(mustCov(t, example3))
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, fg.Value(), 1e-4)
	assert.InDelta(t, 0.6667, fg.Value(), 5e-5)
}

// TestValue_CongenericRecoversReliability verifies that on an exact one-factor
// matrix the coefficient equals the true composite reliability.
func TestValue_CongenericRecoversReliability(t *testing.T) {
	t.Parallel()

	fg, err := reliability.NewFeldtGilmer(mustCov(t, congeneric(congenericLoadings, congenericErrors)))
	require.NoError(t, err)
	assert.InDelta(t, congenericReliability(congenericLoadings, congenericErrors, -1), fg.Value(), tol)
}

// TestItemDeleted_Length verifies one coefficient per item for every n.
func TestItemDeleted_Length(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 6; n++ {
		for _, agg := range []reliability.Aggregation{reliability.AggregationPerItem, reliability.AggregationLegacy} {
			fg, err := reliability.NewFeldtGilmer(mustCov(t, equalCov(n, 1, 0.3)), reliability.WithAggregation(agg))
			require.NoError(t, err)
			assert.Len(t, fg.ItemDeleted(), n, "n=%d %s", n, agg)
		}
	}
}

// TestItemDeleted_Example3 checks the per-item reference values
// 2·(4/15), 2·(4/14), 2·(4/13).
func TestItemDeleted_Example3(t *testing.T) {
	t.Parallel()

	fg, err := reliability.NewFeldtGilmer(mustCov(t, example3))
	require.NoError(t, err)
	require.Equal(t, reliability.AggregationPerItem, fg.Aggregation())

	want := []float64{8.0 / 15.0, 4.0 / 7.0, 8.0 / 13.0}
	got := fg.ItemDeleted()
	assert.True(t, floats.EqualApprox(want, got, tol), "got %v want %v", got, want)
}

// TestItemDeleted_CongenericRecoversReliability verifies that each per-item
// estimate equals the true reliability of the shortened test.
func TestItemDeleted_CongenericRecoversReliability(t *testing.T) {
	t.Parallel()

	fg, err := reliability.NewFeldtGilmer(mustCov(t, congeneric(congenericLoadings, congenericErrors)))
	require.NoError(t, err)

	got := fg.ItemDeleted()
	for k := range congenericLoadings {
		assert.InDelta(t, congenericReliability(congenericLoadings, congenericErrors, k), got[k], 1e-10, "item %d", k)
	}
}

// TestItemDeleted_Legacy reproduces the historical accumulation: the running
// sums only ever read the deleted item's zero weight, so every value is NaN.
func TestItemDeleted_Legacy(t *testing.T) {
	t.Parallel()

	fixtures := [][][]float64{
		example3,
		equalCov(5, 1, 0.5),
		congeneric(congenericLoadings, congenericErrors),
	}
	for _, rows := range fixtures {
		fg, err := reliability.NewFeldtGilmer(mustCov(t, rows), reliability.WithAggregation(reliability.AggregationLegacy))
		require.NoError(t, err)
		for k, v := range fg.ItemDeleted() {
			assert.True(t, math.IsNaN(v), "item %d: %v", k, v)
		}
		// The overall coefficient is unaffected by the aggregation option.
		plain, err := reliability.NewFeldtGilmer(mustCov(t, rows))
		require.NoError(t, err)
		assert.Equal(t, plain.Value(), fg.Value())
	}
}

// TestPermutationInvariance reorders items and checks that every coefficient
// follows its item.
func TestPermutationInvariance(t *testing.T) {
	t.Parallel()

	base := mustCov(t, congeneric(congenericLoadings, congenericErrors))
	fg, err := reliability.NewFeldtGilmer(base)
	require.NoError(t, err)
	value := fg.Value()
	deleted := fg.ItemDeleted()

	orders := [][]int{
		{4, 3, 2, 1, 0},
		{2, 0, 4, 1, 3},
		{1, 2, 3, 4, 0},
	}
	for _, order := range orders {
		perm, err := base.Permute(order)
		require.NoError(t, err)
		pfg, err := reliability.NewFeldtGilmer(perm)
		require.NoError(t, err)

		assert.InDelta(t, value, pfg.Value(), tol, "order %v", order)
		assert.Equal(t, order[pfg.Pivot()], fg.Pivot(), "pivot follows its item")

		pdel := pfg.ItemDeleted()
		for p, src := range order {
			assert.InDelta(t, deleted[src], pdel[p], tol, "order %v slot %d", order, p)
		}
	}
}

// TestFeldtGilmer_DoesNotMutateMatrix checks the read-only contract.
func TestFeldtGilmer_DoesNotMutateMatrix(t *testing.T) {
	t.Parallel()

	cov := mustCov(t, example3)
	before := cov.Rows()
	fg, err := reliability.NewFeldtGilmer(cov)
	require.NoError(t, err)

	_ = fg.Value()
	_ = fg.ItemDeleted()
	_ = fg.Weights(1)

	assert.Equal(t, before, cov.Rows())
	assert.Same(t, cov, fg.Covariance())
}

// TestFeldtGilmer_ConcurrentUse runs many evaluations over one estimator.
func TestFeldtGilmer_ConcurrentUse(t *testing.T) {
	t.Parallel()

	fg, err := reliability.NewFeldtGilmer(mustCov(t, congeneric(congenericLoadings, congenericErrors)))
	require.NoError(t, err)
	want := fg.Value()

	var wg sync.WaitGroup
	results := make([]float64, 16)
	for g := range results {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			_ = fg.ItemDeleted()
			results[g] = fg.Value()
		}(g)
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

// TestNewFeldtGilmer_Nil checks the only structural error.
func TestNewFeldtGilmer_Nil(t *testing.T) {
	t.Parallel()

	fg, err := reliability.NewFeldtGilmer(nil)
	assert.ErrorIs(t, err, reliability.ErrNilMatrix)
	assert.Nil(t, fg)
}

// TestNewFeldtGilmer_RelaxedPolicy lets a NaN entry through construction and
// checks it propagates instead of panicking.
func TestNewFeldtGilmer_RelaxedPolicy(t *testing.T) {
	t.Parallel()

	cov := mustCov(t, [][]float64{
		{1, math.NaN(), 0.5},
		{math.NaN(), 1, 0.5},
		{0.5, 0.5, 1},
	}, covariance.WithNoValidateNaNInf())
	fg, err := reliability.NewFeldtGilmer(cov)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(fg.Value()))
	assert.Len(t, fg.ItemDeleted(), 3)
}

// TestMethod covers the estimator metadata.
func TestMethod(t *testing.T) {
	t.Parallel()

	fg, err := reliability.NewFeldtGilmer(mustCov(t, example3))
	require.NoError(t, err)
	assert.Equal(t, reliability.FeldtGilmerMethod, fg.Method())
	assert.Equal(t, "Feldt-Gilmer", fg.Method().String())
	assert.Equal(t, "Method(7)", reliability.Method(7).String())
}
