// SPDX-License-Identifier: MIT
// Package: reliability
//
// Purpose:
//   - Compute the Feldt-Gilmer coefficient of a congeneric test and its
//     item-deleted variants from an immutable covariance matrix.
//
// Formula (S = Σ d[i], Q = Σ d[i]², V = total variance, C = Σ item variances):
//
//	ρ_FG = (S² / (S² − Q)) · ((V − C) / V)
//
// Determinism & Performance:
//   - Every call recomputes pivot and weights from the cached row sums;
//     nothing is memoised on the estimator, which stays immutable.
//   - Value: O(n). ItemDeleted: O(n²).

package reliability

import (
	"math"

	"github.com/katalvlaran/congeneric/covariance"
)

// FeldtGilmer estimates congeneric reliability from a covariance matrix.
// The zero value is not usable; construct with NewFeldtGilmer.
type FeldtGilmer struct {
	cov  *covariance.Matrix
	opts Options
}

var _ Estimator = (*FeldtGilmer)(nil)

// NewFeldtGilmer binds an estimator to cov.
// Errors: ErrNilMatrix.
func NewFeldtGilmer(cov *covariance.Matrix, opts ...Option) (*FeldtGilmer, error) {
	if cov == nil {
		return nil, ErrNilMatrix
	}

	return &FeldtGilmer{cov: cov, opts: gatherOptions(opts...)}, nil
}

// Method reports FeldtGilmerMethod.
func (fg *FeldtGilmer) Method() Method { return FeldtGilmerMethod }

// N returns the number of items.
func (fg *FeldtGilmer) N() int { return fg.cov.N() }

// Aggregation reports the item-deleted aggregation in effect.
func (fg *FeldtGilmer) Aggregation() Aggregation { return fg.opts.aggregation }

// Covariance returns the matrix the estimator reads.
func (fg *FeldtGilmer) Covariance() *covariance.Matrix { return fg.cov }

// Pivot returns the item with the largest sum of covariances with the other
// items; ties go to the lowest index.
// Complexity: O(n).
func (fg *FeldtGilmer) Pivot() int { return argmaxOffDiagonal(fg.cov, noItem) }

// PivotExcluding is Pivot computed as if item k were absent: k is never
// selected. Row sums still include k's covariances. Returns -1 when k is the
// only item. Panics if k is out of range.
func (fg *FeldtGilmer) PivotExcluding(k int) int {
	fg.mustItem(k)

	return argmaxOffDiagonal(fg.cov, k)
}

// Weights returns the weight vector for pivot; d[pivot] is exactly 1.
// Entries may be ±Inf or NaN when a denominator vanishes.
// Panics if pivot is out of range.
func (fg *FeldtGilmer) Weights(pivot int) []float64 {
	fg.mustItem(pivot)

	return weightVector(fg.cov, pivot, noItem)
}

// WeightsExcluding returns the weight vector for pivot with item k left at
// zero. A pivot of -1 (see PivotExcluding) yields an all-zero vector.
// Panics if k, or a pivot other than -1, is out of range.
func (fg *FeldtGilmer) WeightsExcluding(pivot, k int) []float64 {
	fg.mustItem(k)
	if pivot != noItem {
		fg.mustItem(pivot)
	}

	return weightVector(fg.cov, pivot, k)
}

// Value computes the Feldt-Gilmer coefficient of the whole test.
// Implementation:
//   - Stage 1: n < MinItems ⇒ NaN (the weight denominator collapses).
//   - Stage 2: pivot ℓ = Pivot(); d = Weights(ℓ).
//   - Stage 3: S = Σd, Q = Σd²; V = total variance, C = diagonal sum.
//   - Stage 4: (S²/(S²−Q)) · ((V−C)/V).
//
// Behavior highlights:
//   - Degenerate denominators yield NaN or ±Inf; they are a defined numeric
//     outcome, not masked and not reported as an error.
//
// Determinism:
//   - Pure function of the matrix; fixed summation order.
//
// Complexity:
//   - Time O(n), Space O(n).
func (fg *FeldtGilmer) Value() float64 {
	if fg.cov.N() < MinItems {
		return math.NaN()
	}

	d := weightVector(fg.cov, fg.Pivot(), noItem)
	sum, sumSq := weightSums(d, noItem)

	return coefficient(sum, sumSq, fg.cov.TotalVariance(), fg.cov.DiagonalSum())
}

// ItemDeleted computes, for every item k, the coefficient of the test with k removed.
// Implementation:
//   - Stage 1: V_k = V − 2·Σ_{j≠k} a[k][j] − a[k][k]; C_k = C − a[k][k].
//   - Stage 2: ℓ_k = PivotExcluding(k); d_k = WeightsExcluding(ℓ_k, k).
//   - Stage 3: accumulate S_k, Q_k according to the Aggregation option.
//   - Stage 4: result[k] = (S_k²/(S_k²−Q_k)) · ((V_k−C_k)/V_k).
//
// Behavior highlights:
//   - No MinItems guard: very short tests degrade to NaN/±Inf per item.
//   - AggregationLegacy reproduces historical output bit for bit (NaN for
//     every item); see Aggregation.
//
// Returns:
//   - []float64 of length n, index-aligned with the matrix items.
//
// Complexity:
//   - Time O(n²), Space O(n) per item (one weight vector reused per k).
func (fg *FeldtGilmer) ItemDeleted() []float64 {
	var (
		n          = fg.cov.N()
		rel        = make([]float64, n)
		total      = fg.cov.TotalVariance()
		diag       = fg.cov.DiagonalSum()
		runningSum float64 // legacy only: never reset across k
		runningSq  float64 // legacy only: never reset across k
	)

	for k := 0; k < n; k++ {
		itemVariance := fg.cov.Variance(k)

		var itemCovariance float64
		for j := 0; j < n; j++ {
			if j != k {
				itemCovariance += fg.cov.Cov(k, j)
			}
		}
		itemCovariance *= 2

		adjustedTotal := total - itemCovariance - itemVariance
		adjustedComponent := diag - itemVariance

		d := weightVector(fg.cov, argmaxOffDiagonal(fg.cov, k), k)

		var sum, sumSq float64
		switch fg.opts.aggregation {
		case AggregationLegacy:
			for j := 0; j < n; j++ {
				if j != k {
					runningSum += d[k]
				}
				runningSq += d[k] * d[k]
			}
			sum, sumSq = runningSum, runningSq
		default:
			sum, sumSq = weightSums(d, k)
		}

		rel[k] = coefficient(sum, sumSq, adjustedTotal, adjustedComponent)
	}

	return rel
}

// coefficient evaluates (S²/(S²−Q)) · ((V−C)/V) without guarding any denominator.
func coefficient(sum, sumSq, observed, component float64) float64 {
	s2 := sum * sum

	return (s2 / (s2 - sumSq)) * ((observed - component) / observed)
}

// mustItem panics with covariance.ErrOutOfRange when i is not an item index.
func (fg *FeldtGilmer) mustItem(i int) {
	if i < 0 || i >= fg.cov.N() {
		panic(covariance.ErrOutOfRange)
	}
}
