// SPDX-License-Identifier: MIT
// Package: reliability
//
// Purpose:
//   - Derive the weight vector D: each item's factor loading relative to the
//     pivot ℓ under the congeneric model,
//
//       d[ℓ] = 1
//       d[i] = (rowSum(i) − a[i][ℓ] − a[i][i]) / (rowSum(ℓ) − a[i][ℓ] − a[ℓ][ℓ])
//
//     i.e. item i's covariance with the rest of the test (itself and ℓ
//     removed) over ℓ's covariance with the same rest (i and ℓ removed).
//
// Numeric policy:
//   - A zero denominator yields ±Inf or NaN in d[i]. It is propagated, never
//     trapped: callers must tolerate non-finite weights.

package reliability

import "github.com/katalvlaran/congeneric/covariance"

// weightVector fills the Feldt-Gilmer weights for pivot, leaving slot
// excluded at zero (pass noItem to keep every item). A noItem pivot yields
// an all-zero vector.
// Complexity: O(n) time, O(n) space.
func weightVector(cov *covariance.Matrix, pivot, excluded int) []float64 {
	n := cov.N()
	d := make([]float64, n)
	if pivot == noItem {
		return d
	}

	var (
		pivotRow = cov.RowSum(pivot)
		pivotVar = cov.Variance(pivot)
		cip      float64
	)
	for i := 0; i < n; i++ {
		switch i {
		case excluded:
			continue
		case pivot:
			d[i] = 1.0
		default:
			cip = cov.Cov(i, pivot)
			d[i] = (cov.RowSum(i) - cip - cov.Variance(i)) / (pivotRow - cip - pivotVar)
		}
	}

	return d
}

// weightSums returns Σ d[i] and Σ d[i]² over every i except skip, in index order.
func weightSums(d []float64, skip int) (sum, sumSq float64) {
	for i, v := range d {
		if i == skip {
			continue
		}
		sum += v
		sumSq += v * v
	}

	return sum, sumSq
}
