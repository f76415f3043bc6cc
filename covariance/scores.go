// SPDX-License-Identifier: MIT
// Package: covariance
//
// Purpose:
//   - Build the item covariance matrix straight from raw scores: one row per
//     examinee, one column per item. The sample (r−1) covariance of columns
//     is computed by gonum/stat.

package covariance

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const ctxFromScores = "FromScores"

// FromScores computes the sample covariance matrix of the columns of scores.
// Implementation:
//   - Stage 1: shape check (at least one column, two rows, no ragged rows).
//   - Stage 2: finite check on the raw scores unless WithNoValidateNaNInf.
//   - Stage 3: stat.CovarianceMatrix (denominator r−1), then cache summaries.
//
// Errors:
//   - ErrEmpty, ErrTooFewObservations, ErrNonSquare (ragged rows), ErrNaNInf.
//
// Complexity:
//   - Time O(r·c²), Space O(r·c + c²).
//
// Notes:
//   - The symmetry check is skipped: the result is symmetric by construction.
func FromScores(scores [][]float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	r := len(scores)
	if r == 0 || len(scores[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromScores, ErrEmpty)
	}
	c := len(scores[0])
	if r < 2 {
		return nil, fmt.Errorf("%s: %d rows: %w", ctxFromScores, r, ErrTooFewObservations)
	}

	flat := make([]float64, 0, r*c)
	for i, row := range scores {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d scores, want %d: %w", ctxFromScores, i, len(row), c, ErrNonSquare)
		}
		flat = append(flat, row...)
	}
	x := mat.NewDense(r, c, flat)

	if o.validateNaNInf {
		if err := ValidateFinite(x); err != nil {
			return nil, fmt.Errorf("%s: %w", ctxFromScores, err)
		}
	}

	var sym mat.SymDense
	stat.CovarianceMatrix(&sym, x, nil)

	return newFromSym(&sym, o), nil
}
