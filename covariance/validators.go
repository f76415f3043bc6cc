// SPDX-License-Identifier: MIT
// Package: covariance
//
// Purpose:
//  - Provide a single, canonical source of truth for the checks a covariance
//    matrix must pass before any reliability kernel reads it.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the strict upper triangle only.
//
// Note:
//  - Validators accept any gonum mat.Matrix; they assume a non-nil argument
//    unless stated otherwise.

package covariance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateRows checks that rows form a non-empty square table and returns n.
// Complexity: O(n).
func validateRows(rows [][]float64) (int, error) {
	n := len(rows)
	if n == 0 {
		return 0, validatorErrorf("validateRows", ErrEmpty)
	}
	for i := 0; i < n; i++ {
		if len(rows[i]) != n {
			return 0, validatorErrorf(fmt.Sprintf("validateRows: row %d has %d entries, want %d", i, len(rows[i]), n), ErrNonSquare)
		}
	}

	return n, nil
}

// ValidateSquare checks that a is non-nil, non-empty and square.
//
// Errors: ErrNilMatrix, ErrEmpty, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(a mat.Matrix) error {
	if a == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return validatorErrorf("ValidateSquare", ErrEmpty)
	}
	if r != c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateFinite checks that every entry of a is neither NaN nor ±Inf.
//
// Errors: ErrNaNInf with the offending coordinates in the message.
// Complexity: O(r*c).
func ValidateFinite(a mat.Matrix) error {
	r, c := a.Dims()
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v = a.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateSymmetric checks |a[i,j] - a[j,i]| ≤ eps for all i<j.
//
// Inputs: square a; eps ≥ 0 (a negative eps is flipped to its absolute value).
// Errors: ErrNonSquare on shape, ErrNaNInf on a non-finite eps, ErrAsymmetry on violation.
// Complexity: O(n²) time, O(1) space.
//
// Notes:
//   - A NaN entry never compares greater than eps, so NaN pairs pass here;
//     ValidateFinite is the guard for them.
func ValidateSymmetric(a mat.Matrix, eps float64) error {
	r, c := a.Dims()
	if r != c {
		return validatorErrorf("ValidateSymmetric", ErrNonSquare)
	}
	if math.IsNaN(eps) || math.IsInf(eps, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	if eps < 0 {
		eps = -eps
	}

	// 0×0 and 1×1 are trivially symmetric.
	if r <= 1 {
		return nil
	}

	var i, j int
	for i = 0; i < r; i++ {
		for j = i + 1; j < r; j++ {
			if math.Abs(a.At(i, j)-a.At(j, i)) > eps {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateVariances checks that every diagonal entry is non-negative.
//
// Errors: ErrNegativeVariance naming the first offending item.
// Complexity: O(n).
func ValidateVariances(a mat.Matrix) error {
	r, c := a.Dims()
	n := min(r, c)
	for i := 0; i < n; i++ {
		if a.At(i, i) < 0 {
			return validatorErrorf(fmt.Sprintf("ValidateVariances: item %d", i), ErrNegativeVariance)
		}
	}

	return nil
}

// validatePermutation checks that order is a permutation of 0..n-1.
// Complexity: O(n) time, O(n) space.
func validatePermutation(order []int, n int) error {
	if len(order) != n {
		return validatorErrorf("validatePermutation: length", ErrBadPermutation)
	}
	seen := make([]bool, n)
	for _, idx := range order {
		if idx < 0 || idx >= n || seen[idx] {
			return validatorErrorf(fmt.Sprintf("validatePermutation: index %d", idx), ErrBadPermutation)
		}
		seen[idx] = true
	}

	return nil
}
