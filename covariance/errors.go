// SPDX-License-Identifier: MIT
// Package covariance: sentinel error set.
// This file defines ONLY package-level sentinel errors. Constructors and
// accessors return these sentinels (optionally wrapped with a context tag via
// fmt.Errorf("...: %w", ErrX)); tests MUST match them with errors.Is.
//
// ERROR PRIORITY (enforced by New/FromSymmetric, covered in tests):
// empty -> shape -> NaN/Inf -> symmetry -> negative variance.

package covariance

import "errors"

var (
	// ErrEmpty is returned when the input holds no items (n == 0).
	ErrEmpty = errors.New("covariance: matrix has no items")

	// ErrNilMatrix indicates a nil source (mat.Symmetric or *Matrix) was passed.
	ErrNilMatrix = errors.New("covariance: nil matrix")

	// ErrNonSquare signals a ragged or non-square input.
	ErrNonSquare = errors.New("covariance: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf entry under the finite-value policy.
	ErrNaNInf = errors.New("covariance: NaN or Inf encountered")

	// ErrAsymmetry signals |a[i][j] - a[j][i]| > eps for some pair.
	ErrAsymmetry = errors.New("covariance: matrix is not symmetric within eps")

	// ErrNegativeVariance signals a negative diagonal entry.
	ErrNegativeVariance = errors.New("covariance: negative item variance")

	// ErrOutOfRange indicates an item index outside [0, n).
	ErrOutOfRange = errors.New("covariance: index out of range")

	// ErrTooFewObservations indicates a score table with fewer than two rows.
	ErrTooFewObservations = errors.New("covariance: need at least two observations")

	// ErrBadPermutation indicates that an ordering is not a permutation of 0..n-1.
	ErrBadPermutation = errors.New("covariance: invalid item permutation")
)
