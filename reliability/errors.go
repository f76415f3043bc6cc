// SPDX-License-Identifier: MIT
// Package reliability: sentinel error set.
//
// Numeric degeneracies (too few items, zero denominators) are NOT errors:
// they surface as NaN/±Inf coefficients. Errors are reserved for structural
// misuse of the API.

package reliability

import "errors"

var (
	// ErrNilMatrix indicates that a nil *covariance.Matrix was passed.
	ErrNilMatrix = errors.New("reliability: nil covariance matrix")

	// ErrUnknownAggregation indicates an unrecognised item-deleted aggregation name.
	ErrUnknownAggregation = errors.New("reliability: unknown aggregation")
)
