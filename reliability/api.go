// SPDX-License-Identifier: MIT
// Package reliability: public API facades.
//
// Evaluate and EvaluateItemDeleted are the two operations collaborators need;
// both delegate to FeldtGilmer without changing its numeric policy.

package reliability

import (
	"math"

	"github.com/katalvlaran/congeneric/covariance"
)

// Evaluate returns the Feldt-Gilmer coefficient of cov.
// The coefficient may be NaN (fewer than MinItems items, degenerate weights)
// or ±Inf; the error is reserved for a nil matrix.
func Evaluate(cov *covariance.Matrix, opts ...Option) (float64, error) {
	fg, err := NewFeldtGilmer(cov, opts...)
	if err != nil {
		return math.NaN(), err
	}

	return fg.Value(), nil
}

// EvaluateItemDeleted returns the item-deleted coefficients of cov, one per
// item in matrix order.
func EvaluateItemDeleted(cov *covariance.Matrix, opts ...Option) ([]float64, error) {
	fg, err := NewFeldtGilmer(cov, opts...)
	if err != nil {
		return nil, err
	}

	return fg.ItemDeleted(), nil
}
