// SPDX-License-Identifier: MIT
// Package reliability_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic covariance fixtures with known closed-form
//     reliabilities.

package reliability_test

import (
	"testing"

	"github.com/katalvlaran/congeneric/covariance"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance for closed-form comparisons.
const tol = 1e-12

// example3 is the worked 3-item example: row sums 8, 9, 10; off-diagonal sums all 4.
var example3 = [][]float64{
	{4, 2, 2},
	{2, 5, 2},
	{2, 2, 6},
}

// congenericLoadings and congenericErrors define a 5-item congeneric test
// with distinct loadings (so no pivot ties) and distinct error variances.
var (
	congenericLoadings = []float64{0.9, 0.8, 0.7, 0.6, 0.5}
	congenericErrors   = []float64{0.3, 0.4, 0.5, 0.6, 0.7}
)

// mustCov builds a covariance.Matrix or fails the test.
func mustCov(t testing.TB, rows [][]float64, opts ...covariance.Option) *covariance.Matrix {
	t.Helper()
	m, err := covariance.New(rows, opts...)
	require.NoError(t, err)

	return m
}

// equalCov returns an n×n matrix with v on the diagonal and c elsewhere.
func equalCov(n int, v, c float64) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if i == j {
				rows[i][j] = v
			} else {
				rows[i][j] = c
			}
		}
	}

	return rows
}

// congeneric returns the population covariance of a one-factor model:
// a[i][j] = l_i·l_j for i≠j and a[i][i] = l_i² + e_i.
func congeneric(loadings, errVars []float64) [][]float64 {
	n := len(loadings)
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			rows[i][j] = loadings[i] * loadings[j]
		}
		rows[i][i] += errVars[i]
	}

	return rows
}

// congenericReliability is the true (omega) reliability of the unit-weighted
// composite of a one-factor model, optionally with item skip removed
// (pass -1 to keep every item): (Σl)² / ((Σl)² + Σe).
func congenericReliability(loadings, errVars []float64, skip int) float64 {
	var sumL, sumE float64
	for i := range loadings {
		if i == skip {
			continue
		}
		sumL += loadings[i]
		sumE += errVars[i]
	}

	return sumL * sumL / (sumL*sumL + sumE)
}
