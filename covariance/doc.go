// SPDX-License-Identifier: MIT

// Package covariance provides the immutable item covariance matrix consumed
// by the reliability estimators.
//
// A Matrix is built once, validated once and never mutated:
//
//   - New(rows, opts...)          from a row-major [][]float64 table.
//   - FromSymmetric(s, opts...)   from any gonum mat.Symmetric.
//   - FromScores(scores, opts...) sample covariance of raw item scores.
//
// Construction rejects empty, ragged or non-square tables, NaN/±Inf entries,
// asymmetric pairs (beyond WithEpsilon) and negative variances. Every failure
// wraps one of the sentinels in errors.go.
//
// The summaries the Feldt-Gilmer kernels read over and over (row sums, the
// diagonal sum, the composite variance) are computed at construction in a
// fixed i→j order and served in O(1).
//
// FromScores takes one row per examinee and one column per item and uses the
// unbiased (r−1) estimator from gonum/stat.
package covariance
