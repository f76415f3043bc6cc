// SPDX-License-Identifier: MIT

// Package covfile reads and writes covariance matrix documents.
//
// Three encodings are understood:
//
//	# YAML (.yaml, .yml)
//	items: [q1, q2, q3]
//	covariance:
//	  - [4, 2, 2]
//	  - [2, 5, 2]
//	  - [2, 2, 6]
//
//	# JSON (.json)
//	{"items": ["q1", "q2", "q3"], "covariance": [[4, 2, 2], [2, 5, 2], [2, 2, 6]]}
//
//	# CSV (.csv); optional header row, '#' comments
//	q1,q2,q3
//	4,2,2
//	...
//
// Score documents carry raw item scores instead (one row per examinee) under
// a "scores" key, or as plain CSV rows; DecodeScores and LoadScores turn them
// into a sample covariance matrix.
//
// The items list is optional. When present it must name every row.
// Matrix validation is delegated to covariance.New; its options pass through
// Decode and Load unchanged.
package covfile
