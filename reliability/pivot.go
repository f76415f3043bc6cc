// SPDX-License-Identifier: MIT
// Package: reliability
//
// Purpose:
//   - Select the pivot item ℓ that anchors the Feldt-Gilmer weight ratios:
//     the item whose covariances with the other items sum highest.
//
// Determinism:
//   - Left-to-right scan with strict ">" ⇒ ties go to the lowest index.
//   - The running maximum is seeded with -Inf, never with a "smallest
//     positive" sentinel, so all-negative covariance rows still select
//     their true maximum.

package reliability

import (
	"math"

	"github.com/katalvlaran/congeneric/covariance"
)

// noItem marks the absence of a pivot (every item excluded).
const noItem = -1

// argmaxOffDiagonal returns the index maximising Σ_{j≠i} a[i][j], skipping
// item excluded (pass noItem to skip nothing).
//
// Implementation:
//   - Stage 1: scan candidates in index order, tracking the first candidate.
//   - Stage 2: keep the strictly greater value; ties keep the earlier index.
//   - Stage 3: if no value beat -Inf (all NaN), fall back to the first candidate.
//
// Returns noItem only when no candidate exists (n == 1 with that item excluded).
// Complexity: O(n) time, O(1) space (row sums are cached by covariance.Matrix).
func argmaxOffDiagonal(cov *covariance.Matrix, excluded int) int {
	var (
		n       = cov.N()
		best    = noItem
		first   = noItem
		bestVal = math.Inf(-1)
		v       float64
	)
	for i := 0; i < n; i++ {
		if i == excluded {
			continue
		}
		if first == noItem {
			first = i
		}
		v = cov.OffDiagonalSum(i)
		if v > bestVal {
			best, bestVal = i, v
		}
	}
	if best == noItem {
		return first
	}

	return best
}
