// SPDX-License-Identifier: MIT

// Package reliability computes the Feldt-Gilmer reliability coefficient of a
// congeneric test, and the coefficient of the test with each item deleted.
//
// 🚀 What is Feldt-Gilmer?
//
//	A congeneric test has items that measure one latent trait with possibly
//	unequal loadings. Feldt and Gilmer estimate each item's loading relative
//	to a pivot item ℓ (the item most strongly related to the rest of the
//	test) from the covariance matrix alone, then plug the loading ratios D
//	into
//
//	  ρ_FG = (ΣD)² / ((ΣD)² − ΣD²) · (σ²_X − Σσ²_i) / σ²_X
//
//	where σ²_X is the composite score variance and Σσ²_i the sum of item
//	variances. With equal loadings every d is 1 and ρ_FG reduces to
//	coefficient alpha.
//
// ✨ Key features:
//   - pure functions over an immutable *covariance.Matrix; no hidden state
//   - exact first-occurrence tie-break for the pivot, -Inf seeded scan
//   - non-finite intermediate results propagate (NaN / ±Inf), never panic
//   - item-deleted estimates with a selectable aggregation (per-item or
//     the historical legacy running sum)
//
// ⚙️ Usage:
//
//	cov, err := covariance.New(rows)
//	if err != nil { ... }
//
//	rho, _ := reliability.Evaluate(cov)
//	deleted, _ := reliability.EvaluateItemDeleted(cov)
//
// Performance:
//
//   - Value:       O(n) time and space (row sums are cached by the matrix).
//   - ItemDeleted: O(n²) time, O(n) space per item.
package reliability
