// SPDX-License-Identifier: MIT

// Package congeneric estimates the reliability of tests whose items measure
// one trait with unequal loadings: the Feldt-Gilmer coefficient and its
// item-deleted variants, computed from an item covariance matrix.
//
// 🚀 What is congeneric?
//
//	A small numeric library plus a CLI:
//		• covariance/  immutable, validated symmetric matrices on gonum mat.SymDense
//		• reliability/ Feldt-Gilmer estimator, pivot selection, weight vectors
//		• report/      summary line and item-deleted table as text, JSON or YAML
//		• covfile/     YAML, JSON and CSV matrix documents
//		• config/      CLI settings file
//		• logging/     slog handler for terminal output
//		• cli/         urfave/cli application behind cmd/congeneric
//
// ✨ Why the Feldt-Gilmer coefficient?
//
//   - Coefficient alpha assumes essentially tau-equivalent items and
//     underestimates reliability when loadings differ.
//   - Feldt-Gilmer weights each item by its loading relative to a pivot item,
//     recovering (Σλ)²/σ²_X exactly for congeneric covariance structures.
//
// Quick example:
//
//	cov, _ := covariance.New([][]float64{{4, 2, 2}, {2, 5, 2}, {2, 2, 6}})
//	rho, _ := reliability.Evaluate(cov)       // 0.6667
//	del, _ := reliability.EvaluateItemDeleted(cov) // [0.5333 0.5714 0.6154]
//
// From the shell:
//
//	congeneric evaluate --deleted items.csv
//
//	go install github.com/katalvlaran/congeneric/cmd/congeneric@latest
package congeneric
