// SPDX-License-Identifier: MIT

// Package report turns a reliability estimator into presentable output.
//
// 🚀 What it does
//
//	Build evaluates an estimator once and freezes the result into a Report:
//	method name, item count, coefficient, aggregation and one row per item
//	with the coefficient obtained when that item is deleted.
//
// ✨ Renderings
//
//   - Text: the classic two-part layout. A summary line
//     ("Feldt-Gilmer = 0.67") and a 56-column table with 4-decimal values.
//   - JSON: indented; NaN and ±Inf become null.
//   - YAML: NaN and ±Inf become .nan and .inf.
//
// ⚙️ Usage
//
//	fg, _ := reliability.NewFeldtGilmer(cov)
//	rep, err := report.Build(fg, []string{"q1", "q2", "q3"})
//	if err != nil { ... }
//	_ = rep.Write(os.Stdout, report.FormatText)
package report
