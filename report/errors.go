// SPDX-License-Identifier: MIT
package report

import "errors"

var (
	// ErrNilEstimator indicates that Build was called without an estimator.
	ErrNilEstimator = errors.New("report: nil estimator")

	// ErrLabelCount indicates more item labels than items.
	ErrLabelCount = errors.New("report: more labels than items")

	// ErrUnknownFormat indicates an unsupported output format name.
	ErrUnknownFormat = errors.New("report: unknown output format")
)
