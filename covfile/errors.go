// SPDX-License-Identifier: MIT
package covfile

import "errors"

var (
	// ErrUnknownFormat indicates a format name or file extension that is not supported.
	ErrUnknownFormat = errors.New("covfile: unknown document format")

	// ErrLabelCount indicates that the number of item labels differs from the matrix order.
	ErrLabelCount = errors.New("covfile: label count does not match matrix order")

	// ErrSyntax indicates a document that could not be parsed.
	ErrSyntax = errors.New("covfile: malformed document")
)
