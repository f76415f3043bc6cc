// SPDX-License-Identifier: MIT
// Package: reliability
//
// Purpose:
//   - Estimator surface and its enums (Method, Aggregation).

package reliability

import (
	"fmt"
	"strings"
)

// MinItems is the smallest test length for which the Feldt-Gilmer
// coefficient is defined; shorter tests yield NaN.
const MinItems = 3

// Method identifies a reliability coefficient.
type Method int

const (
	// FeldtGilmerMethod is the congeneric Feldt-Gilmer coefficient.
	FeldtGilmerMethod Method = iota
)

// String returns the display name of the method.
func (m Method) String() string {
	switch m {
	case FeldtGilmerMethod:
		return "Feldt-Gilmer"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Aggregation selects how the weight sums of the item-deleted coefficients
// are accumulated.
//
//   - AggregationPerItem: sums are reset for every deleted item k and run
//     over the retained items (default).
//   - AggregationLegacy: reproduces historical output: sums are carried
//     across items and read the deleted item's own (always zero) weight,
//     so every coefficient comes out NaN. Use only to match old reports.
type Aggregation int

const (
	// AggregationPerItem resets and accumulates per deleted item.
	AggregationPerItem Aggregation = iota

	// AggregationLegacy reproduces the historical running-sum accumulation.
	AggregationLegacy
)

const (
	aggregationPerItemName = "per-item"
	aggregationLegacyName  = "legacy"
)

// String returns the canonical name used by config files and the CLI.
func (a Aggregation) String() string {
	switch a {
	case AggregationPerItem:
		return aggregationPerItemName
	case AggregationLegacy:
		return aggregationLegacyName
	default:
		return fmt.Sprintf("Aggregation(%d)", int(a))
	}
}

// ParseAggregation maps a canonical name (case-insensitive) to an Aggregation.
// Errors: ErrUnknownAggregation.
func ParseAggregation(s string) (Aggregation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case aggregationPerItemName, "peritem", "":
		return AggregationPerItem, nil
	case aggregationLegacyName:
		return AggregationLegacy, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownAggregation)
	}
}

// Estimator is the read-only surface shared by reliability coefficients.
// Implementations are immutable and safe for concurrent use.
type Estimator interface {
	// Method identifies the coefficient.
	Method() Method

	// N returns the number of items.
	N() int

	// Value returns the coefficient for the whole test; NaN or ±Inf on
	// degenerate input.
	Value() float64

	// ItemDeleted returns, index-aligned with the items, the coefficient
	// of the test with that item removed.
	ItemDeleted() []float64
}
