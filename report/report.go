// SPDX-License-Identifier: MIT
package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/congeneric/reliability"
)

// defaultLabelFormat names unlabelled items, 1-based.
const defaultLabelFormat = "item%d"

// Coefficient is a reliability value that may be NaN or ±Inf.
// JSON has no literal for those, so they marshal as null.
type Coefficient float64

// MarshalJSON encodes finite values with the shortest exact representation
// and non-finite values as null.
func (c Coefficient) MarshalJSON() ([]byte, error) {
	v := float64(c)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}

	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

// Row is one line of the item-deleted table.
type Row struct {
	Item        int         `json:"item" yaml:"item"`
	Label       string      `json:"label" yaml:"label"`
	Reliability Coefficient `json:"reliability" yaml:"reliability"`
}

// Report is the structured result of one evaluation, ready to render.
type Report struct {
	Method      string      `json:"method" yaml:"method"`
	Items       int         `json:"items" yaml:"items"`
	Coefficient Coefficient `json:"coefficient" yaml:"coefficient"`
	Aggregation string      `json:"aggregation,omitempty" yaml:"aggregation,omitempty"`
	ItemDeleted []Row       `json:"item_deleted" yaml:"item_deleted"`
}

// aggregator is implemented by estimators with a selectable item-deleted aggregation.
type aggregator interface {
	Aggregation() reliability.Aggregation
}

// Build evaluates est and collects the coefficient and the item-deleted
// table. labels may be shorter than the item count; missing labels default to
// item1, item2, ...
//
// Errors: ErrNilEstimator, ErrLabelCount.
func Build(est reliability.Estimator, labels []string) (*Report, error) {
	if est == nil {
		return nil, ErrNilEstimator
	}
	n := est.N()
	if len(labels) > n {
		return nil, fmt.Errorf("%d labels for %d items: %w", len(labels), n, ErrLabelCount)
	}

	r := &Report{
		Method:      est.Method().String(),
		Items:       n,
		Coefficient: Coefficient(est.Value()),
		ItemDeleted: make([]Row, n),
	}
	if a, ok := est.(aggregator); ok {
		r.Aggregation = a.Aggregation().String()
	}

	for i, v := range est.ItemDeleted() {
		label := fmt.Sprintf(defaultLabelFormat, i+1)
		if i < len(labels) && labels[i] != "" {
			label = labels[i]
		}
		r.ItemDeleted[i] = Row{Item: i, Label: label, Reliability: Coefficient(v)}
	}

	return r, nil
}
