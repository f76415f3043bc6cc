// SPDX-License-Identifier: MIT
package reliability

// DefaultAggregation is the item-deleted aggregation used when no option is given.
const DefaultAggregation = AggregationPerItem

const panicAggregationInvalid = "reliability: WithAggregation: unknown aggregation"

// Option configures an estimator.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	aggregation Aggregation
}

// WithAggregation selects the item-deleted aggregation.
// Panics on values other than AggregationPerItem and AggregationLegacy;
// parse user input with ParseAggregation first.
func WithAggregation(a Aggregation) Option {
	if a != AggregationPerItem && a != AggregationLegacy {
		panic(panicAggregationInvalid)
	}

	return func(o *Options) { o.aggregation = a }
}

func gatherOptions(opts ...Option) Options {
	o := Options{aggregation: DefaultAggregation}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
