// SPDX-License-Identifier: MIT

// Package covariance: functional configuration of the construction-time
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package covariance

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance of the symmetry check.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf rejects NaN/±Inf entries at construction.
	DefaultValidateNaNInf = true

	// DefaultAllowNegativeVariance rejects negative diagonal entries.
	DefaultAllowNegativeVariance = false
)

const panicEpsilonInvalid = "covariance: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps                   float64 // >= 0; DefaultEpsilon
	validateNaNInf        bool    // DefaultValidateNaNInf
	allowNegativeVariance bool    // DefaultAllowNegativeVariance
}

// WithEpsilon sets the absolute tolerance used by the symmetry check.
//
// Errors:
//   - Panics when eps is NaN, ±Inf or negative.
//
// Notes:
//   - Covariances estimated by external tools are often printed with a few
//     decimals; pass a looser eps (e.g. 1e-6) for such inputs.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithNoValidateNaNInf lets NaN/±Inf entries through construction.
// Non-finite entries then propagate into every derived coefficient.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithAllowNegativeVariance accepts negative diagonal entries.
// Intended for synthetic fixtures only; real covariance matrices never have them.
func WithAllowNegativeVariance() Option {
	return func(o *Options) { o.allowNegativeVariance = true }
}

// gatherOptions applies setters over the documented defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{
		eps:                   DefaultEpsilon,
		validateNaNInf:        DefaultValidateNaNInf,
		allowNegativeVariance: DefaultAllowNegativeVariance,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
