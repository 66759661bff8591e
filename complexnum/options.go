// SPDX-License-Identifier: MIT

// Package complexnum: functional configuration for tolerance comparison.
// This file defines:
//   - documented defaults (constants),
//   - Option / Options (functional options with unexported state),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions, which resolves a list of options against the defaults.
package complexnum

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAbsTol is the absolute tolerance used by EqualApprox. It decides
	// comparisons near zero, where a relative tolerance is meaningless.
	DefaultAbsTol = 1e-12

	// DefaultRelTol is the relative tolerance used by EqualApprox, measured
	// against the larger modulus of the two operands.
	DefaultRelTol = 1e-9
)

const (
	panicAbsTolInvalid = "complexnum: WithAbsTol: tolerance must be finite, non-negative"
	panicRelTolInvalid = "complexnum: WithRelTol: tolerance must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates comparison options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	absTol float64 // >= 0; DefaultAbsTol
	relTol float64 // >= 0; DefaultRelTol
}

// WithAbsTol sets the absolute tolerance of EqualApprox.
// Panics if tol is negative, NaN or infinite.
func WithAbsTol(tol float64) Option {
	if !validTolerance(tol) {
		panic(panicAbsTolInvalid)
	}

	return func(o *Options) { o.absTol = tol }
}

// WithRelTol sets the relative tolerance of EqualApprox.
// Panics if tol is negative, NaN or infinite.
func WithRelTol(tol float64) Option {
	if !validTolerance(tol) {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.relTol = tol }
}

func validTolerance(tol float64) bool {
	return tol >= 0 && !math.IsInf(tol, 0)
}

// gatherOptions applies opts over the defaults, in order; later options win.
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{absTol: DefaultAbsTol, relTol: DefaultRelTol}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
