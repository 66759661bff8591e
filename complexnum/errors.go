// SPDX-License-Identifier: MIT
// Package: numera/complexnum
//
// errors.go — sentinel errors for the complexnum package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Call sites attach context with %w via complexErrorf; the sentinel
//     definitions themselves carry no parameters.
//   • Floating-point specials (NaN, ±Inf) are values, never errors.

package complexnum

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates that a parameter lies outside the domain of
// the operation. ErrNegativeRadius and ErrInvalidDegree wrap it.
// Usage: if errors.Is(err, ErrInvalidArgument) { /* validate input */ }.
var ErrInvalidArgument = errors.New("complexnum: invalid argument")

// ErrUnsupported indicates that the operation has no implementation yet.
// It is distinct from a computational failure: retrying with other inputs
// does not help. Currently returned by Cbrt for every input.
var ErrUnsupported = errors.New("complexnum: unsupported operation")

// ErrNegativeRadius indicates a Polar radius below zero.
// It wraps ErrInvalidArgument.
var ErrNegativeRadius = fmt.Errorf("%w: negative radius", ErrInvalidArgument)

// ErrInvalidDegree indicates an NthRoot degree outside [1, MaxRootDegree].
// It wraps ErrInvalidArgument.
var ErrInvalidDegree = fmt.Errorf("%w: root degree out of range", ErrInvalidArgument)

// ErrCbrtNotImplemented is returned by Cbrt for every input.
// It wraps ErrUnsupported.
var ErrCbrtNotImplemented = fmt.Errorf("%w: principal cube root", ErrUnsupported)

// Method name constants used to prefix errors with the failing call.
const (
	// MethodPolar is the canonical name for the Polar constructor.
	MethodPolar = "Polar"
	// MethodNthRoot is the canonical name for Complex.NthRoot.
	MethodNthRoot = "NthRoot"
	// MethodCbrt is the canonical name for Complex.Cbrt.
	MethodCbrt = "Cbrt"
)

// complexErrorf wraps sentinel with the given method context.
// The result reads "<method>: <formatted message>: <sentinel>" and keeps
// sentinel reachable through errors.Is.
func complexErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
