// SPDX-License-Identifier: MIT

// Package number defines the arithmetic capability shared by the numeric
// value types of numera, plus a few generic folds built on it.
//
// A type T satisfies Arithmetic[T] when it can add, subtract, multiply and
// divide by another T and negate itself, each call returning a new value.
// complexnum.Complex is the canonical implementation.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/numera/complexnum"
//	  "github.com/katalvlaran/numera/number"
//	)
//
//	total := number.Sum(complexnum.Zero, a, b, c)
//	p := number.Horner(z, complexnum.Zero, complexnum.One, complexnum.Zero, complexnum.One) // z²+1
//
// All helpers are pure and allocation-free; they never mutate their inputs.
package number
