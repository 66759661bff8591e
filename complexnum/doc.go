// SPDX-License-Identifier: MIT

// Package complexnum implements an immutable double-precision complex number
// with elementary and transcendental operations.
//
// 🚀 What is a Complex?
//
//	A pair (re, im) of float64 components representing re + im·i.
//	Values are never mutated: every operation returns a new Complex,
//	so a Complex can be copied, shared and used from many goroutines
//	without synchronization.
//
// ✨ Key features:
//   - arithmetic with complex and real operands (Add / AddReal, …)
//   - polar construction, modulus, principal argument, conjugate, signum
//   - principal-branch Exp, Log, LogBase, Pow and Sqrt; all n-th roots
//   - trigonometric and hyperbolic families composed from Exp, plus Asin
//   - bit-pattern Equal and a matching Hash, tolerance-based EqualApprox
//   - JVM-style String rendering ("1.0+1.0i", "not a number", "infinity")
//
// Branch cuts:
//
//	Log takes its principal value with the cut on (−∞, 0], arguments in
//	(−π, π]. Pow, PowReal and LogBase are defined through Log and inherit
//	the same cut, so New(-1, 0).PowReal(2) is 1 up to rounding, not exactly One.
//
// Floating-point specials:
//
//	NaN and ±Inf are never reported as errors. They propagate through
//	arithmetic and are observable with IsNaN, IsInf and IsFinite. Division
//	by zero performs no check and yields infinite or NaN components.
//
// Errors:
//   - ErrInvalidArgument — Polar with a negative radius, NthRoot with degree < 1.
//   - ErrUnsupported     — Cbrt, which has no implementation.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numera/complexnum"
//
//	z := complexnum.New(3, 4)
//	fmt.Println(z.Abs())          // 5
//	fmt.Println(z.Conjugate())    // 3.0-4.0i
//	roots, err := z.NthRoot(3)    // three cube roots of 3+4i
//
// See example_test.go for runnable examples.
package complexnum
