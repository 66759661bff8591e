// Package numera is a small numeric library: an immutable complex number
// type with elementary and transcendental operations, and special functions
// built on top of it.
//
// 🚀 What is in numera?
//
//	A pure-Go, dependency-light set of packages:
//		• complexnum — Complex value type: arithmetic, polar form, principal
//		  Exp/Log/Pow/Sqrt, all n-th roots, trigonometric and hyperbolic
//		  families, bit-exact Equal/Hash, tolerance comparison, rendering
//		• special    — Γ for real and complex arguments (Lanczos + reflection),
//		  the beta function, the Euler–Mascheroni constant
//		• number     — the Arithmetic[T] capability and generic folds
//		  (Sum, Product, Horner) over any type that implements it
//
// ✨ Principles:
//
//   - Values, not objects – every operation returns a new value; nothing is
//     mutated, so everything is safe for concurrent use
//   - IEEE-754 all the way – NaN and ±Inf propagate instead of raising errors;
//     only domain violations (negative radius, degree < 1) and unimplemented
//     operations return errors
//   - Principal branches – multivalued functions follow one documented
//     convention (cut on the negative real axis)
//
// Quick example:
//
//	z := complexnum.New(3, 4)
//	fmt.Println(z.Abs(), z.Sqrt()) // 5 and ≈ 2+1i
//	fmt.Println(special.GammaComplex(complexnum.New(5, 0)))
//
// See examples/main.go for a runnable walkthrough.
//
//	go get github.com/katalvlaran/numera
package numera
