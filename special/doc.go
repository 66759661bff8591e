// SPDX-License-Identifier: MIT

// Package special evaluates special functions for real and complex
// arguments: the gamma function and the beta function derived from it.
//
// 🚀 How is Γ computed?
//
//	Lanczos approximation with g = 4.7421875 and a 15-term coefficient
//	table (≈15 significant digits for Re z ≥ 0.5). Arguments with real part
//	below 0.5 are mapped through Euler's reflection formula
//
//	  Γ(z) = π / (sin(πz) · Γ(1 − z))
//
//	whose recursive call always lands in the Lanczos domain, so the
//	recursion depth is at most one.
//
// ✨ Functions:
//   - Gamma(x)          — real argument, float64 arithmetic
//   - GammaComplex(z)   — complexnum.Complex argument, same algorithm in complex arithmetic
//   - Beta(a, b)        — Γ(a)Γ(b)/Γ(a+b)
//   - BetaComplex(a, b) — complex counterpart of Beta
//
// Poles and overflow:
//
//	No errors are returned. At the poles (0, −1, −2, …) and for large
//	arguments the result is ±Inf, NaN or a huge finite value, following
//	floating-point propagation. The factor t^(x−0.5) overflows float64
//	between x = 142 and x = 143, well before Γ itself does near 171.6.
//
// All functions are pure and safe for concurrent use; the coefficient
// table is read-only.
//
//	import "github.com/katalvlaran/numera/special"
//
//	special.Gamma(5)                          // ≈ 24
//	special.GammaComplex(complexnum.New(1, 1)) // ≈ 0.498 − 0.155i
package special
