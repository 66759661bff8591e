// SPDX-License-Identifier: MIT

package complexnum

import "math"

// MaxRootDegree is the largest degree NthRoot accepts. Every root is
// materialized, so the bound caps the returned slice.
const MaxRootDegree = 1 << 20

// NthRoot returns all degree distinct roots of c, ordered by increasing
// angle starting from the principal root.
//
// Algorithm:
//  1. ρ = |c|^(1/degree), θ₀ = Arg(c)/degree.
//  2. For k = 0..degree−1: root_k = ρ·(cos θ_k, sin θ_k), θ_k = θ₀ + 2πk/degree.
//
// The angle is advanced incrementally, so late roots carry the rounding of
// k additions. Every root r satisfies r.PowReal(degree) ≈ c.
//
// Errors:
//   - ErrInvalidDegree (an ErrInvalidArgument) if degree < 1 or
//     degree > MaxRootDegree.
//
// Complexity: O(degree) time and memory.
func (c Complex) NthRoot(degree int) ([]Complex, error) {
	if degree < 1 || degree > MaxRootDegree {
		return nil, complexErrorf(MethodNthRoot, ErrInvalidDegree, "degree %d not in [1, %d]", degree, MaxRootDegree)
	}

	n := float64(degree)
	rho := math.Pow(math.Hypot(c.re, c.im), 1/n)
	theta := math.Atan2(c.im, c.re) / n
	step := 2 * math.Pi / n

	roots := make([]Complex, 0, degree)
	for k := 0; k < degree; k++ {
		roots = append(roots, Complex{rho * math.Cos(theta), rho * math.Sin(theta)})
		theta += step
	}

	return roots, nil
}

// Sqrt returns the principal square root of c using the half-angle form
//
//	re' = √2/2 · √(|c| + re)
//	im' = ±√2/2 · √(|c| − re), signed like im
//
// The sign is taken from the sign bit of im, so the negative real axis maps
// onto the imaginary axis: New(-4, 0).Sqrt() is 2i and New(-4, math.Copysign(0, -1)).Sqrt()
// is −2i. The real part is never negative. A sign function with sign(0) = 0
// would instead collapse every negative real to 0.
func (c Complex) Sqrt() Complex {
	const half = math.Sqrt2 / 2
	h := math.Hypot(c.re, c.im)
	re := math.Sqrt(h + c.re)
	im := math.Copysign(math.Sqrt(h-c.re), c.im)

	return Complex{half * re, half * im}
}

// Cbrt is reserved for the principal cube root and is not implemented.
// It always returns ErrCbrtNotImplemented (an ErrUnsupported); use NthRoot(3)
// for all three cube roots.
func (c Complex) Cbrt() (Complex, error) {
	return Complex{}, complexErrorf(MethodCbrt, ErrCbrtNotImplemented, "principal cube root of %v", c)
}
