// SPDX-License-Identifier: MIT

package special

import "github.com/katalvlaran/numera/complexnum"

// Beta returns B(a, b) = Γ(a)·Γ(b) / Γ(a+b).
// Intermediate gammas overflow before B does for large arguments.
func Beta(a, b float64) float64 {
	return Gamma(a) * Gamma(b) / Gamma(a+b)
}

// BetaComplex returns B(a, b) for complex arguments.
func BetaComplex(a, b complexnum.Complex) complexnum.Complex {
	return GammaComplex(a).Multiply(GammaComplex(b)).Divide(GammaComplex(a.Add(b)))
}
