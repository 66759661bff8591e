// SPDX-License-Identifier: MIT

package special

import (
	"math"

	"github.com/katalvlaran/numera/complexnum"
)

const (
	// LanczosG is the Lanczos shift g.
	LanczosG = 4.7421875

	// LanczosN is the number of terms of the Lanczos series.
	LanczosN = 15

	// EulerMascheroni is the Euler–Mascheroni constant γ = −Γ'(1).
	EulerMascheroni = 0.577215664901532860606512090082

	// reflectionThreshold separates the reflection branch from the series.
	reflectionThreshold = 0.5
)

// lanczosP holds the Lanczos coefficients for g = LanczosG, n = LanczosN.
var lanczosP = [LanczosN]float64{
	.99999999999999709182,
	57.156235665862923517,
	-59.597960355475491248,
	14.136097974741747174,
	-.49191381609762019978,
	.33994649984811888699e-4,
	.46523628927048575665e-4,
	-.98374475304879564677e-4,
	.15808870322491248884e-3,
	-.21026444172410488319e-3,
	.21743961811521264320e-3,
	-.16431810653676389022e-3,
	.84418223983852743293e-4,
	-.26190838401581408670e-4,
	.36899182659531622704e-5,
}

// sqrtTwoPi is √(2π).
var sqrtTwoPi = math.Sqrt(2 * math.Pi)

// Gamma returns Γ(x).
//
// Algorithm:
//   - x < 0.5:  Γ(x) = π / sin(πx) / Γ(1−x).
//   - x ≥ 0.5:  t = x + g − 0.5, a = p₀ + Σ_{k=1}^{n−1} p_k/(x+k−1),
//     Γ(x) = t^(x−0.5) · √(2π) · e^(−t) · a.
//
// Gamma(0) is +Inf; other non-positive integers give ±Inf or a very large
// finite value depending on how sin(πx) rounds. NaN propagates.
func Gamma(x float64) float64 {
	if x < reflectionThreshold {
		return math.Pi / math.Sin(math.Pi*x) / Gamma(1-x)
	}

	a := lanczosP[0]
	t := x + LanczosG - 0.5
	for k := 1; k < LanczosN; k++ {
		a += lanczosP[k] / (x + float64(k) - 1)
	}

	return math.Pow(t, x-0.5) * sqrtTwoPi * math.Exp(-t) * a
}

// GammaComplex returns Γ(z) for complex z, with the same reflection and
// series as Gamma carried out in complex arithmetic. The power t^(z−0.5)
// is the principal value, taken through complexnum.Complex.Pow.
func GammaComplex(z complexnum.Complex) complexnum.Complex {
	if z.Real() < reflectionThreshold {
		return complexnum.Pi.
			Divide(z.MultiplyReal(math.Pi).Sin()).
			Divide(GammaComplex(complexnum.One.Subtract(z)))
	}

	a := complexnum.FromReal(lanczosP[0])
	t := z.AddReal(LanczosG).SubtractReal(0.5)
	for k := 1; k < LanczosN; k++ {
		a = a.Add(complexnum.FromReal(lanczosP[k]).Divide(z.AddReal(float64(k) - 1)))
	}

	return t.Pow(z.SubtractReal(0.5)).
		MultiplyReal(sqrtTwoPi).
		Multiply(t.Negate().Exp()).
		Multiply(a)
}
