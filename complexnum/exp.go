// SPDX-License-Identifier: MIT

package complexnum

import "math"

// Exp returns e^c = e^re · (cos im, sin im).
func (c Complex) Exp() Complex {
	r := math.Exp(c.re)

	return Complex{r * math.Cos(c.im), r * math.Sin(c.im)}
}

// Pow returns the principal value of c^exponent, computed as
// Exp(Log(c)·exponent).
//
// Because the power goes through Log it inherits the branch cut on the
// negative real axis: New(-1, 0).Pow(Two) is (1, −2.4e−16), not One.
// Zero.Pow(w) has NaN components because Log(Zero) has an infinite real
// part; use PowReal for real exponents.
func (c Complex) Pow(exponent Complex) Complex {
	return c.Log().Multiply(exponent).Exp()
}

// PowReal returns the principal value of c^exponent for a real exponent,
// computed as Exp(Log(c)·exponent). See Pow for the branch-cut caveat.
// Zero raised to a positive exponent is Zero.
func (c Complex) PowReal(exponent float64) Complex {
	return c.Log().MultiplyReal(exponent).Exp()
}

// Log returns the principal natural logarithm (ln|c|, Arg(c)).
//
// The branch cut lies on (−∞, 0]; the imaginary part is in (−π, π].
// Log(Zero) is (−Inf, 0).
func (c Complex) Log() Complex {
	return Complex{math.Log(math.Hypot(c.re, c.im)), math.Atan2(c.im, c.re)}
}

// LogBase returns the principal logarithm of c to a complex base,
// Log(c) / Log(base).
func (c Complex) LogBase(base Complex) Complex {
	return c.Log().Divide(base.Log())
}

// LogBaseReal returns the principal logarithm of c to a real base,
// Log(c) / ln(base). A non-positive base yields NaN or infinite components.
func (c Complex) LogBaseReal(base float64) Complex {
	return c.Log().DivideReal(math.Log(base))
}
