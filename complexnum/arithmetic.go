// SPDX-License-Identifier: MIT

package complexnum

import "math"

// Abs returns the modulus |c| computed with math.Hypot, which avoids the
// intermediate overflow and underflow of sqrt(re²+im²).
func (c Complex) Abs() float64 {
	return math.Hypot(c.re, c.im)
}

// Arg returns the principal argument atan2(im, re), in (−π, π].
func (c Complex) Arg() float64 {
	return math.Atan2(c.im, c.re)
}

// Norm returns re²·im².
//
// This is the product of the squared components, not the field norm
// re²+im²; callers that need the latter should use AbsSquared. The product
// form is kept so that existing numeric results do not change.
func (c Complex) Norm() float64 {
	return c.re * c.re * c.im * c.im
}

// AbsSquared returns re²+im², the field norm of c, without the square root
// taken by Abs. It overflows for components beyond ~1e154.
func (c Complex) AbsSquared() float64 {
	return c.re*c.re + c.im*c.im
}

// Conjugate returns (re, −im).
func (c Complex) Conjugate() Complex {
	return Complex{c.re, -c.im}
}

// Projection maps every infinite value to (+Inf, 0), the single point at
// infinity of the Riemann sphere. Other values, NaN included, are returned
// unchanged.
func (c Complex) Projection() Complex {
	if c.IsInf() {
		return Complex{math.Inf(1), 0}
	}

	return c
}

// Negate returns (−re, −im).
func (c Complex) Negate() Complex {
	return Complex{-c.re, -c.im}
}

// Reciprocal returns 1/c as (re/d, −im/d) with d = re²+im².
// The reciprocal of Zero has NaN components.
func (c Complex) Reciprocal() Complex {
	d := c.re*c.re + c.im*c.im

	return Complex{c.re / d, -c.im / d}
}

// Signum returns c/|c|, the point of the unit circle in the direction of c.
// Zero (either signed zero) maps to Zero instead of dividing by zero.
func (c Complex) Signum() Complex {
	if c.IsZero() {
		return Zero
	}
	h := math.Hypot(c.re, c.im)

	return Complex{c.re / h, c.im / h}
}

// Add returns c + addend.
func (c Complex) Add(addend Complex) Complex {
	return Complex{c.re + addend.re, c.im + addend.im}
}

// AddReal returns c + addend, with addend on the real axis.
func (c Complex) AddReal(addend float64) Complex {
	return Complex{c.re + addend, c.im}
}

// Subtract returns c − subtrahend.
func (c Complex) Subtract(subtrahend Complex) Complex {
	return Complex{c.re - subtrahend.re, c.im - subtrahend.im}
}

// SubtractReal returns c − subtrahend, with subtrahend on the real axis.
func (c Complex) SubtractReal(subtrahend float64) Complex {
	return Complex{c.re - subtrahend, c.im}
}

// Multiply returns c · multiplicand.
func (c Complex) Multiply(multiplicand Complex) Complex {
	return Complex{
		c.re*multiplicand.re - c.im*multiplicand.im,
		c.re*multiplicand.im + multiplicand.re*c.im,
	}
}

// MultiplyReal scales both components by multiplicand.
func (c Complex) MultiplyReal(multiplicand float64) Complex {
	return Complex{c.re * multiplicand, c.im * multiplicand}
}

// Divide returns c / divisor.
//
// The quotient is (re·re' + im·im', im·re' − re·im') / (re'² + im'²).
// No zero check is made: a zero divisor yields ±Inf or NaN components.
func (c Complex) Divide(divisor Complex) Complex {
	d := divisor.re*divisor.re + divisor.im*divisor.im

	return Complex{
		c.re*divisor.re + c.im*divisor.im,
		c.im*divisor.re - c.re*divisor.im,
	}.DivideReal(d)
}

// DivideReal divides both components by divisor.
func (c Complex) DivideReal(divisor float64) Complex {
	return Complex{c.re / divisor, c.im / divisor}
}
