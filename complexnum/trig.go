// SPDX-License-Identifier: MIT

package complexnum

// The trigonometric and hyperbolic functions below are composed only from
// Exp, Add, Subtract, Multiply and Divide, following the exponential
// identities literally (e.g. sin z = (e^{iz} − e^{−iz}) / 2i). Their rounding
// and behavior at large |im| are those of the identities, not of math/cmplx.

// unitExp returns e^{iz} and e^{−iz}.
func (c Complex) unitExp() (Complex, Complex) {
	iz := c.Multiply(I)

	return iz.Exp(), iz.Negate().Exp()
}

// hypExp returns e^z and e^{−z}.
func (c Complex) hypExp() (Complex, Complex) {
	return c.Exp(), c.Negate().Exp()
}

// Sin returns (e^{iz} − e^{−iz}) / 2i.
func (c Complex) Sin() Complex {
	p, m := c.unitExp()

	return p.Subtract(m).DivideReal(2).Divide(I)
}

// Cos returns (e^{iz} + e^{−iz}) / 2.
func (c Complex) Cos() Complex {
	p, m := c.unitExp()

	return p.Add(m).DivideReal(2)
}

// Tan returns (e^{iz} − e^{−iz}) / i(e^{iz} + e^{−iz}).
func (c Complex) Tan() Complex {
	p, m := c.unitExp()

	return p.Subtract(m).Divide(I).Divide(p.Add(m))
}

// Cot returns i(e^{iz} + e^{−iz}) / (e^{iz} − e^{−iz}).
func (c Complex) Cot() Complex {
	p, m := c.unitExp()

	return I.Multiply(p.Add(m)).Divide(p.Subtract(m))
}

// Sec returns 2 / (e^{iz} + e^{−iz}).
func (c Complex) Sec() Complex {
	p, m := c.unitExp()

	return Two.Divide(p.Add(m))
}

// Csc returns 2i / (e^{iz} − e^{−iz}).
func (c Complex) Csc() Complex {
	p, m := c.unitExp()

	return Two.Multiply(I).Divide(p.Subtract(m))
}

// Asin returns the principal arcsine −i·Log(iz + Sqrt(1 − z²)).
// z² is taken with PowReal and so goes through Log.
func (c Complex) Asin() Complex {
	root := One.Subtract(c.PowReal(2)).Sqrt()

	return I.Negate().Multiply(I.Multiply(c).Add(root).Log())
}

// Sinh returns (e^z − e^{−z}) / 2.
func (c Complex) Sinh() Complex {
	p, m := c.hypExp()

	return p.Subtract(m).DivideReal(2)
}

// Cosh returns (e^z + e^{−z}) / 2.
func (c Complex) Cosh() Complex {
	p, m := c.hypExp()

	return p.Add(m).DivideReal(2)
}

// Tanh returns (e^z − e^{−z}) / (e^z + e^{−z}).
func (c Complex) Tanh() Complex {
	p, m := c.hypExp()

	return p.Subtract(m).Divide(p.Add(m))
}

// Coth returns (e^z + e^{−z}) / (e^z − e^{−z}).
func (c Complex) Coth() Complex {
	p, m := c.hypExp()

	return p.Add(m).Divide(p.Subtract(m))
}

// Sech returns 2 / (e^z + e^{−z}).
func (c Complex) Sech() Complex {
	p, m := c.hypExp()

	return Two.Divide(p.Add(m))
}

// Csch returns 2 / (e^z − e^{−z}).
func (c Complex) Csch() Complex {
	p, m := c.hypExp()

	return Two.Divide(p.Subtract(m))
}
