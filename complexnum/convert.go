// SPDX-License-Identifier: MIT

package complexnum

import "golang.org/x/exp/constraints"

// RealNumber is the set of built-in types convertible to a Complex on the
// real axis.
type RealNumber interface {
	constraints.Integer | constraints.Float
}

// ToComplex converts any integer or float value to a Complex with zero
// imaginary part. Integers beyond 2⁵³ lose precision in the conversion.
func ToComplex[T RealNumber](v T) Complex {
	return FromReal(float64(v))
}

// FromBool maps true to One and false to Zero.
func FromBool(b bool) Complex {
	if b {
		return One
	}

	return Zero
}

// FromComplex128 converts a built-in complex128.
func FromComplex128(z complex128) Complex {
	return Complex{real(z), imag(z)}
}

// Complex128 converts c to the built-in complex128, e.g. for use with
// math/cmplx.
func (c Complex) Complex128() complex128 {
	return complex(c.re, c.im)
}
