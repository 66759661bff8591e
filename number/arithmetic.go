// SPDX-License-Identifier: MIT

package number

// Arithmetic is the capability set of a value type closed under the four
// field operations and negation. Implementations must be immutable: every
// method returns a new value and leaves the receiver untouched.
type Arithmetic[T any] interface {
	// Add returns the sum of the receiver and addend.
	Add(addend T) T

	// Subtract returns the difference of the receiver and subtrahend.
	Subtract(subtrahend T) T

	// Multiply returns the product of the receiver and multiplicand.
	Multiply(multiplicand T) T

	// Divide returns the quotient of the receiver and divisor.
	// Division by zero follows the implementation's own semantics.
	Divide(divisor T) T

	// Negate returns the additive inverse of the receiver.
	Negate() T
}

// Sum folds xs left to right with Add, starting from zero.
// Returns zero when xs is empty.
func Sum[T Arithmetic[T]](zero T, xs ...T) T {
	acc := zero
	for _, x := range xs {
		acc = acc.Add(x)
	}

	return acc
}

// Product folds xs left to right with Multiply, starting from one.
// Returns one when xs is empty.
func Product[T Arithmetic[T]](one T, xs ...T) T {
	acc := one
	for _, x := range xs {
		acc = acc.Multiply(x)
	}

	return acc
}

// Horner evaluates the polynomial with the given coefficients at x, the
// highest-degree coefficient first:
//
//	Horner(x, zero, c0, c1, c2) = c0·x² + c1·x + c2
//
// Returns zero when no coefficients are given.
// Complexity: O(len(coeffs)) multiplications and additions.
func Horner[T Arithmetic[T]](x, zero T, coeffs ...T) T {
	acc := zero
	for _, c := range coeffs {
		acc = acc.Multiply(x).Add(c)
	}

	return acc
}
