// SPDX-License-Identifier: MIT

package complexnum

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/numera/number"
)

// Complex is an immutable complex number re + im·i with float64 components.
// The zero value is Zero. Compare with Equal or EqualApprox rather than ==,
// which treats +0 and −0 as equal and NaN as unequal to itself.
type Complex struct {
	re float64 // real part
	im float64 // imaginary part
}

var _ number.Arithmetic[Complex] = Complex{}

// Distinguished values.
var (
	// Zero is the additive identity.
	Zero = Complex{0, 0}
	// One is the multiplicative identity.
	One = Complex{1, 0}
	// I is the imaginary unit, I·I = −1.
	I = Complex{0, 1}
	// Two is the real number 2.
	Two = Complex{2, 0}
	// E is Euler's number on the real axis.
	E = Complex{math.E, 0}
	// Pi is π on the real axis.
	Pi = Complex{math.Pi, 0}
	// Infinity has both components +Inf. Projection maps every infinite
	// value to (+Inf, 0) instead.
	Infinity = Complex{math.Inf(1), math.Inf(1)}
)

// New returns re + im·i.
func New(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// FromReal returns re + 0·i.
func FromReal(re float64) Complex {
	return Complex{re: re}
}

// Polar returns the complex number with modulus rho and argument theta,
// (rho·cos θ, rho·sin θ). Theta is not reduced; any real angle is accepted.
//
// Errors:
//   - ErrNegativeRadius (an ErrInvalidArgument) if rho < 0. A NaN rho is not rejected and yields NaN components.
func Polar(rho, theta float64) (Complex, error) {
	if rho < 0 {
		return Complex{}, complexErrorf(MethodPolar, ErrNegativeRadius, "radius %g must be non-negative", rho)
	}

	return Complex{rho * math.Cos(theta), rho * math.Sin(theta)}, nil
}

// Real returns the real part.
func (c Complex) Real() float64 { return c.re }

// Imag returns the imaginary part.
func (c Complex) Imag() float64 { return c.im }

// IsZero reports whether both components compare equal to 0 (−0 included).
func (c Complex) IsZero() bool {
	return c.re == 0 && c.im == 0
}

// IsInf reports whether either component is +Inf or −Inf.
func (c Complex) IsInf() bool {
	return math.IsInf(c.re, 0) || math.IsInf(c.im, 0)
}

// IsNaN reports whether either component is NaN.
func (c Complex) IsNaN() bool {
	return math.IsNaN(c.re) || math.IsNaN(c.im)
}

// IsFinite reports whether c is neither infinite nor NaN.
func (c Complex) IsFinite() bool {
	return !(c.IsInf() || c.IsNaN())
}

// Equal reports whether c and other have bit-identical components.
// Unlike ==, Equal distinguishes +0 from −0 and considers a NaN equal to a
// NaN with the same payload. Equal is consistent with Hash.
func (c Complex) Equal(other Complex) bool {
	return math.Float64bits(c.re) == math.Float64bits(other.re) &&
		math.Float64bits(c.im) == math.Float64bits(other.im)
}

// Hash returns a 64-bit hash of the component bit patterns.
// Values that are Equal hash identically.
func (c Complex) Hash() uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(c.re))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(c.im))

	return xxhash.Sum64(buf[:])
}
