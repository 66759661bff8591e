package complexnum_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numera/complexnum"
)

// ExampleNew shows basic arithmetic and rendering.
func ExampleNew() {
	z := complexnum.New(3, 4)
	fmt.Println(z.Abs())
	fmt.Println(z.Conjugate())
	fmt.Println(z.Add(complexnum.One))
	fmt.Println(z.Multiply(complexnum.I))
	// Output:
	// 5
	// 3.0-4.0i
	// 4.0+4.0i
	// -4.0+3.0i
}

// ExamplePolar shows construction from modulus and argument, and the
// error returned for a negative radius.
func ExamplePolar() {
	z, _ := complexnum.Polar(2, 0)
	fmt.Println(z)

	_, err := complexnum.Polar(-1, 0)
	fmt.Println(errors.Is(err, complexnum.ErrInvalidArgument))
	fmt.Println(err)
	// Output:
	// 2.0
	// true
	// Polar: radius -1 must be non-negative: complexnum: invalid argument: negative radius
}

// ExampleComplex_NthRoot lists the three cube roots of −8.
func ExampleComplex_NthRoot() {
	roots, err := complexnum.New(-8, 0).NthRoot(3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, r := range roots {
		fmt.Printf("%.3f %+.3fi\n", r.Real(), r.Imag())
	}
	// Output:
	// 1.000 +1.732i
	// -2.000 +0.000i
	// 1.000 -1.732i
}

// ExampleComplex_Cbrt shows that the principal cube root is not available.
func ExampleComplex_Cbrt() {
	_, err := complexnum.New(8, 0).Cbrt()
	fmt.Println(errors.Is(err, complexnum.ErrUnsupported))
	// Output:
	// true
}

// ExampleComplex_String shows the rendering of special values.
func ExampleComplex_String() {
	fmt.Println(complexnum.New(1, -1))
	fmt.Println(complexnum.New(0, 2.5e-4))
	fmt.Println(complexnum.Infinity)
	fmt.Println(complexnum.Zero.Divide(complexnum.Zero))
	// Output:
	// 1.0-1.0i
	// 2.5E-4i
	// infinity
	// not a number
}
