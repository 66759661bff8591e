package special_test

import (
	"fmt"

	"github.com/katalvlaran/numera/complexnum"
	"github.com/katalvlaran/numera/special"
)

// ExampleGamma evaluates Γ on both sides of the reflection threshold.
func ExampleGamma() {
	fmt.Printf("%.6f\n", special.Gamma(5))
	fmt.Printf("%.6f\n", special.Gamma(0.5))
	fmt.Printf("%.6f\n", special.Gamma(-0.5))
	// Output:
	// 24.000000
	// 1.772454
	// -3.544908
}

// ExampleGammaComplex evaluates Γ(1+i).
func ExampleGammaComplex() {
	g := special.GammaComplex(complexnum.New(1, 1))
	fmt.Printf("%.6f %+.6fi\n", g.Real(), g.Imag())
	// Output:
	// 0.498016 -0.154950i
}

// ExampleBeta evaluates B(2,3) = 1/12.
func ExampleBeta() {
	fmt.Printf("%.6f\n", special.Beta(2, 3))
	// Output:
	// 0.083333
}
