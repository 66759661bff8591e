package special_test

import (
	"testing"

	"github.com/katalvlaran/numera/complexnum"
	"github.com/katalvlaran/numera/special"
)

var (
	sinkReal    float64
	sinkComplex complexnum.Complex
)

// BenchmarkGamma_Series measures the direct Lanczos branch.
func BenchmarkGamma_Series(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkReal = special.Gamma(7.3)
	}
}

// BenchmarkGamma_Reflection measures the reflection branch.
func BenchmarkGamma_Reflection(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkReal = special.Gamma(-2.7)
	}
}

// BenchmarkGammaComplex measures the complex evaluator.
func BenchmarkGammaComplex(b *testing.B) {
	z := complexnum.New(3, 2)
	for i := 0; i < b.N; i++ {
		sinkComplex = special.GammaComplex(z)
	}
}
