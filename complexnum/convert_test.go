package complexnum_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/numera/complexnum"
)

// TestToComplex accepts every integer and float kind.
func TestToComplex(t *testing.T) {
	assert.True(t, complexnum.ToComplex(3).Equal(complexnum.FromReal(3)))
	assert.True(t, complexnum.ToComplex(int8(-7)).Equal(complexnum.FromReal(-7)))
	assert.True(t, complexnum.ToComplex(uint8(255)).Equal(complexnum.FromReal(255)))
	assert.True(t, complexnum.ToComplex(int64(1)<<40).Equal(complexnum.FromReal(1<<40)))
	assert.True(t, complexnum.ToComplex(float32(0.5)).Equal(complexnum.FromReal(0.5)))
	assert.True(t, complexnum.ToComplex(2.25).Equal(complexnum.FromReal(2.25)))
	assert.Equal(t, 0.0, complexnum.ToComplex(uint(9)).Imag())
}

// TestFromBool maps true to One and false to Zero.
func TestFromBool(t *testing.T) {
	assert.True(t, complexnum.FromBool(true).Equal(complexnum.One))
	assert.True(t, complexnum.FromBool(false).Equal(complexnum.Zero))
}

// TestComplex128_RoundTrip converts to and from the built-in type.
func TestComplex128_RoundTrip(t *testing.T) {
	for _, z := range samples {
		assert.True(t, complexnum.FromComplex128(z.Complex128()).Equal(z))
	}
	z := complexnum.FromComplex128(cmplx.Inf())
	assert.True(t, z.IsInf())
	assert.Equal(t, complex(1, -2), complexnum.New(1, -2).Complex128())
}
