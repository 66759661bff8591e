package complexnum_test

import (
	"github.com/katalvlaran/numera/complexnum"
)

// samples is a fixed set of finite, non-zero, pairwise distinct values
// covering all four quadrants, both axes and a spread of magnitudes.
var samples = []complexnum.Complex{
	complexnum.New(1, 0),
	complexnum.New(0, 1),
	complexnum.New(-1, 0),
	complexnum.New(0, -1),
	complexnum.New(3, 4),
	complexnum.New(-3, 4),
	complexnum.New(-3, -4),
	complexnum.New(3, -4),
	complexnum.New(0.5, 0.25),
	complexnum.New(-0.125, 2.75),
	complexnum.New(1e-3, -7),
	complexnum.New(123.5, 0.001),
	complexnum.New(-42, -0.5),
	complexnum.New(1e6, 1e6),
}

// trigSamples stay away from branch cuts and from |im| large enough for
// the exponential identities to overflow.
var trigSamples = []complexnum.Complex{
	complexnum.New(0.5, 0.3),
	complexnum.New(1.2, -0.7),
	complexnum.New(-2, 1.5),
	complexnum.New(-0.4, -0.8),
	complexnum.New(0.2, 0),
	complexnum.New(0, 0.9),
}

// from128 is shorthand for complexnum.FromComplex128.
func from128(z complex128) complexnum.Complex {
	return complexnum.FromComplex128(z)
}
