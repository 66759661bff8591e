// SPDX-License-Identifier: MIT

package complexnum

import "gonum.org/v1/gonum/cmplxs/cscalar"

// EqualApprox reports whether a and b are within the absolute tolerance of
// each other, or failing that within the relative tolerance. Defaults are
// DefaultAbsTol and DefaultRelTol; override with WithAbsTol and WithRelTol.
//
// Values with NaN or infinite components never compare approximately equal;
// use Equal for exact matches of special values.
func EqualApprox(a, b Complex, opts ...Option) bool {
	if !a.IsFinite() || !b.IsFinite() {
		return false
	}
	o := gatherOptions(opts...)

	return cscalar.EqualWithinAbsOrRel(a.Complex128(), b.Complex128(), o.absTol, o.relTol)
}
