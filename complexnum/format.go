// SPDX-License-Identifier: MIT

package complexnum

import (
	"math"
	"strconv"
	"strings"
)

// Text forms of the non-finite values.
const (
	textNaN      = "not a number"
	textInfinity = "infinity"
)

// Plain decimal notation is used for magnitudes in [plainLow, plainHigh);
// everything else is written as d.dddE±n.
const (
	plainLow  = 1e-3
	plainHigh = 1e7
)

// String renders c for display:
//
//	"not a number"  if either component is NaN
//	"infinity"      if either component is infinite
//	"<re>"          if im == 0
//	"<im>i"         if re == 0
//	"<re>+<im>i"    if im > 0
//	"<re><im>i"     if im < 0 (the sign belongs to <im>)
//
// Components always carry a fractional digit: New(1, -1) is "1.0-1.0i",
// New(0, 2.5e-4) is "2.5E-4i".
func (c Complex) String() string {
	switch {
	case c.IsNaN():
		return textNaN
	case c.IsInf():
		return textInfinity
	case c.im == 0:
		return formatComponent(c.re)
	case c.re == 0:
		return formatComponent(c.im) + "i"
	case c.im >= 0:
		return formatComponent(c.re) + "+" + formatComponent(c.im) + "i"
	default:
		return formatComponent(c.re) + formatComponent(c.im) + "i"
	}
}

// formatComponent writes x with the shortest digits that round-trip,
// in the layout of the JVM's Double.toString.
func formatComponent(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		if math.Signbit(x) {
			return "-0.0"
		}
		return "0.0"
	}

	if abs := math.Abs(x); abs >= plainLow && abs < plainHigh {
		s := strconv.FormatFloat(x, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	// strconv yields "1.5e-05"; rewrite as "1.5E-5".
	s := strconv.FormatFloat(x, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}

	return mantissa + "E" + strconv.Itoa(n)
}
