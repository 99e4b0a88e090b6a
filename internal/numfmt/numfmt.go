// Package numfmt renders float64 values the way the catalogue prints numbers:
// integral values without a fraction, the shortest round-tripping form otherwise,
// exponent notation from 1e21 up and below 1e-6, and Infinity / -Infinity / NaN for
// the non-finite cases.
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// Format returns the display form of v.
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		// -0 prints as 0
		return "0"
	}

	if abs := math.Abs(v); abs >= 1e21 || abs < 1e-6 {
		return exponent(v)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// exponent writes v as "1.5e-7" / "1e+21": shortest mantissa, signed exponent
// without leading zeros.
func exponent(v float64) string {
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
