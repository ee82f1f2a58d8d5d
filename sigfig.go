package tv

// Significant-figure formatting in decimal notation. The four-case split on
// the integer part ("lhs") and fractional part ("rhs") follows the GNU R
// pillar package's sigfig rules, which are designed to make columns of
// numbers easy to compare:
//
//	12345.0  -> "12345"   lhs only, already at or past the sigfig budget
//	1234.5   -> "1234."   trailing point signals truncated decimal mass
//	1.2345   -> "1.23"    spend the remaining budget on rhs digits
//	0.12345  -> "0.123"   sub-unity: round at the sigfig'th leading digit

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var scientificRe = regexp.MustCompile(`^[+-]?[0-9]*\.?[0-9]+[eE][+-]?[0-9]+$`)

func isScientific(s string) bool { return scientificRe.MatchString(s) }

// FormatNumber renders v to sigfig significant figures. When the plain
// decimal rendering is longer than maxDecimalWidth and the magnitude is
// outside [1e-4, 10^sigfig), the result switches to compact scientific
// notation instead. Non-finite values render as the NA marker.
func FormatNumber(v float64, sigfig, maxDecimalWidth int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NAMarker
	}
	if v == 0 {
		return "0"
	}
	neg := math.Signbit(v)
	x := math.Abs(v)
	s := formatDecimal(x, sigfig)
	if len(s) > maxDecimalWidth && (x < 1e-4 || x >= math.Pow(10, float64(sigfig))) {
		s = formatScientific(x, sigfig)
	}
	if neg {
		s = "-" + s
	}
	return s
}

// formatDecimal implements the four-case rule for a positive finite x.
func formatDecimal(x float64, sigfig int) string {
	lhs := math.Trunc(x)

	if lhs == 0 {
		// Sub-unity: round at the position that leaves sigfig digits
		// after the leading zeros.
		n := math.Floor(math.Log10(x)) + 1 - float64(sigfig)
		p := math.Pow(10, n)
		r := math.Round(x/p) * p
		if n >= 0 {
			return strconv.FormatFloat(r, 'f', -1, 64)
		}
		s := strconv.FormatFloat(r, 'f', int(-n), 64)
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
		if s == "" {
			s = "0"
		}
		return s
	}

	shortest := strconv.FormatFloat(x, 'f', -1, 64)
	dot := strings.IndexByte(shortest, '.')
	hasFrac := dot >= 0
	lhsStr := strconv.FormatFloat(lhs, 'f', 0, 64)
	lhsDigits := len(lhsStr)

	if lhsDigits >= sigfig {
		if hasFrac {
			return lhsStr + "."
		}
		return lhsStr
	}
	if !hasFrac {
		return lhsStr
	}

	// Spend the remaining budget on rhs digits, rounding half away from
	// zero, without inventing trailing zeros the value never had.
	keep := sigfig - lhsDigits
	if avail := len(shortest) - dot - 1; avail < keep {
		keep = avail
	}
	p := math.Pow(10, float64(keep))
	r := math.Round(x*p) / p
	return strconv.FormatFloat(r, 'f', keep, 64)
}

// formatScientific renders a positive x with sigfig mantissa digits and a
// compact exponent: 1.23e-7 rather than 1.23e-07, 1.23e14 rather than
// 1.23e+14.
func formatScientific(x float64, sigfig int) string {
	prec := sigfig - 1
	if prec < 0 {
		prec = 0
	}
	s := strconv.FormatFloat(x, 'e', prec, 64)
	i := strings.IndexByte(s, 'e')
	mant, exp := s[:i], s[i+1:]
	sign := ""
	if exp[0] == '+' || exp[0] == '-' {
		if exp[0] == '-' {
			sign = "-"
		}
		exp = exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	return mant + "e" + sign + exp
}

// formatScientificValue is the preserve-scientific bypass: the value is
// re-emitted in scientific form regardless of magnitude.
func formatScientificValue(v float64, sigfig int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NAMarker
	}
	if v == 0 {
		return "0e0"
	}
	s := formatScientific(math.Abs(v), sigfig)
	if math.Signbit(v) {
		s = "-" + s
	}
	return s
}
