package textcodec

import (
	"strconv"
	"strings"
)

// formatFloat renders f using the ECMAScript Number::toString algorithm: the
// shortest decimal digit string that round-trips to f, laid out as plain
// decimal when its decimal exponent is in [-6, 20] (1e-6 <= |f| < 1e21) and
// as exponential notation outside that range. This is the one algorithm in the package with no library in the
// retrieved corpus that implements it directly; strconv's shortest-digit
// search ('e', -1) supplies the digits and decimal exponent, and the
// placement rules below are ECMA-262's, not Go's %g or %e.
func formatFloat(f float64) string {
	if f == 0 {
		return "0"
	}

	neg := f < 0
	if neg {
		f = -f
	}

	// Shortest round-tripping mantissa/exponent: "d.ddddde±dd".
	sci := strconv.AppendFloat(nil, f, 'e', -1, 64)
	mantissa, exp := splitScientific(sci)
	digits := strings.Replace(mantissa, ".", "", 1)
	k := len(digits)
	n := exp + 1

	var out strings.Builder
	if neg {
		out.WriteByte('-')
	}

	switch {
	case k <= n && n <= 21:
		out.WriteString(digits)
		for i := 0; i < n-k; i++ {
			out.WriteByte('0')
		}
	case 0 < n && n <= 21:
		out.WriteString(digits[:n])
		out.WriteByte('.')
		out.WriteString(digits[n:])
	case -6 < n && n <= 0:
		out.WriteString("0.")
		for i := 0; i < -n; i++ {
			out.WriteByte('0')
		}
		out.WriteString(digits)
	default:
		out.WriteByte(digits[0])
		if k > 1 {
			out.WriteByte('.')
			out.WriteString(digits[1:])
		}
		out.WriteByte('e')
		e := n - 1
		if e >= 0 {
			out.WriteByte('+')
		}
		out.WriteString(strconv.Itoa(e))
	}
	return out.String()
}

// splitScientific parses strconv's "d.ddde±dd" (or "de±dd") form into the
// mantissa digits (with the decimal point, if any) and the base-10 exponent.
func splitScientific(sci []byte) (mantissa string, exp int) {
	s := string(sci)
	eIdx := strings.IndexByte(s, 'e')
	mantissa = s[:eIdx]
	exp, _ = strconv.Atoi(s[eIdx+1:])
	return mantissa, exp
}
