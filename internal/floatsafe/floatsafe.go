// Package floatsafe implements the legacy message format's numeric subset:
// a float64 that is never infinite, never NaN, and never negative zero.
package floatsafe

import "math"

// Float wraps a float64 that is known to be finite and not negative zero.
// The zero value is the valid float 0.0; there is no invalid zero value.
type Float struct {
	v float64
}

// FromFloat64 wraps f as a Float iff f is finite and not negative zero.
// Positive zero is accepted; the model does not distinguish +0 from a
// hypothetical second zero value.
func FromFloat64(f float64) (Float, bool) {
	if !IsValid(f) {
		return Float{}, false
	}
	return Float{v: f}, true
}

// FromFloat64Unchecked wraps f without validating it. Callers must already
// know f satisfies IsValid; passing an invalid f makes every subsequent
// comparison and encode on the result incorrect.
func FromFloat64Unchecked(f float64) Float {
	return Float{v: f}
}

// Float64 returns the wrapped value. Always safe to call.
func (f Float) Float64() float64 {
	return f.v
}

// IsValid reports whether f may be used as a Float: finite and not -0.0.
func IsValid(f float64) bool {
	if f == 0 {
		return !math.Signbit(f)
	}
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Compare returns -1, 0, or 1 as a is less than, equal to, or greater than
// b. Defined for every pair of valid Floats; the underlying float64 partial
// order is total once NaN is excluded by construction.
func Compare(a, b Float) int {
	switch {
	case a.v < b.v:
		return -1
	case a.v > b.v:
		return 1
	default:
		return 0
	}
}

// Less reports whether a orders strictly before b.
func Less(a, b Float) bool {
	return a.v < b.v
}

// Equal reports whether a and b hold the same float64 value.
func Equal(a, b Float) bool {
	return a.v == b.v
}
