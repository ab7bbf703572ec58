// Package graphlex implements Grapho-Lex string ordering and the
// Ordered-Object container used by the ordered abstract data model.
//
// Grapho-Lex order compares by length first (shorter orders first), using
// byte-lexicographic order as a tie-breaker for equal-length strings. It
// coincides with numeric order on natural-like key strings, which is what
// makes the dual-bucket Ordered-Object container below produce a canonical
// key order without ever parsing a key as a number.
package graphlex

// Compare orders a and b the Grapho-Lex way: shorter first, then
// byte-lexicographic.
func Compare(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Less reports whether a orders strictly before b under Grapho-Lex order.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// IsNaturalLike reports whether s is "0" or matches [1-9][0-9]*. These are
// the keys that sort into the Ordered-Object's numeric bucket.
func IsNaturalLike(s string) bool {
	if s == "0" {
		return true
	}
	if len(s) == 0 {
		return false
	}
	if s[0] < '1' || s[0] > '9' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
