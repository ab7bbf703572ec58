package conformance

// Builtin returns the built-in conformance vectors: scenarios S1–S4, S6 and
// S11, plus a trailing-characters check. S5 and S7–S10 are not among them.
// The CLI's check subcommand runs these when not given an explicit vectors
// file.
func Builtin() []Vector {
	return []Vector{
		{
			Name:                "S1-object-key-ordering",
			Description:         "natural-like keys sort numerically ahead of other keys, in insertion order among themselves",
			InputText:           `{"b":1,"a":2,"10":3,"2":4,"0":5}`,
			ExpectedSigningText: "{\n  \"0\": 5,\n  \"2\": 4,\n  \"10\": 3,\n  \"b\": 1,\n  \"a\": 2\n}",
		},
		{
			Name:         "S2-half-precision-float-forbidden",
			Description:  "a CBOR half-precision float is outside the accepted binary profile",
			InputHex:     "f90000",
			ExpectErrTag: "ErrForbiddenType",
		},
		{
			Name:         "S3-duplicate-key-binary",
			Description:  `{"a":null,"a":[]} encoded as CBOR is rejected as a duplicate key`,
			InputHex:     "a26161f6616180",
			ExpectErrTag: "ErrDuplicateKey",
		},
		{
			Name:         "trailing-characters",
			Description:  "non-whitespace after the top-level value is rejected",
			InputText:    "null garbage",
			ExpectErrTag: "ErrTrailingCharacters",
		},
		{
			Name:         "S6-unescaped-control-byte",
			Description:  "a raw newline inside a string is rejected",
			InputText:    "\"a\nb\"",
			ExpectErrTag: "ErrInvalidStringContent",
		},
		{
			Name:         "S4-negative-zero",
			Description:  "-0 is syntactically a number but fails Float-Safe validity",
			InputText:    "-0",
			ExpectErrTag: "ErrInvalidNumber",
		},
		{
			Name:                "S11-scientific-notation",
			Description:         "1e21 is outside the safe-integer-without-exponent range and keeps exponential form",
			InputText:           "1e21",
			ExpectedSigningText: "1e+21",
		},
	}
}
