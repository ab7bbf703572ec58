package textcodec

import (
	"errors"
	"testing"

	"github.com/holeyfield33-art/legacymsg/internal/codecerr"
	"github.com/holeyfield33-art/legacymsg/internal/floatsafe"
	"github.com/holeyfield33-art/legacymsg/internal/value"
)

func decodeValue(t *testing.T, text string) (value.Value, error) {
	t.Helper()
	return FromString[value.Value](text, value.ValueVisitor{Limits: value.DefaultLimits})
}

func decodeOrdered(t *testing.T, text string) (value.ValueOrdered, error) {
	t.Helper()
	return FromString[value.ValueOrdered](text, value.ValueOrderedVisitor{Limits: value.DefaultLimits})
}

// S1: an object with keys b, a, 10, 2, 0 re-serializes with the natural-like
// keys sorted ahead of the others, in insertion order among themselves.
func TestObjectKeyOrderingRoundTrip(t *testing.T) {
	text := `{"b":1,"a":2,"10":3,"2":4,"0":5}`
	v, err := decodeOrdered(t, text)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := ToString(v, false)
	want := `{"0":5,"2":4,"10":3,"b":1,"a":2}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

// S3: duplicate object keys are rejected.
func TestRejectsDuplicateKey(t *testing.T) {
	_, err := decodeValue(t, `{"a":null,"a":[]}`)
	if !errors.Is(err, codecerr.ErrDuplicateKey) {
		t.Fatalf("got %v, want ErrDuplicateKey", err)
	}
}

// Trailing non-whitespace after the top-level value is rejected, but
// trailing whitespace is accepted.
func TestTopLevelTrailing(t *testing.T) {
	if _, err := decodeValue(t, `null  garbage`); !errors.Is(err, codecerr.ErrTrailingCharacters) {
		t.Fatalf("got %v, want ErrTrailingCharacters", err)
	}
	if _, err := decodeValue(t, "null \n\t "); err != nil {
		t.Fatalf("trailing whitespace should be accepted, got %v", err)
	}
}

// S6: control bytes in a string must be escaped; a raw one is rejected.
func TestRejectsUnescapedControlByte(t *testing.T) {
	_, err := decodeValue(t, "\"a\nb\"")
	if !errors.Is(err, codecerr.ErrInvalidStringContent) {
		t.Fatalf("got %v, want ErrInvalidStringContent", err)
	}
}

// S4: -0 is syntactically a number but fails the Float-Safe validity check.
func TestRejectsNegativeZero(t *testing.T) {
	_, err := decodeValue(t, "-0")
	if !errors.Is(err, codecerr.ErrInvalidNumber) {
		t.Fatalf("got %v, want ErrInvalidNumber", err)
	}
}

// S11: leading-zero digit sequences and other malformed numbers are syntax
// errors, while scientific notation is accepted and round-trips through the
// shortest-form formatter.
func TestNumberGrammar(t *testing.T) {
	for _, bad := range []string{"01", "1.", ".5", "1e", "+1"} {
		if _, err := decodeValue(t, bad); err == nil {
			t.Errorf("%q: expected an error, got none", bad)
		}
	}

	v, err := decodeValue(t, "1e21")
	if err != nil {
		t.Fatalf("decode 1e21: %v", err)
	}
	f, _ := v.AsFloat()
	if f.Float64() != 1e21 {
		t.Errorf("got %v, want 1e21", f.Float64())
	}
	if got := ToString(v, false); got != "1e+21" {
		t.Errorf("got %s, want 1e+21", got)
	}
}

func TestFormatFloatShortestForm(t *testing.T) {
	cases := []struct {
		f    float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{1.1, "1.1"},
		{-1.5, "-1.5"},
		{100, "100"},
		{0.001, "0.001"},
		{0.0000001, "1e-7"},
		{1e21, "1e+21"},
		{123456789, "123456789"},
	}
	for _, c := range cases {
		if got := formatFloat(c.f); got != c.want {
			t.Errorf("formatFloat(%v) = %s, want %s", c.f, got, c.want)
		}
	}
}

func TestSigningModeIndentation(t *testing.T) {
	f, _ := floatsafe.FromFloat64(1)
	v := value.NewObject(map[string]value.Value{"a": value.NewArray([]value.Value{value.NewFloat(f)})})
	got := ToString(v, true)
	want := "{\n  \"a\": [\n    1\n  ]\n}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmptyCollectionsHaveNoIndentation(t *testing.T) {
	v := value.NewArray(nil)
	if got := ToString(v, true); got != "[]" {
		t.Errorf("got %q, want []", got)
	}
	o := value.NewObject(map[string]value.Value{})
	if got := ToString(o, true); got != "{}" {
		t.Errorf("got %q, want {}", got)
	}
}

func TestStringEscaping(t *testing.T) {
	v := value.NewString("a\"b\\c\nd\x01e")
	got := ToString(v, false)
	want := "\"a\\\"b\\\\c\\nd\\u0001e\""
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestSurrogatePairEscape(t *testing.T) {
	// U+1F600 GRINNING FACE as a UTF-16 surrogate pair escape.
	v, err := decodeValue(t, "\"\\ud83d\\ude00\"")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	s, _ := v.AsString()
	if s != "\U0001F600" {
		t.Errorf("got %q, want grinning face emoji", s)
	}
}

func TestRoundTripCompactAndSigning(t *testing.T) {
	f, _ := floatsafe.FromFloat64(3.25)
	v := value.NewArray([]value.Value{
		value.Null(),
		value.NewBool(true),
		value.NewFloat(f),
		value.NewString("hi"),
		value.NewObject(map[string]value.Value{"k": value.NewString("v")}),
	})
	for _, signing := range []bool{false, true} {
		text := ToString(v, signing)
		decoded, err := decodeValue(t, text)
		if err != nil {
			t.Fatalf("signing=%v: decode: %v", signing, err)
		}
		if !value.Equal(v, decoded) {
			t.Errorf("signing=%v: round trip mismatch", signing)
		}
	}
}
