package legacymsg

import (
	"bytes"
	"errors"
	"testing"

	"github.com/holeyfield33-art/legacymsg/internal/codecerr"
)

// S1: natural-like keys sort numerically ahead of other keys, which keep
// their insertion order.
func TestObjectOrderingEndToEnd(t *testing.T) {
	v, err := FromSliceOrdered([]byte(`{"b":1,"a":2,"10":3,"2":4,"0":5}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := ToString(v, false)
	want := `{"0":5,"2":4,"10":3,"b":1,"a":2}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

// S2/S3 equivalents at the binary layer are covered in internal/binarycodec;
// here we check the duplicate-key rejection end to end through the public
// textual entry point.
func TestRejectsDuplicateKeyEndToEnd(t *testing.T) {
	_, err := FromSlice([]byte(`{"a":null,"a":[]}`))
	if !errors.Is(err, codecerr.ErrDuplicateKey) {
		t.Fatalf("got %v, want ErrDuplicateKey", err)
	}
}

// S7: the weird-encoding iterator over the signing form of a simple string
// value yields the low byte of each UTF-16 code unit.
func TestHashBytesOfSigningForm(t *testing.T) {
	v := NewString("é")
	text := ToString(v, true)
	if text != `"é"` {
		t.Fatalf("got %s", text)
	}
	var got []byte
	for b := range HashBytesOf(text) {
		got = append(got, b)
	}
	want := []byte{'"', 0xE9, '"'}
	if string(got) != string(want) {
		t.Errorf("got % x, want % x", got, want)
	}
	if MessageLength(text) != len(want) {
		t.Errorf("MessageLength = %d, want %d", MessageLength(text), len(want))
	}
}

// S8: decode from text, re-encode to binary, decode that binary, re-encode
// to compact text — reproduces the original compact text.
func TestCrossFormatBijection(t *testing.T) {
	original := `{"a":1,"b":[true,false,null,"x"],"c":{"1":"z","2":"y"}}`
	v, err := FromSliceOrdered([]byte(original))
	if err != nil {
		t.Fatalf("decode text: %v", err)
	}
	bin := EncodeBinary(v)
	v2, err := DecodeBinaryOrdered(bin)
	if err != nil {
		t.Fatalf("decode binary: %v", err)
	}
	got := ToString(v2, false)
	if got != original {
		t.Errorf("got %s, want %s", got, original)
	}
}

// S9: strings whose length fits inline or requires the 1-, 2- or 4-byte
// binary length extension round-trip through the minimal-width form. The
// 8-byte extension is not exercised here.
func TestBinaryLengthOfLength(t *testing.T) {
	for _, n := range []int{23, 24, 255, 256, 65535, 65536} {
		s := make([]byte, n)
		for i := range s {
			s[i] = 'z'
		}
		v := NewString(string(s))
		bin := EncodeBinary(v)
		decoded, err := DecodeBinary(bin)
		if err != nil {
			t.Fatalf("len %d: %v", n, err)
		}
		if !Equal(v, decoded) {
			t.Errorf("len %d: round trip mismatch", n)
		}
	}
}

// S10: natural-like ordering is computed per object: each of two sibling
// objects in an array orders its own keys independently of the other.
func TestNestedNaturalLikeOrderingIsLocal(t *testing.T) {
	inner := NewObjectOrderedFromEntries([]Entry{
		{Key: "z", Value: NewStringOrdered("outer-other")},
		{Key: "3", Value: NewStringOrdered("outer-natural")},
	})
	nested := NewObjectOrderedFromEntries([]Entry{
		{Key: "1", Value: NewStringOrdered("inner-natural")},
		{Key: "a", Value: NewStringOrdered("inner-other")},
	})
	outer := NewArrayOrdered([]ValueOrdered{inner, nested})

	got := ToString(outer, false)
	want := `[{"3":"outer-natural","z":"outer-other"},{"1":"inner-natural","a":"inner-other"}]`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestToWriterAndEncodeBinaryToWriter(t *testing.T) {
	v := NewArray([]Value{NewBool(true), Null()})

	var textBuf bytes.Buffer
	if err := ToWriter(&textBuf, v, false); err != nil {
		t.Fatalf("ToWriter: %v", err)
	}
	if textBuf.String() != "[true,null]" {
		t.Errorf("got %s", textBuf.String())
	}

	var binBuf bytes.Buffer
	if err := EncodeBinaryToWriter(&binBuf, v); err != nil {
		t.Fatalf("EncodeBinaryToWriter: %v", err)
	}
	decoded, err := DecodeBinary(binBuf.Bytes())
	if err != nil {
		t.Fatalf("DecodeBinary: %v", err)
	}
	if !Equal(v, decoded) {
		t.Errorf("round trip mismatch")
	}
}
