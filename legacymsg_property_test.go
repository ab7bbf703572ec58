package legacymsg

import (
	"math/rand"
	"testing"

	"github.com/holeyfield33-art/legacymsg/internal/floatsafe"
)

// Hand-rolled random Value generator, grounded on original_source's
// fuzz/fuzz_targets/{bijection,roundtrip_cbor,roundtrip_compact,
// roundtrip_signing}.rs: each fuzz target draws an arbitrary Value and
// checks an identity across encode/decode. A deterministic rand.Rand
// replaces libFuzzer's byte-stream-driven Arbitrary derivation, matching
// the teacher's plain-testing convention rather than pulling in a
// property-testing library the retrieval pack does not carry.
func randomValue(r *rand.Rand, depth int) Value {
	kind := r.Intn(6)
	if depth <= 0 {
		kind = r.Intn(4) // only leaves once nesting is deep enough
	}
	switch kind {
	case 0:
		return Null()
	case 1:
		return NewBool(r.Intn(2) == 0)
	case 2:
		f, ok := floatForTest(r)
		for !ok {
			f, ok = floatForTest(r)
		}
		return NewFloat(f)
	case 3:
		return NewString(randomString(r))
	case 4:
		n := r.Intn(4)
		elems := make([]Value, n)
		for i := range elems {
			elems[i] = randomValue(r, depth-1)
		}
		return NewArray(elems)
	default:
		n := r.Intn(4)
		m := make(map[string]Value, n)
		for i := 0; i < n; i++ {
			m[randomObjectKey(r, i)] = randomValue(r, depth-1)
		}
		return NewObject(m)
	}
}

func floatForTest(r *rand.Rand) (Float, bool) {
	// Keep magnitudes modest so the shortest round-trip formatter is
	// exercised without drifting into exponential territory on every draw.
	f := (r.Float64() - 0.5) * 2000
	return floatsafe.FromFloat64(f)
}

func randomString(r *rand.Rand) string {
	const alphabet = "abcdefghijklmnop0123456789 _-"
	n := r.Intn(8)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}

// randomObjectKey occasionally produces a natural-like key so generated
// objects exercise the dual-bucket ordering, not just the insertion-ordered
// bucket.
func randomObjectKey(r *rand.Rand, i int) string {
	if r.Intn(2) == 0 {
		return itoaForTest(i * r.Intn(5))
	}
	return randomString(r) + "_k"
}

func itoaForTest(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}

// Property 3: decode ∘ encode = identity, for the textual compact form.
func TestPropertyTextRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		v := randomValue(r, 3)
		text := ToString(v, false)
		decoded, err := FromSlice([]byte(text))
		if err != nil {
			t.Fatalf("iteration %d: decode %q: %v", i, text, err)
		}
		if !Equal(v, decoded) {
			t.Fatalf("iteration %d: round trip mismatch for %q", i, text)
		}
	}
}

// Property 3, binary form.
func TestPropertyBinaryRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		v := randomValue(r, 3)
		bin := EncodeBinary(v)
		decoded, err := DecodeBinary(bin)
		if err != nil {
			t.Fatalf("iteration %d: decode: %v", i, err)
		}
		if !Equal(v, decoded) {
			t.Fatalf("iteration %d: binary round trip mismatch", i)
		}
	}
}

// Property 4 (cross-format round trip) / S8: decode_binary(encode_binary(
// decode_text(encode_text(v)))) == v.
func TestPropertyCrossFormatRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		v := randomValue(r, 3)
		text := ToString(v, false)
		viaText, err := FromSlice([]byte(text))
		if err != nil {
			t.Fatalf("iteration %d: decode text: %v", i, err)
		}
		bin := EncodeBinary(viaText)
		viaBin, err := DecodeBinary(bin)
		if err != nil {
			t.Fatalf("iteration %d: decode binary: %v", i, err)
		}
		if !Equal(v, viaBin) {
			t.Fatalf("iteration %d: cross-format round trip mismatch", i)
		}
	}
}

// Property 2 (encode ⇒ accept) for the signing form: re-decoding a
// ValueOrdered's canonical signing-mode encoding always succeeds and yields
// an equal value, for every nesting of the dual-bucket object ordering.
func TestPropertySigningEncodeIsAccepted(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 100; i++ {
		v := randomOrderedValue(r, 3)
		text := ToString(v, true)
		decoded, err := FromSliceOrdered([]byte(text))
		if err != nil {
			t.Fatalf("iteration %d: decode signing form %q: %v", i, text, err)
		}
		if !EqualOrdered(v, decoded) {
			t.Fatalf("iteration %d: signing round trip mismatch", i)
		}
	}
}

func randomOrderedValue(r *rand.Rand, depth int) ValueOrdered {
	kind := r.Intn(6)
	if depth <= 0 {
		kind = r.Intn(4)
	}
	switch kind {
	case 0:
		return NullOrdered()
	case 1:
		return NewBoolOrdered(r.Intn(2) == 0)
	case 2:
		f, ok := floatForTest(r)
		for !ok {
			f, ok = floatForTest(r)
		}
		return NewFloatOrdered(f)
	case 3:
		return NewStringOrdered(randomString(r))
	case 4:
		n := r.Intn(4)
		elems := make([]ValueOrdered, n)
		for i := range elems {
			elems[i] = randomOrderedValue(r, depth-1)
		}
		return NewArrayOrdered(elems)
	default:
		n := r.Intn(4)
		entries := make([]Entry, n)
		for i := range entries {
			entries[i] = Entry{Key: randomObjectKey(r, i), Value: randomOrderedValue(r, depth-1)}
		}
		return NewObjectOrderedFromEntries(entries)
	}
}
