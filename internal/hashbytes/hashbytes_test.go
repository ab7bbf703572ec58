package hashbytes

import "testing"

// S7: "é" (U+00E9, one UTF-16 code unit 0x00E9) yields the single byte 0xE9.
func TestHashBytesOfBMPCharacter(t *testing.T) {
	got := collect(HashBytesOf("é"))
	want := []byte{0xE9}
	if string(got) != string(want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestHashBytesOfASCII(t *testing.T) {
	got := collect(HashBytesOf("abc"))
	want := []byte{'a', 'b', 'c'}
	if string(got) != string(want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

// A character outside the Basic Multilingual Plane encodes as a UTF-16
// surrogate pair, so it contributes two bytes, one per code unit.
func TestHashBytesOfSurrogatePair(t *testing.T) {
	got := collect(HashBytesOf("\U0001F600"))
	if len(got) != 2 {
		t.Fatalf("got %d bytes, want 2", len(got))
	}
}

func TestMessageLengthMatchesByteCount(t *testing.T) {
	for _, s := range []string{"", "abc", "é", "\U0001F600", "hello, 世界"} {
		want := len(collect(HashBytesOf(s)))
		if got := MessageLength(s); got != want {
			t.Errorf("MessageLength(%q) = %d, want %d", s, got, want)
		}
	}
}

func TestHashBytesOfEarlyStop(t *testing.T) {
	var got []byte
	for b := range HashBytesOf("abcdef") {
		got = append(got, b)
		if len(got) == 2 {
			break
		}
	}
	if string(got) != "ab" {
		t.Errorf("got %q, want \"ab\"", got)
	}
}

func collect(seq func(func(byte) bool)) []byte {
	var out []byte
	seq(func(b byte) bool {
		out = append(out, b)
		return true
	})
	return out
}
