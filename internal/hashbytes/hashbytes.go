// Package hashbytes implements the weird-encoding iterator: the byte
// sequence an external hasher or signer must see to verify a legacy message
// signature. Hashing itself is out of scope; this package only produces the
// bytes.
package hashbytes

import (
	"iter"

	"golang.org/x/text/encoding/unicode"
)

var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// HashBytesOf yields the low byte of every UTF-16 code unit of text, in
// order. text must already be the canonical signing-form encoding of a
// value; this function does not canonicalize anything itself.
func HashBytesOf(text string) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		// UTF16(BigEndian, ...) places each code unit's low byte second in
		// its pair, so every odd index is exactly the byte this iterator
		// needs next.
		encoded, err := utf16BE.NewEncoder().Bytes([]byte(text))
		if err != nil {
			return
		}
		for i := 1; i < len(encoded); i += 2 {
			if !yield(encoded[i]) {
				return
			}
		}
	}
}

// MessageLength returns the number of bytes HashBytesOf(text) yields: the
// quantity checked against the protocol's maximum message size. Prefer
// HashBytesOf directly when both the bytes and their count are needed, since
// this re-derives the count by iterating text a second time.
func MessageLength(text string) int {
	n := 0
	for range HashBytesOf(text) {
		n++
	}
	return n
}
