package textcodec

import (
	"bytes"

	"github.com/holeyfield33-art/legacymsg/internal/value"
)

// FromString decodes a single value from text using v, then requires the
// remainder to be whitespace only.
func FromString[T any](text string, v value.Visitor[T]) (T, error) {
	d := NewDecoder([]byte(text))
	val, err := DecodeAny(d, v)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := d.End(); err != nil {
		var zero T
		return zero, err
	}
	return val, nil
}

// ToString encodes v as text in the requested mode.
func ToString(v value.Serializable, signing bool) string {
	var buf bytes.Buffer
	// The textual encoder never returns an error writing into a
	// bytes.Buffer; Write on a Buffer cannot fail.
	_ = EncodeAny(&buf, v, signing)
	return buf.String()
}
