package binarycodec

import (
	"bytes"

	"github.com/holeyfield33-art/legacymsg/internal/value"
)

// FromSlice decodes a single value from data using v, then requires
// end-of-input. limits bounds pre-allocation for arrays and objects whose
// declared length has not yet been validated against the input.
func FromSlice[T any](data []byte, v value.Visitor[T], limits value.Limits) (T, error) {
	d := NewDecoder(data, limits)
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

// ToVec encodes v into a freshly allocated byte slice.
func ToVec(v value.Serializable) []byte {
	var buf bytes.Buffer
	// The binary encoder never returns an error writing into a
	// bytes.Buffer; Write on a Buffer cannot fail.
	_ = EncodeAny(&buf, v)
	return buf.Bytes()
}
