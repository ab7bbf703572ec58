// Package legacymsg implements the legacy message data format of a
// federated social protocol: a restricted, canonicalized JSON subset with a
// parallel CBOR-subset binary encoding, suitable for producing and
// verifying signatures over protocol messages. Hashing, signing, and
// signature verification themselves are out of scope; this package decodes
// and encodes bytes and, for signature checking, exposes the exact byte
// stream an external hasher must see (HashBytesOf).
//
// Use Value for ordinary reading and writing. Use ValueOrdered, together
// with ToString(v, true) (or ToVec/ToWriter), whenever the byte-exact
// canonical signing encoding of an object's entries matters: Value's Object
// variant has no defined iteration order, ValueOrdered's does.
package legacymsg

import (
	"io"
	"iter"

	"github.com/holeyfield33-art/legacymsg/internal/binarycodec"
	"github.com/holeyfield33-art/legacymsg/internal/floatsafe"
	"github.com/holeyfield33-art/legacymsg/internal/hashbytes"
	"github.com/holeyfield33-art/legacymsg/internal/textcodec"
	"github.com/holeyfield33-art/legacymsg/internal/value"
)

// Value is any valid legacy message value, with an unordered Object variant.
type Value = value.Value

// ValueOrdered is any valid legacy message value, with an order-preserving
// Object variant. Required whenever an object's entry order must be
// reproducible, as it must for canonical signing output.
type ValueOrdered = value.ValueOrdered

// Kind identifies which variant of the six-variant sum a Value or
// ValueOrdered currently holds.
type Kind = value.Kind

const (
	KindNull   = value.KindNull
	KindBool   = value.KindBool
	KindFloat  = value.KindFloat
	KindString = value.KindString
	KindArray  = value.KindArray
	KindObject = value.KindObject
)

// Float is the Float-Safe numeric type: a float64 restricted to finite
// values that are not negative zero, with a total order.
type Float = floatsafe.Float

// Entry is one key/value pair supplied to NewObjectOrderedFromEntries.
type Entry = value.Entry

// Null returns the Null value.
func Null() Value { return value.Null() }

// NewBool wraps b as a Bool value.
func NewBool(b bool) Value { return value.NewBool(b) }

// NewFloat wraps f as a Float value.
func NewFloat(f Float) Value { return value.NewFloat(f) }

// NewString wraps s as a String value.
func NewString(s string) Value { return value.NewString(s) }

// NewArray wraps elems as an Array value. elems is not copied.
func NewArray(elems []Value) Value { return value.NewArray(elems) }

// NewObject wraps m as an Object value. m is not copied.
func NewObject(m map[string]Value) Value { return value.NewObject(m) }

// Equal reports whether a and b represent the same value, recursively.
// Array order matters; Object key order does not.
func Equal(a, b Value) bool { return value.Equal(a, b) }

// NullOrdered returns the Null value.
func NullOrdered() ValueOrdered { return value.NullOrdered() }

// NewBoolOrdered wraps b as a Bool value.
func NewBoolOrdered(b bool) ValueOrdered { return value.NewBoolOrdered(b) }

// NewFloatOrdered wraps f as a Float value.
func NewFloatOrdered(f Float) ValueOrdered { return value.NewFloatOrdered(f) }

// NewStringOrdered wraps s as a String value.
func NewStringOrdered(s string) ValueOrdered { return value.NewStringOrdered(s) }

// NewArrayOrdered wraps elems as an Array value. elems is not copied.
func NewArrayOrdered(elems []ValueOrdered) ValueOrdered { return value.NewArrayOrdered(elems) }

// NewObjectOrderedFromEntries builds an Object value by inserting entries in
// order; see value.NewObjectOrderedFromEntries for how repeated and
// natural-like keys are handled.
func NewObjectOrderedFromEntries(entries []Entry) ValueOrdered {
	return value.NewObjectOrderedFromEntries(entries)
}

// EqualOrdered reports whether a and b represent the same value,
// recursively. Both array and object entry order matter.
func EqualOrdered(a, b ValueOrdered) bool { return value.EqualOrdered(a, b) }

// FromSlice decodes a single textual value from data, requiring the
// remainder of data to be whitespace only.
func FromSlice(data []byte) (Value, error) {
	return textcodec.FromString[Value](string(data), value.ValueVisitor{Limits: value.DefaultLimits})
}

// FromSliceOrdered decodes a single textual value from data into a
// ValueOrdered, preserving each object's entry order.
func FromSliceOrdered(data []byte) (ValueOrdered, error) {
	return textcodec.FromString[ValueOrdered](string(data), value.ValueOrderedVisitor{Limits: value.DefaultLimits})
}

// ToString encodes v as text: compact (no whitespace) if signing is false,
// or the canonical indented signing form if signing is true. v may be a
// Value or a ValueOrdered (or any type implementing value.Serializable).
func ToString(v value.Serializable, signing bool) string {
	return textcodec.ToString(v, signing)
}

// ToVec encodes v as text into a freshly allocated byte slice.
func ToVec(v value.Serializable, signing bool) []byte {
	return []byte(textcodec.ToString(v, signing))
}

// ToWriter encodes v as text directly to w.
func ToWriter(w io.Writer, v value.Serializable, signing bool) error {
	return textcodec.EncodeAny(w, v, signing)
}

// DecodeBinary decodes a single value from data using the binary profile,
// requiring the remainder of data to be empty.
func DecodeBinary(data []byte) (Value, error) {
	return binarycodec.FromSlice[Value](data, value.ValueVisitor{Limits: value.DefaultLimits}, value.DefaultLimits)
}

// DecodeBinaryOrdered decodes a single value from data using the binary
// profile into a ValueOrdered, preserving each object's entry order.
func DecodeBinaryOrdered(data []byte) (ValueOrdered, error) {
	return binarycodec.FromSlice[ValueOrdered](data, value.ValueOrderedVisitor{Limits: value.DefaultLimits}, value.DefaultLimits)
}

// EncodeBinary encodes v into a freshly allocated byte slice using the
// binary profile.
func EncodeBinary(v value.Serializable) []byte {
	return binarycodec.ToVec(v)
}

// EncodeBinaryToWriter encodes v directly to w using the binary profile.
func EncodeBinaryToWriter(w io.Writer, v value.Serializable) error {
	return binarycodec.EncodeAny(w, v)
}

// HashBytesOf yields the weird-encoding byte sequence an external hasher or
// signer must see to verify a signature over text: the low byte of every
// UTF-16 code unit of text, in order. text should be the output of
// ToString(v, true) for the value a signature covers.
func HashBytesOf(text string) iter.Seq[byte] {
	return hashbytes.HashBytesOf(text)
}

// MessageLength returns the number of bytes HashBytesOf(text) yields: the
// quantity checked against the protocol's maximum message size.
func MessageLength(text string) int {
	return hashbytes.MessageLength(text)
}
