// Package binarycodec implements the binary encoder/decoder for the legacy
// message format: a strict subset of CBOR restricted to the major types and
// additional-info ranges the format permits. See decode.go for the accepted
// profile and its rejections; encode.go for the writer.
package binarycodec

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/holeyfield33-art/legacymsg/internal/codecerr"
	"github.com/holeyfield33-art/legacymsg/internal/floatsafe"
	"github.com/holeyfield33-art/legacymsg/internal/value"
)

// Major type tags, shifted into their byte position (top 3 bits).
const (
	majorTextString = 3 << 5
	majorArray      = 4 << 5
	majorMap        = 5 << 5
	majorSimple     = 7 << 5
)

const (
	simpleFalse  = majorSimple | 20 // 0xF4
	simpleTrue   = majorSimple | 21 // 0xF5
	simpleNull   = majorSimple | 22 // 0xF6
	simpleDouble = majorSimple | 27 // 0xFB
)

// maxAdditionalInfo is the largest additional-info value this profile
// accepts for text strings, arrays, and maps: 0–23 inline, 24/25/26/27 are
// the 1/2/4/8-byte length extensions. 28, 29, 30, 31 are forbidden.
const maxAdditionalInfo = 27

// Decoder parses the binary profile from an in-memory byte slice.
type Decoder struct {
	input  []byte
	limits value.Limits
}

// NewDecoder returns a Decoder over input, using limits to bound optimistic
// pre-allocation.
func NewDecoder(input []byte, limits value.Limits) *Decoder {
	return &Decoder{input: input, limits: limits}
}

// End reports whether decoding has consumed the entire input. A conforming
// top-level binary encoding is a single value followed by nothing.
func (d *Decoder) End() error {
	if len(d.input) == 0 {
		return nil
	}
	return codecerr.ErrTrailingBytes
}

func (d *Decoder) peek() (byte, error) {
	if len(d.input) == 0 {
		return 0, codecerr.ErrUnexpectedEOF
	}
	return d.input[0], nil
}

func (d *Decoder) next() (byte, error) {
	if len(d.input) == 0 {
		return 0, codecerr.ErrUnexpectedEOF
	}
	b := d.input[0]
	d.input = d.input[1:]
	return b, nil
}

func (d *Decoder) take(n int) ([]byte, error) {
	if len(d.input) < n {
		return nil, codecerr.ErrInvalidLength
	}
	b := d.input[:n]
	d.input = d.input[n:]
	return b, nil
}

// decodeLen reads the length encoded by a major-type tag byte whose
// additional-info field is already known to be in 0–27: 0–23 is the length
// itself, 24 reads one more byte, 25/26/27 read two/four/eight big-endian
// bytes. The length is decoded as a uint64 and checked against the
// remaining input before ever being converted to an int, so a claimed
// length that would overflow a signed int (e.g. the 8-byte extension's
// max, 0xFFFFFFFFFFFFFFFF) is rejected as codecerr.ErrInvalidLength instead
// of wrapping negative and defeating take's bounds check.
func (d *Decoder) decodeLen(tag byte) (int, error) {
	info := tag & 0x1F
	var n64 uint64
	switch {
	case info <= 23:
		n64 = uint64(info)
	case info == 24:
		b, err := d.next()
		if err != nil {
			return 0, err
		}
		n64 = uint64(b)
	case info == 25:
		b, err := d.take(2)
		if err != nil {
			return 0, err
		}
		n64 = uint64(binary.BigEndian.Uint16(b))
	case info == 26:
		b, err := d.take(4)
		if err != nil {
			return 0, err
		}
		n64 = uint64(binary.BigEndian.Uint32(b))
	default: // info == 27
		b, err := d.take(8)
		if err != nil {
			return 0, err
		}
		n64 = binary.BigEndian.Uint64(b)
	}
	if n64 > uint64(len(d.input)) {
		return 0, codecerr.ErrInvalidLength
	}
	return int(n64), nil
}

func isAccepted(major byte, tag byte) bool {
	return tag&0x1F <= maxAdditionalInfo && tag&0xE0 == major
}

func (d *Decoder) parseBool() (bool, error) {
	b, err := d.next()
	if err != nil {
		return false, err
	}
	switch b {
	case simpleFalse:
		return false, nil
	case simpleTrue:
		return true, nil
	default:
		return false, codecerr.ErrExpectedBool
	}
}

func (d *Decoder) parseFloat() (floatsafe.Float, error) {
	b, err := d.next()
	if err != nil {
		return floatsafe.Float{}, err
	}
	if b != simpleDouble {
		return floatsafe.Float{}, codecerr.ErrExpectedNumber
	}
	raw, err := d.take(8)
	if err != nil {
		return floatsafe.Float{}, err
	}
	bits := binary.BigEndian.Uint64(raw)
	f, ok := floatsafe.FromFloat64(math.Float64frombits(bits))
	if !ok {
		return floatsafe.Float{}, codecerr.ErrInvalidNumber
	}
	return f, nil
}

func (d *Decoder) parseString() (string, error) {
	tag, err := d.next()
	if err != nil {
		return "", err
	}
	if !isAccepted(majorTextString, tag) {
		return "", codecerr.ErrExpectedString
	}
	n, err := d.decodeLen(tag)
	if err != nil {
		return "", err
	}
	raw, err := d.take(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", codecerr.ErrInvalidStringContent
	}
	return string(raw), nil
}

func (d *Decoder) parseNull() error {
	b, err := d.next()
	if err != nil {
		return err
	}
	if b != simpleNull {
		return codecerr.ErrExpectedNull
	}
	return nil
}

// DecodeAny inspects the next value in d's input and dispatches to the
// matching method on v, recursing into arrays and objects as needed.
func DecodeAny[T any](d *Decoder, v value.Visitor[T]) (T, error) {
	var zero T
	tag, err := d.peek()
	if err != nil {
		return zero, err
	}
	switch {
	case tag == simpleFalse:
		d.input = d.input[1:]
		return v.VisitBool(false)
	case tag == simpleTrue:
		d.input = d.input[1:]
		return v.VisitBool(true)
	case tag == simpleNull:
		d.input = d.input[1:]
		return v.VisitNull()
	case tag == simpleDouble:
		f, err := d.parseFloat()
		if err != nil {
			return zero, err
		}
		return v.VisitFloat(f)
	case isAccepted(majorTextString, tag):
		s, err := d.parseString()
		if err != nil {
			return zero, err
		}
		return v.VisitString(s)
	case isAccepted(majorArray, tag):
		return decodeArray(d, v)
	case isAccepted(majorMap, tag):
		return decodeObject(d, v)
	default:
		return zero, codecerr.ErrForbiddenType
	}
}

func decodeArray[T any](d *Decoder, v value.Visitor[T]) (T, error) {
	var zero T
	tag, err := d.next()
	if err != nil {
		return zero, err
	}
	n, err := d.decodeLen(tag)
	if err != nil {
		return zero, err
	}
	return v.VisitArray(&arrayAccess[T]{d: d, remaining: n})
}

func decodeObject[T any](d *Decoder, v value.Visitor[T]) (T, error) {
	var zero T
	tag, err := d.next()
	if err != nil {
		return zero, err
	}
	n, err := d.decodeLen(tag)
	if err != nil {
		return zero, err
	}
	return v.VisitObject(&objectAccess[T]{d: d, remaining: n})
}

type arrayAccess[T any] struct {
	d         *Decoder
	remaining int
}

func (a *arrayAccess[T]) SizeHint() int { return a.remaining }

func (a *arrayAccess[T]) NextElement(v value.Visitor[T]) (T, bool, error) {
	var zero T
	if a.remaining == 0 {
		return zero, false, nil
	}
	a.remaining--
	elem, err := DecodeAny(a.d, v)
	if err != nil {
		return zero, false, err
	}
	return elem, true, nil
}

type objectAccess[T any] struct {
	d         *Decoder
	remaining int
}

func (o *objectAccess[T]) SizeHint() int { return o.remaining }

func (o *objectAccess[T]) NextKey(has func(string) bool) (string, bool, error) {
	if o.remaining == 0 {
		return "", false, nil
	}
	key, err := o.d.parseString()
	if err != nil {
		return "", false, err
	}
	if has(key) {
		return "", false, codecerr.ErrDuplicateKey
	}
	o.remaining--
	return key, true, nil
}

func (o *objectAccess[T]) NextValue(v value.Visitor[T]) (T, error) {
	return DecodeAny(o.d, v)
}
