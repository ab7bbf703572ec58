package binarycodec

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/holeyfield33-art/legacymsg/internal/codecerr"
	"github.com/holeyfield33-art/legacymsg/internal/floatsafe"
	"github.com/holeyfield33-art/legacymsg/internal/value"
)

// Encoder writes values to w using the binary profile. It implements
// value.Serializer.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

var _ value.Serializer = (*Encoder)(nil)

// IntoInner returns the underlying writer, letting a caller reuse it — for
// instance to stream several values to the same writer without allocating a
// fresh Encoder for each one.
func (e *Encoder) IntoInner() io.Writer { return e.w }

// EncodeAny writes v to w using the binary profile.
func EncodeAny(w io.Writer, v value.Serializable) error {
	return v.Serialize(NewEncoder(w))
}

func (e *Encoder) SerializeBool(b bool) error {
	tag := byte(simpleFalse)
	if b {
		tag = simpleTrue
	}
	_, err := e.w.Write([]byte{tag})
	return err
}

func (e *Encoder) SerializeFloat(f floatsafe.Float) error {
	if !floatsafe.IsValid(f.Float64()) {
		return codecerr.ErrInvalidFloat
	}
	buf := make([]byte, 9)
	buf[0] = simpleDouble
	binary.BigEndian.PutUint64(buf[1:], math.Float64bits(f.Float64()))
	_, err := e.w.Write(buf)
	return err
}

func (e *Encoder) SerializeString(s string) error {
	if err := writeLengthPrefix(e.w, majorTextString, len(s)); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, s)
	return err
}

func (e *Encoder) SerializeNull() error {
	_, err := e.w.Write([]byte{simpleNull})
	return err
}

func (e *Encoder) BeginArray(length int) (value.ArraySerializer, error) {
	if err := writeLengthPrefix(e.w, majorArray, length); err != nil {
		return nil, err
	}
	return &collectionEncoder{e: e}, nil
}

func (e *Encoder) BeginObject(length int) (value.ObjectSerializer, error) {
	if err := writeLengthPrefix(e.w, majorMap, length); err != nil {
		return nil, err
	}
	return &collectionEncoder{e: e}, nil
}

// collectionEncoder serves as both ArraySerializer and ObjectSerializer:
// the binary profile has no closing delimiter or separators, so appending an
// element/key/value is just recursively serializing it.
type collectionEncoder struct {
	e *Encoder
}

func (c *collectionEncoder) AppendElement(v value.Serializable) error {
	return v.Serialize(c.e)
}

func (c *collectionEncoder) AppendKey(key string) error {
	return c.e.SerializeString(key)
}

func (c *collectionEncoder) AppendValue(v value.Serializable) error {
	return v.Serialize(c.e)
}

func (c *collectionEncoder) Finish() error {
	return nil
}

// writeLengthPrefix writes a CBOR-style major/length tag using the
// smallest-fitting width: 0–23 inline, else the 1/2/4/8-byte extension.
func writeLengthPrefix(w io.Writer, major byte, length int) error {
	switch {
	case length < 24:
		_, err := w.Write([]byte{major | byte(length)})
		return err
	case length <= 0xFF:
		_, err := w.Write([]byte{major | 24, byte(length)})
		return err
	case length <= 0xFFFF:
		buf := make([]byte, 3)
		buf[0] = major | 25
		binary.BigEndian.PutUint16(buf[1:], uint16(length))
		_, err := w.Write(buf)
		return err
	case length <= 0xFFFFFFFF:
		buf := make([]byte, 5)
		buf[0] = major | 26
		binary.BigEndian.PutUint32(buf[1:], uint32(length))
		_, err := w.Write(buf)
		return err
	default:
		buf := make([]byte, 9)
		buf[0] = major | 27
		binary.BigEndian.PutUint64(buf[1:], uint64(length))
		_, err := w.Write(buf)
		return err
	}
}
