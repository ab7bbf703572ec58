package textcodec

import (
	"io"

	"github.com/holeyfield33-art/legacymsg/internal/codecerr"
	"github.com/holeyfield33-art/legacymsg/internal/floatsafe"
	"github.com/holeyfield33-art/legacymsg/internal/value"
)

// Encoder writes values to w using one of the two textual profiles. In
// compact mode every separator is the minimal byte and no indentation is
// written. In signing mode every non-empty array and object spans multiple
// lines, indented two spaces per nesting level — the single canonical form
// a signature is computed over. It implements value.Serializer.
type Encoder struct {
	w       io.Writer
	signing bool
	depth   int
}

// NewEncoder returns an Encoder writing to w. When signing is true, output
// uses the canonical indented form; otherwise it uses the compact form.
func NewEncoder(w io.Writer, signing bool) *Encoder {
	return &Encoder{w: w, signing: signing}
}

var _ value.Serializer = (*Encoder)(nil)

// IntoInner returns the underlying writer, letting a caller reuse it — for
// instance to stream several values to the same writer without allocating a
// fresh Encoder for each one.
func (e *Encoder) IntoInner() io.Writer { return e.w }

// EncodeAny writes v to w in the requested mode.
func EncodeAny(w io.Writer, v value.Serializable, signing bool) error {
	return v.Serialize(NewEncoder(w, signing))
}

func (e *Encoder) writeIndent() error {
	if !e.signing {
		return nil
	}
	buf := make([]byte, 0, 1+2*e.depth)
	buf = append(buf, '\n')
	for i := 0; i < e.depth; i++ {
		buf = append(buf, ' ', ' ')
	}
	_, err := e.w.Write(buf)
	return err
}

func (e *Encoder) SerializeBool(b bool) error {
	s := "false"
	if b {
		s = "true"
	}
	_, err := io.WriteString(e.w, s)
	return err
}

func (e *Encoder) SerializeFloat(f floatsafe.Float) error {
	if !floatsafe.IsValid(f.Float64()) {
		return codecerr.ErrInvalidFloat
	}
	_, err := io.WriteString(e.w, formatFloat(f.Float64()))
	return err
}

func (e *Encoder) SerializeString(s string) error {
	return writeQuotedString(e.w, s)
}

// writeQuotedString escapes s per the textual profile's grammar: the
// mandatory JSON escapes, control bytes as \u00XX, everything else passed
// through as raw UTF-8.
func writeQuotedString(w io.Writer, s string) error {
	if err := writeByte(w, '"'); err != nil {
		return err
	}
	last := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		var esc string
		switch {
		case c == '"':
			esc = `\"`
		case c == '\\':
			esc = `\\`
		case c == 0x08:
			esc = `\b`
		case c == 0x0C:
			esc = `\f`
		case c == 0x0A:
			esc = `\n`
		case c == 0x0D:
			esc = `\r`
		case c == 0x09:
			esc = `\t`
		case c < 0x20:
			esc = `\u` + hex4(c)
		default:
			continue
		}
		if i > last {
			if _, err := io.WriteString(w, s[last:i]); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, esc); err != nil {
			return err
		}
		last = i + 1
	}
	if last < len(s) {
		if _, err := io.WriteString(w, s[last:]); err != nil {
			return err
		}
	}
	return writeByte(w, '"')
}

func hex4(b byte) string {
	const digits = "0123456789abcdef"
	return string([]byte{'0', '0', digits[b>>4], digits[b&0xF]})
}

func writeByte(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

func (e *Encoder) SerializeNull() error {
	_, err := io.WriteString(e.w, "null")
	return err
}

func (e *Encoder) BeginArray(length int) (value.ArraySerializer, error) {
	if err := writeByte(e.w, '['); err != nil {
		return nil, err
	}
	e.depth++
	return &collectionEncoder{e: e, isObject: false}, nil
}

func (e *Encoder) BeginObject(length int) (value.ObjectSerializer, error) {
	if err := writeByte(e.w, '{'); err != nil {
		return nil, err
	}
	e.depth++
	return &collectionEncoder{e: e, isObject: true}, nil
}

// collectionEncoder serves as both ArraySerializer and ObjectSerializer:
// both share the same comma/indent/closing-bracket bookkeeping, differing
// only in the bracket character and in whether a colon separates entries.
type collectionEncoder struct {
	e        *Encoder
	isObject bool
	count    int
}

func (c *collectionEncoder) AppendElement(v value.Serializable) error {
	if err := c.beginEntry(); err != nil {
		return err
	}
	return v.Serialize(c.e)
}

func (c *collectionEncoder) AppendKey(key string) error {
	if err := c.beginEntry(); err != nil {
		return err
	}
	if err := writeQuotedString(c.e.w, key); err != nil {
		return err
	}
	sep := ":"
	if c.e.signing {
		sep = ": "
	}
	_, err := io.WriteString(c.e.w, sep)
	return err
}

func (c *collectionEncoder) AppendValue(v value.Serializable) error {
	return v.Serialize(c.e)
}

func (c *collectionEncoder) beginEntry() error {
	if c.count > 0 {
		if err := writeByte(c.e.w, ','); err != nil {
			return err
		}
	}
	c.count++
	return c.e.writeIndent()
}

func (c *collectionEncoder) Finish() error {
	c.e.depth--
	if c.count > 0 {
		if err := c.e.writeIndent(); err != nil {
			return err
		}
	}
	closing := byte(']')
	if c.isObject {
		closing = '}'
	}
	return writeByte(c.e.w, closing)
}
