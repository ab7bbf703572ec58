// Package textcodec implements the textual encoder/decoder for the legacy
// message format: a restricted JSON subset with two serialization modes
// (compact and canonical signing) and a decoder that rejects any input
// outside that subset. See encode.go for the writer, number.go for the
// ECMAScript-compatible number formatting both modes share.
package textcodec

import (
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/holeyfield33-art/legacymsg/internal/codecerr"
	"github.com/holeyfield33-art/legacymsg/internal/floatsafe"
	"github.com/holeyfield33-art/legacymsg/internal/value"
)

// Decoder parses the textual profile from an in-memory byte slice.
type Decoder struct {
	input []byte
}

// NewDecoder returns a Decoder over input.
func NewDecoder(input []byte) *Decoder {
	return &Decoder{input: input}
}

// End reports whether only whitespace remains. A conforming top-level
// textual encoding is a single value followed by optional trailing
// whitespace only.
func (d *Decoder) End() error {
	if _, err := d.peekWS(); err != nil {
		if err == codecerr.ErrUnexpectedEOF {
			return nil
		}
		return err
	}
	return codecerr.ErrTrailingCharacters
}

func isWS(b byte) bool {
	return b == 0x09 || b == 0x0A || b == 0x0D || b == 0x20
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func (d *Decoder) peek() (byte, error) {
	if len(d.input) == 0 {
		return 0, codecerr.ErrUnexpectedEOF
	}
	return d.input[0], nil
}

func (d *Decoder) peekOrEnd() (byte, bool) {
	if len(d.input) == 0 {
		return 0, false
	}
	return d.input[0], true
}

func (d *Decoder) next() (byte, error) {
	if len(d.input) == 0 {
		return 0, codecerr.ErrUnexpectedEOF
	}
	b := d.input[0]
	d.input = d.input[1:]
	return b, nil
}

// consumeUntil advances past bytes matching pred and returns the first byte
// that does not, without consuming it.
func (d *Decoder) consumeUntil(pred func(byte) bool) (byte, error) {
	for {
		b, err := d.peek()
		if err != nil {
			return 0, err
		}
		if !pred(b) {
			return b, nil
		}
		d.input = d.input[1:]
	}
}

// advanceWhile advances past bytes matching pred, stopping at end of input.
func (d *Decoder) advanceWhile(pred func(byte) bool) {
	for {
		b, ok := d.peekOrEnd()
		if !ok || !pred(b) {
			return
		}
		d.input = d.input[1:]
	}
}

// peekWS skips whitespace, then peeks at (without consuming) the next byte.
func (d *Decoder) peekWS() (byte, error) {
	return d.consumeUntil(isWS)
}

func (d *Decoder) expectErr(want byte, err error) error {
	got, e := d.next()
	if e != nil {
		return e
	}
	if got != want {
		return err
	}
	return nil
}

func (d *Decoder) expectWSErr(want byte, err error) error {
	if _, e := d.peekWS(); e != nil {
		return e
	}
	return d.expectErr(want, err)
}

func (d *Decoder) expectPred(pred func(byte) bool) error {
	b, err := d.next()
	if err != nil {
		return err
	}
	if !pred(b) {
		return codecerr.ErrSyntax
	}
	return nil
}

func (d *Decoder) parseBool() (bool, error) {
	if hasPrefix(d.input, "true") {
		d.input = d.input[4:]
		return true, nil
	}
	if hasPrefix(d.input, "false") {
		d.input = d.input[5:]
		return false, nil
	}
	return false, codecerr.ErrExpectedBool
}

func hasPrefix(b []byte, s string) bool {
	if len(b) < len(s) {
		return false
	}
	return string(b[:len(s)]) == s
}

// parseNumber recognizes sign? (0 | [1-9][0-9]*) (.  [0-9]+)? ([eE] [+-]?
// [0-9]+)?, then parses the recognized slice with a correct decimal-to-float
// routine and validates the result is Float-Safe.
func (d *Decoder) parseNumber() (floatsafe.Float, error) {
	start := d.input

	if b, ok := d.peekOrEnd(); ok && b == '-' {
		d.input = d.input[1:]
	}

	first, err := d.next()
	if err != nil {
		return floatsafe.Float{}, codecerr.ErrExpectedNumber
	}
	switch {
	case first == '0':
		// a leading zero may not be followed by more digits
	case first >= '1' && first <= '9':
		d.advanceWhile(isDigit)
	default:
		return floatsafe.Float{}, codecerr.ErrExpectedNumber
	}

	if b, ok := d.peekOrEnd(); ok && b == '.' {
		d.input = d.input[1:]
		if err := d.expectPred(isDigit); err != nil {
			return floatsafe.Float{}, err
		}
		d.advanceWhile(isDigit)
	}

	if b, ok := d.peekOrEnd(); ok && (b == 'e' || b == 'E') {
		d.input = d.input[1:]
		if b, ok := d.peekOrEnd(); ok && (b == '+' || b == '-') {
			d.input = d.input[1:]
		}
		if err := d.expectPred(isDigit); err != nil {
			return floatsafe.Float{}, err
		}
		d.advanceWhile(isDigit)
	}

	consumed := len(start) - len(d.input)
	text := string(start[:consumed])

	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return floatsafe.Float{}, codecerr.ErrInvalidNumber
	}
	f, ok := floatsafe.FromFloat64(parsed)
	if !ok {
		return floatsafe.Float{}, codecerr.ErrInvalidNumber
	}
	return f, nil
}

func (d *Decoder) parseString() (string, error) {
	if err := d.expectErr('"', codecerr.ErrExpectedString); err != nil {
		return "", err
	}

	var out []byte
	for {
		b, err := d.peek()
		if err != nil {
			return "", err
		}
		switch {
		case b == '"':
			d.input = d.input[1:]
			return string(out), nil

		case b == '\\':
			d.input = d.input[1:]
			esc, err := d.next()
			if err != nil {
				return "", err
			}
			switch esc {
			case '"':
				out = append(out, '"')
			case '\\':
				out = append(out, '\\')
			case '/':
				out = append(out, '/')
			case 'b':
				out = append(out, 0x08)
			case 'f':
				out = append(out, 0x0C)
			case 'n':
				out = append(out, 0x0A)
			case 'r':
				out = append(out, 0x0D)
			case 't':
				out = append(out, 0x09)
			case 'u':
				r, err := d.parseUnicodeEscape()
				if err != nil {
					return "", err
				}
				out = utf8.AppendRune(out, r)
			default:
				return "", codecerr.ErrInvalidStringContent
			}

		case b <= 0x1F:
			return "", codecerr.ErrInvalidStringContent

		default:
			r, size := utf8.DecodeRune(d.input)
			if r == utf8.RuneError && size <= 1 {
				return "", codecerr.ErrInvalidStringContent
			}
			out = append(out, d.input[:size]...)
			d.input = d.input[size:]
		}
	}
}

// parseUnicodeEscape reads the 4 hex digits following a `\u` that has
// already been consumed, handling the case where it introduces a UTF-16
// surrogate pair that must be immediately followed by a second `\u` escape.
func (d *Decoder) parseUnicodeEscape() (rune, error) {
	high, err := d.readHex4()
	if err != nil {
		return 0, err
	}

	if utf16.IsSurrogate(rune(high)) && high >= 0xD800 && high <= 0xDBFF {
		if err := d.expectErr('\\', codecerr.ErrInvalidStringContent); err != nil {
			return 0, err
		}
		if err := d.expectErr('u', codecerr.ErrInvalidStringContent); err != nil {
			return 0, err
		}
		low, err := d.readHex4()
		if err != nil {
			return 0, err
		}
		r := utf16.DecodeRune(rune(high), rune(low))
		if r == utf8.RuneError {
			return 0, codecerr.ErrInvalidStringContent
		}
		return r, nil
	}

	if high >= 0xDC00 && high <= 0xDFFF {
		// an unpaired low surrogate
		return 0, codecerr.ErrInvalidStringContent
	}

	return rune(high), nil
}

func (d *Decoder) readHex4() (uint16, error) {
	if len(d.input) < 4 {
		return 0, codecerr.ErrInvalidStringContent
	}
	n, err := strconv.ParseUint(string(d.input[:4]), 16, 16)
	if err != nil {
		return 0, codecerr.ErrInvalidStringContent
	}
	d.input = d.input[4:]
	return uint16(n), nil
}

func (d *Decoder) parseNull() error {
	if hasPrefix(d.input, "null") {
		d.input = d.input[4:]
		return nil
	}
	return codecerr.ErrExpectedNull
}

// DecodeAny inspects the next token in d's input (skipping leading
// whitespace) and dispatches to the matching method on v.
func DecodeAny[T any](d *Decoder, v value.Visitor[T]) (T, error) {
	var zero T
	b, err := d.peekWS()
	if err != nil {
		return zero, err
	}
	switch {
	case b == 'n':
		if err := d.parseNull(); err != nil {
			return zero, err
		}
		return v.VisitNull()
	case b == 't' || b == 'f':
		bv, err := d.parseBool()
		if err != nil {
			return zero, err
		}
		return v.VisitBool(bv)
	case b == '"':
		s, err := d.parseString()
		if err != nil {
			return zero, err
		}
		return v.VisitString(s)
	case b == '[':
		return decodeArray(d, v)
	case b == '{':
		return decodeObject(d, v)
	case b == '-' || isDigit(b):
		f, err := d.parseNumber()
		if err != nil {
			return zero, err
		}
		return v.VisitFloat(f)
	default:
		return zero, codecerr.ErrSyntax
	}
}

func decodeArray[T any](d *Decoder, v value.Visitor[T]) (T, error) {
	var zero T
	if err := d.expectErr('[', codecerr.ErrExpectedArray); err != nil {
		return zero, err
	}
	val, err := v.VisitArray(&arrayAccess[T]{d: d, first: true})
	if err != nil {
		return zero, err
	}
	if err := d.expectWSErr(']', codecerr.ErrSyntax); err != nil {
		return zero, err
	}
	return val, nil
}

func decodeObject[T any](d *Decoder, v value.Visitor[T]) (T, error) {
	var zero T
	if err := d.expectErr('{', codecerr.ErrExpectedObject); err != nil {
		return zero, err
	}
	val, err := v.VisitObject(&objectAccess[T]{d: d, first: true})
	if err != nil {
		return zero, err
	}
	if err := d.expectWSErr('}', codecerr.ErrSyntax); err != nil {
		return zero, err
	}
	return val, nil
}

type arrayAccess[T any] struct {
	d     *Decoder
	first bool
}

// SizeHint is always -1: the textual format has no length prefix.
func (a *arrayAccess[T]) SizeHint() int { return -1 }

func (a *arrayAccess[T]) NextElement(v value.Visitor[T]) (T, bool, error) {
	var zero T
	b, err := a.d.peekWS()
	if err != nil {
		return zero, false, err
	}
	if b == ']' {
		return zero, false, nil
	}
	if !a.first {
		if err := a.d.expectWSErr(',', codecerr.ErrSyntax); err != nil {
			return zero, false, err
		}
	}
	a.first = false
	elem, err := DecodeAny(a.d, v)
	if err != nil {
		return zero, false, err
	}
	return elem, true, nil
}

type objectAccess[T any] struct {
	d     *Decoder
	first bool
}

// SizeHint is always -1: the textual format has no length prefix.
func (o *objectAccess[T]) SizeHint() int { return -1 }

func (o *objectAccess[T]) NextKey(has func(string) bool) (string, bool, error) {
	b, err := o.d.peekWS()
	if err != nil {
		return "", false, err
	}
	if b == '}' {
		return "", false, nil
	}
	if !o.first {
		if err := o.d.expectWSErr(',', codecerr.ErrSyntax); err != nil {
			return "", false, err
		}
	}
	o.first = false

	if _, err := o.d.consumeUntil(isWS); err != nil {
		return "", false, err
	}
	key, err := o.d.parseString()
	if err != nil {
		return "", false, err
	}
	if has(key) {
		return "", false, codecerr.ErrDuplicateKey
	}
	return key, true, nil
}

func (o *objectAccess[T]) NextValue(v value.Visitor[T]) (T, error) {
	if err := o.d.expectWSErr(':', codecerr.ErrSyntax); err != nil {
		var zero T
		return zero, err
	}
	if _, err := o.d.consumeUntil(isWS); err != nil {
		var zero T
		return zero, err
	}
	return DecodeAny(o.d, v)
}
