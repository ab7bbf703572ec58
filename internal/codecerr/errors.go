// Package codecerr defines the tagged error variants shared by the textual
// and binary codecs. Each variant is a sentinel error value; the codecs
// return the sentinel itself, with no byte offset or other positional
// detail, and callers recover the tag with errors.Is (which also sees
// through any wrapping a caller adds). No error is used as control flow
// for expected input — every one of these aborts the current encode/decode
// call immediately.
package codecerr

import "errors"

// Structural errors: something about the shape of the input is wrong.
var (
	// ErrUnexpectedEOF means more input was needed but the slice ended.
	ErrUnexpectedEOF = errors.New("legacymsg: unexpected end of input")
	// ErrTrailingBytes means a complete binary value decoded with input left over.
	ErrTrailingBytes = errors.New("legacymsg: trailing bytes after top-level value")
	// ErrTrailingCharacters means a complete textual value decoded with
	// non-whitespace input left over.
	ErrTrailingCharacters = errors.New("legacymsg: trailing characters after top-level value")
	// ErrSyntax is a generic textual grammar violation.
	ErrSyntax = errors.New("legacymsg: syntax error")
	// ErrForbiddenType means a binary major/additional-info combination
	// outside the accepted profile was encountered.
	ErrForbiddenType = errors.New("legacymsg: forbidden binary type")
	// ErrInvalidLength means a claimed length exceeds the remaining input.
	ErrInvalidLength = errors.New("legacymsg: invalid length")
)

// Semantic errors: the input parsed but violates a value-level invariant.
var (
	// ErrInvalidNumber means a float failed the Float-Safe validity rule
	// (non-finite, or negative zero).
	ErrInvalidNumber = errors.New("legacymsg: invalid number")
	// ErrInvalidStringContent means a string was not valid UTF-8, used a
	// disallowed escape, or contained an unescaped control byte.
	ErrInvalidStringContent = errors.New("legacymsg: invalid string content")
	// ErrDuplicateKey means an object had two entries with the same key.
	ErrDuplicateKey = errors.New("legacymsg: duplicate object key")
)

// Mode-mismatch errors: a visitor or fixed-shape decode expected one variant
// and found another.
var (
	ErrExpectedBool   = errors.New("legacymsg: expected bool")
	ErrExpectedNumber = errors.New("legacymsg: expected number")
	ErrExpectedString = errors.New("legacymsg: expected string")
	ErrExpectedNull   = errors.New("legacymsg: expected null")
	ErrExpectedArray  = errors.New("legacymsg: expected array")
	ErrExpectedObject = errors.New("legacymsg: expected object")
)

// Encode-time errors.
var (
	// ErrInvalidFloat means an encoder was asked to serialize a float that
	// fails the Float-Safe validity rule.
	ErrInvalidFloat = errors.New("legacymsg: invalid float for encoding")
)
