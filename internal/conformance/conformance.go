// Package conformance implements the test-vector runner used to check a
// legacymsg build against the format's documented scenarios. It is
// repurposed from the teacher's vectors.json/ContentHash verifier: instead
// of diffing a computed content hash against an expected one, each vector
// here names a decode input and either an expected re-encoded signing-form
// text or an expected decode error tag.
package conformance

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/holeyfield33-art/legacymsg/internal/binarycodec"
	"github.com/holeyfield33-art/legacymsg/internal/codecerr"
	"github.com/holeyfield33-art/legacymsg/internal/textcodec"
	"github.com/holeyfield33-art/legacymsg/internal/value"
)

// Vector is a single conformance check. Exactly one of InputText and
// InputHex should be set, identifying the encoding the input is decoded
// with. Exactly one of ExpectedSigningText and ExpectErrTag should be set:
// the former checks a successful decode re-encodes to that exact signing
// form, the latter checks decoding fails with the named error tag.
type Vector struct {
	Name                string `json:"name"`
	Description         string `json:"description,omitempty"`
	InputText           string `json:"input_text,omitempty"`
	InputHex            string `json:"input_hex,omitempty"`
	ExpectedSigningText string `json:"expected_signing_text,omitempty"`
	ExpectErrTag        string `json:"expect_err,omitempty"`
}

// VectorsFile is the top-level structure of a vectors JSON file.
type VectorsFile struct {
	Vectors []Vector `json:"vectors"`
}

// Result holds the outcome of running a single Vector.
type Result struct {
	Name string
	Pass bool
	// Got is the re-encoded signing text on a successful decode, or the
	// error's message if decoding failed.
	Got string
}

// errTags maps the string tags a Vector's ExpectErrTag may name to the
// sentinel error values declared in codecerr.
var errTags = map[string]error{
	"ErrUnexpectedEOF":        codecerr.ErrUnexpectedEOF,
	"ErrTrailingBytes":        codecerr.ErrTrailingBytes,
	"ErrTrailingCharacters":   codecerr.ErrTrailingCharacters,
	"ErrSyntax":               codecerr.ErrSyntax,
	"ErrForbiddenType":        codecerr.ErrForbiddenType,
	"ErrInvalidLength":        codecerr.ErrInvalidLength,
	"ErrInvalidNumber":        codecerr.ErrInvalidNumber,
	"ErrInvalidStringContent": codecerr.ErrInvalidStringContent,
	"ErrDuplicateKey":         codecerr.ErrDuplicateKey,
	"ErrExpectedBool":         codecerr.ErrExpectedBool,
	"ErrExpectedNumber":       codecerr.ErrExpectedNumber,
	"ErrExpectedString":       codecerr.ErrExpectedString,
	"ErrExpectedNull":         codecerr.ErrExpectedNull,
	"ErrExpectedArray":        codecerr.ErrExpectedArray,
	"ErrExpectedObject":       codecerr.ErrExpectedObject,
}

// LoadVectors reads a vectors JSON file from path.
func LoadVectors(path string) ([]Vector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vectors file: %w", err)
	}
	var vf VectorsFile
	if err := json.Unmarshal(data, &vf); err != nil {
		return nil, fmt.Errorf("failed to parse vectors file: %w", err)
	}
	return vf.Vectors, nil
}

// Run decodes and checks every vector, returning one Result per vector. It
// returns an error (in addition to the per-vector results) if any vector
// failed. A vector naming an unknown error tag stops the run: Run then
// returns no results, only an error.
func Run(vectors []Vector) ([]Result, error) {
	results := make([]Result, len(vectors))
	var failures int

	for i, vec := range vectors {
		pass, got, err := runOne(vec)
		if err != nil {
			return nil, fmt.Errorf("vector %q: %w", vec.Name, err)
		}
		results[i] = Result{Name: vec.Name, Pass: pass, Got: got}
		if !pass {
			failures++
		}
	}

	if failures > 0 {
		return results, fmt.Errorf("%d of %d vectors failed", failures, len(vectors))
	}
	return results, nil
}

func runOne(vec Vector) (pass bool, got string, err error) {
	v, decodeErr := decodeVector(vec)

	if vec.ExpectErrTag != "" {
		wantErr, ok := errTags[vec.ExpectErrTag]
		if !ok {
			return false, "", fmt.Errorf("unknown error tag %q", vec.ExpectErrTag)
		}
		if decodeErr == nil {
			return false, "decode succeeded, expected an error", nil
		}
		return errors.Is(decodeErr, wantErr), decodeErr.Error(), nil
	}

	if decodeErr != nil {
		return false, decodeErr.Error(), nil
	}
	got = textcodec.ToString(v, true)
	return got == vec.ExpectedSigningText, got, nil
}

func decodeVector(vec Vector) (value.ValueOrdered, error) {
	visitor := value.ValueOrderedVisitor{Limits: value.DefaultLimits}
	if vec.InputHex != "" {
		raw, err := hex.DecodeString(vec.InputHex)
		if err != nil {
			return value.ValueOrdered{}, fmt.Errorf("invalid hex input: %w", err)
		}
		return binarycodec.FromSlice[value.ValueOrdered](raw, visitor, value.DefaultLimits)
	}
	return textcodec.FromString[value.ValueOrdered](vec.InputText, visitor)
}
