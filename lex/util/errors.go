package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bluesky-social/lexcodec/atproto/data"
	"github.com/bluesky-social/lexcodec/atproto/syntax"
)

type DecodeErrorKind string

const (
	// A scalar identifier (DID, AT-URI, CID, etc) failed its syntax check
	KindMalformedIdentifier DecodeErrorKind = "malformed-identifier"
	// A required (non-optional) property was absent
	KindMissingRequiredField DecodeErrorKind = "missing-required-field"
	// A property had the wrong JSON kind (eg, number where string expected), or an otherwise unusable value
	KindTypeMismatch DecodeErrorKind = "type-mismatch"
	// The input was not well-formed JSON
	KindMalformedJSON DecodeErrorKind = "malformed-json"
)

// Fatal error decoding a lexicon document. Path is the trail of property names and array indices from the document root to the offending value, like "embed.images[0].image".
//
// Note that unrecognized $type values and unrecognized enum strings are not errors.
type DecodeError struct {
	Kind DecodeErrorKind
	Path string
	// Offending input text, when known (eg, the malformed identifier string)
	Raw string
	Err error
}

func (e *DecodeError) Error() string {
	path := e.Path
	if path == "" {
		path = "(root)"
	}
	if e.Err != nil {
		return fmt.Sprintf("lexicon decode: %s at %s: %s", e.Kind, path, e.Err)
	}
	return fmt.Sprintf("lexicon decode: %s at %s", e.Kind, path)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func missingField(name string) *DecodeError {
	return &DecodeError{
		Kind: KindMissingRequiredField,
		Path: name,
		Err:  fmt.Errorf("required property %q not found", name),
	}
}

func unexpectedNull() *DecodeError {
	return &DecodeError{
		Kind: KindTypeMismatch,
		Raw:  "null",
		Err:  fmt.Errorf("unexpected null value"),
	}
}

// converts any error from decoding a value in to a *DecodeError, with the given path segment prepended
func wrapPath(err error, seg string) error {
	if err == nil {
		return nil
	}
	de := asDecodeError(err)
	out := *de
	out.Path = joinPath(seg, de.Path)
	return &out
}

func joinPath(seg, inner string) string {
	switch {
	case seg == "":
		return inner
	case inner == "":
		return seg
	case strings.HasPrefix(inner, "["):
		return seg + inner
	default:
		return seg + "." + inner
	}
}

// classifies an arbitrary decode error. Errors which are already a *DecodeError are returned as-is.
func asDecodeError(err error) *DecodeError {
	var de *DecodeError
	if errors.As(err, &de) {
		return de
	}
	var modelErr *data.ModelError
	if errors.As(err, &modelErr) {
		inner := asDecodeError(modelErr.Err)
		return &DecodeError{Kind: inner.Kind, Path: modelErr.Path, Raw: inner.Raw, Err: err}
	}
	var synErr *syntax.SyntaxError
	if errors.As(err, &synErr) {
		return &DecodeError{Kind: KindMalformedIdentifier, Raw: synErr.Raw, Err: err}
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &DecodeError{Kind: KindTypeMismatch, Path: typeErr.Field, Raw: typeErr.Value, Err: err}
	}
	var jsonErr *json.SyntaxError
	if errors.As(err, &jsonErr) {
		return &DecodeError{Kind: KindMalformedJSON, Err: err}
	}
	return &DecodeError{Kind: KindTypeMismatch, Err: err}
}
