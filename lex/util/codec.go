package util

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/bluesky-social/lexcodec/atproto/data"
	"github.com/bluesky-social/lexcodec/atproto/syntax"
)

// Decodes a complete JSON document in to v, which must be a non-nil pointer to a lexicon type.
//
// Any error aborts the whole decode and is returned as a *DecodeError; v is only written on success.
func Decode(b []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("lexicon decode requires a non-nil pointer, got %T", v)
	}
	if isNull(b) {
		return decodeFailed(unexpectedNull())
	}
	tmp := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(b, tmp.Interface()); err != nil {
		return decodeFailed(err)
	}
	rv.Elem().Set(tmp.Elem())
	return nil
}

// Decodes a record document of any registered type, using the $type property.
func DecodeRecord(b []byte) (Variant, error) {
	v, err := records.Decode(b)
	if err != nil {
		return nil, decodeFailed(err)
	}
	if v == nil {
		return nil, decodeFailed(&DecodeError{Kind: KindTypeMismatch, Err: fmt.Errorf("expected record object, got null")})
	}
	return v, nil
}

func decodeFailed(err error) *DecodeError {
	de := asDecodeError(err)
	decodeErrors.WithLabelValues(string(de.Kind)).Inc()
	return de
}

// Encodes a lexicon value as JSON. Variants (records and union members) always include their $type.
func Encode(v any) ([]byte, error) {
	if vv, ok := v.(Variant); ok {
		return MarshalVariant(vv)
	}
	return json.Marshal(v)
}

// Structural equality of two lexicon values, defined over their canonical encoding: identifiers compare by string form, enums by resolved value, datetimes by instant, and unknown properties and unknown variant payloads are included. Property order is not significant.
//
// If either value fails to encode (eg, an undefined cid-link or an undeclared enum value), the values are compared with reflect.DeepEqual instead, so such a value still equals itself.
func Equal(a, b any) bool {
	ab, aErr := Encode(a)
	bb, bErr := Encode(b)
	if aErr != nil || bErr != nil {
		return reflect.DeepEqual(a, b)
	}
	return data.RawEqual(ab, bb)
}

// Computes the CID of a record: DAG-CBOR encoding of the record's data model, hashed with sha2-256.
func RecordCID(v any) (syntax.CID, error) {
	b, err := Encode(v)
	if err != nil {
		return "", err
	}
	obj, err := data.UnmarshalJSON(b)
	if err != nil {
		return "", fmt.Errorf("record is not valid atproto data: %w", err)
	}
	c, err := data.ComputeCID(obj)
	if err != nil {
		return "", err
	}
	return syntax.CIDFromCid(c)
}
