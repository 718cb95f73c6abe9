package data

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	cbor "github.com/ipfs/go-ipld-cbor"
	cbg "github.com/whyrusleeping/cbor-gen"
)

// Parses a JSON object as generic atproto data, checking it against the data model.
//
// Integers are kept exact (no float64 round trip). The result can be turned back in to JSON with encoding/json.
func UnmarshalJSON(b []byte) (map[string]any, error) {
	if len(b) > MaxRecordJSONSize {
		return nil, fmt.Errorf("JSON record too large: %d bytes", len(b))
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after top-level object")
	}
	return normalizeObject(raw)
}

// Parses a DAG-CBOR block as generic atproto data, checking it against the data model.
func UnmarshalCBOR(b []byte) (map[string]any, error) {
	if len(b) > MaxRecordCBORSize {
		return nil, fmt.Errorf("CBOR record too large: %d bytes", len(b))
	}
	var raw map[string]any
	if err := cbor.DecodeInto(b, &raw); err != nil {
		return nil, err
	}
	return normalizeObject(raw)
}

// Encodes generic atproto data as DAG-CBOR. The data is normalized first, so syntax types, pointers and untyped numbers are accepted.
func MarshalCBOR(obj map[string]any) ([]byte, error) {
	norm, err := normalizeObject(obj)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := writeCBOR(cbg.NewCborWriter(&buf), norm); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
