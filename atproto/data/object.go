package data

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
)

// An ordered JSON object, with each property value held as raw (compacted) JSON.
//
// This is used wherever data needs to survive a decode/encode cycle without being interpreted: properties which a typed struct does not declare, and the full body of objects with an unrecognized $type. Property order is preserved as encountered, and values are never re-formatted beyond whitespace removal (so number literals are kept verbatim).
//
// A nil *Object is valid and empty. Objects are built once (by parsing, or with [Object.Set]) and then treated as read-only; use [Object.Clone] before modifying one which is shared.
type Object struct {
	keys   []string
	values map[string]json.RawMessage
}

func NewObject() *Object {
	return &Object{values: make(map[string]json.RawMessage)}
}

// Parses a JSON object, preserving property order. Duplicate keys, trailing data, and non-object values are errors.
func ParseObject(b []byte) (*Object, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}
	obj := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		if len(key) > MaxObjectKeyLen {
			return nil, fmt.Errorf("data object key too long: %d", len(key))
		}
		if obj.Has(key) {
			return nil, fmt.Errorf("duplicate object key: %q", key)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		if err := obj.Set(key, raw); err != nil {
			return nil, err
		}
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON object")
	}
	return obj, nil
}

// Sets a property to a raw JSON value. Existing keys keep their position.
func (o *Object) Set(key string, val json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Compact(&buf, val); err != nil {
		return fmt.Errorf("invalid JSON for property %q: %w", key, err)
	}
	if o.values == nil {
		o.values = make(map[string]json.RawMessage)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = json.RawMessage(buf.Bytes())
	return nil
}

// Marshals v with encoding/json and sets the result as a property.
func (o *Object) SetValue(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return o.Set(key, b)
}

func (o *Object) Get(key string) (json.RawMessage, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Returns the property value if it is present and a JSON string.
func (o *Object) GetString(key string) (string, bool) {
	raw, ok := o.Get(key)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Property names, in order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Iterates over properties in order.
func (o *Object) All() iter.Seq2[string, json.RawMessage] {
	return func(yield func(string, json.RawMessage) bool) {
		if o == nil {
			return
		}
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}

func (o *Object) Clone() *Object {
	out := NewObject()
	for k, v := range o.All() {
		out.keys = append(out.keys, k)
		out.values[k] = v
	}
	return out
}

// Returns a copy with the named properties removed.
func (o *Object) Without(keys ...string) *Object {
	skip := make(map[string]bool, len(keys))
	for _, k := range keys {
		skip[k] = true
	}
	out := NewObject()
	for k, v := range o.All() {
		if skip[k] {
			continue
		}
		out.keys = append(out.keys, k)
		out.values[k] = v
	}
	return out
}

// Structural equality: same set of keys, with semantically equal values. Property order is ignored, both at the top level and in nested objects. A nil Object is equal to an empty one.
func (o *Object) Equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	for k, v := range o.All() {
		ov, ok := other.Get(k)
		if !ok {
			return false
		}
		if !RawEqual(v, ov) {
			return false
		}
	}
	return true
}

func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(o.values[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o *Object) UnmarshalJSON(b []byte) error {
	parsed, err := ParseObject(b)
	if err != nil {
		return err
	}
	*o = *parsed
	return nil
}

// Compares two raw JSON values for semantic equality: object key order and insignificant whitespace are ignored, number literals are compared as written.
func RawEqual(a, b json.RawMessage) bool {
	ca, err := canonicalJSON(a)
	if err != nil {
		return false
	}
	cb, err := canonicalJSON(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ca, cb)
}

// re-encodes raw JSON with object keys sorted (encoding/json sorts map keys) and numbers preserved as literals
func canonicalJSON(raw json.RawMessage) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}
