package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"strings"

	"github.com/bluesky-social/lexcodec/atproto/data"
	"github.com/bluesky-social/lexcodec/atproto/syntax"
)

// A concrete lexicon object type which can appear in a union (polymorphic) slot. LexiconType returns the $type tag the type is registered under.
type Variant interface {
	LexiconType() string
}

// Set of variants which can appear in a single union slot, keyed by $type tag.
//
// Families are built with [NewFamily] and [Family.Register] during package initialization, and are read-only afterwards. Registration mistakes (duplicate or malformed tags) panic. All families are open: any tag which is not registered decodes to an [UnknownVariant].
type Family struct {
	name       string
	types      map[string]reflect.Type
	defaultTag string
}

func NewFamily(name string) *Family {
	return &Family{
		name:  name,
		types: make(map[string]reflect.Type),
	}
}

func (f *Family) Name() string {
	return f.name
}

// Adds a variant to the family. val is a value or pointer of the variant's Go type; a fresh pointer to that type is allocated for each decoded value.
func (f *Family) Register(tag string, val Variant) *Family {
	if err := checkTag(tag); err != nil {
		panic(fmt.Sprintf("lexicon family %s: %s", f.name, err))
	}
	if _, ok := f.types[tag]; ok {
		panic(fmt.Sprintf("lexicon family %s: duplicate type registration: %s", f.name, tag))
	}
	t := reflect.TypeOf(val)
	if t == nil {
		panic(fmt.Sprintf("lexicon family %s: nil value registered for %s", f.name, tag))
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if _, ok := reflect.New(t).Interface().(json.Unmarshaler); !ok {
		panic(fmt.Sprintf("lexicon family %s: %s does not implement json.Unmarshaler", f.name, t))
	}
	f.types[tag] = t
	return f
}

// Sets the tag assumed for objects in this family which have no $type property. The tag must already be registered.
func (f *Family) WithDefault(tag string) *Family {
	if _, ok := f.types[tag]; !ok {
		panic(fmt.Sprintf("lexicon family %s: default type not registered: %s", f.name, tag))
	}
	f.defaultTag = tag
	return f
}

// Registered tags, sorted.
func (f *Family) Tags() []string {
	out := make([]string, 0, len(f.types))
	for tag := range f.types {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// Returns a constructor for the given tag, and whether the tag is registered. Unregistered tags get a constructor for [UnknownVariant].
func (f *Family) Resolve(tag string) (func() Variant, bool) {
	t, ok := f.types[tag]
	if !ok {
		return func() Variant { return &UnknownVariant{Type: tag} }, false
	}
	return func() Variant { return reflect.New(t).Interface().(Variant) }, true
}

// Decodes a single JSON object in to the registered variant named by its $type. A JSON null decodes to a nil Variant.
func (f *Family) Decode(b []byte) (Variant, error) {
	if isNull(b) {
		return nil, nil
	}
	obj, err := data.ParseObject(b)
	if err != nil {
		return nil, objectError(b, err)
	}

	var tag string
	if raw, ok := obj.Get("$type"); ok {
		if err := json.Unmarshal(raw, &tag); err != nil {
			return nil, wrapPath(err, "$type")
		}
		if tag == "" {
			return nil, &DecodeError{Kind: KindTypeMismatch, Path: "$type", Err: fmt.Errorf("empty $type in %s", f.name)}
		}
	} else if f.defaultTag != "" {
		tag = f.defaultTag
	} else {
		return nil, missingField("$type")
	}

	ctor, known := f.Resolve(tag)
	if !known {
		unknownVariants.WithLabelValues(f.name).Inc()
		slog.Debug("unrecognized lexicon type in union", "family", f.name, "type", tag)
		return &UnknownVariant{Type: tag, Data: obj}, nil
	}
	v := ctor()
	if err := json.Unmarshal(b, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Helper for union slot types: decodes b and stores the result in dst. Unlike [Family.Decode], a JSON null is an error: an optional slot which is null never reaches its UnmarshalJSON, so a null here is in a position which requires a value.
func (f *Family) UnmarshalInto(b []byte, dst *Variant) error {
	if isNull(b) {
		return unexpectedNull()
	}
	v, err := f.Decode(b)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// Encodes a variant, ensuring the $type property is present in the output.
func MarshalVariant(v Variant) ([]byte, error) {
	if v == nil || (reflect.ValueOf(v).Kind() == reflect.Pointer && reflect.ValueOf(v).IsNil()) {
		return nil, fmt.Errorf("cannot marshal empty union value")
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	typ, err := data.ExtractTypeJSON(b)
	if err != nil {
		return nil, err
	}
	if typ != "" {
		return b, nil
	}
	if len(b) < 2 || b[0] != '{' {
		return nil, fmt.Errorf("union value %s did not encode as a JSON object", v.LexiconType())
	}
	tagJSON, err := json.Marshal(v.LexiconType())
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(`{"$type":`)
	buf.Write(tagJSON)
	if !bytes.Equal(b, []byte("{}")) {
		buf.WriteByte(',')
	}
	buf.Write(b[1:])
	return buf.Bytes(), nil
}

// tags are NSIDs, optionally with a "#fragment"; "blob" is reserved
func checkTag(tag string) error {
	if tag == "" {
		return fmt.Errorf("empty type tag")
	}
	nsid, frag, hasFrag := strings.Cut(tag, "#")
	if hasFrag && frag == "" {
		return fmt.Errorf("empty fragment in type tag: %s", tag)
	}
	if _, err := syntax.ParseNSID(nsid); err != nil {
		return fmt.Errorf("invalid type tag: %w", err)
	}
	return nil
}

func isNull(b []byte) bool {
	return bytes.Equal(bytes.TrimSpace(b), []byte("null"))
}

// errors from data.ParseObject are either malformed JSON (including duplicate keys), or a valid JSON value which is not an object
func objectError(b []byte, err error) error {
	trimmed := bytes.TrimSpace(b)
	if json.Valid(trimmed) && (len(trimmed) == 0 || trimmed[0] != '{') {
		return &DecodeError{Kind: KindTypeMismatch, Err: err}
	}
	return &DecodeError{Kind: KindMalformedJSON, Err: err}
}
