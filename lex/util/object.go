package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/bluesky-social/lexcodec/atproto/data"
)

type fieldInfo struct {
	name     string
	index    []int
	required bool
}

type structInfo struct {
	fields []fieldInfo
	byName map[string]int
}

// reflect.Type -> *structInfo. Only derived type metadata is stored, same as encoding/json's field cache.
var structInfoCache sync.Map

func getStructInfo(t reflect.Type) *structInfo {
	if si, ok := structInfoCache.Load(t); ok {
		return si.(*structInfo)
	}
	si := &structInfo{byName: make(map[string]int)}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		required := true
		for _, opt := range strings.Split(opts, ",") {
			if opt == "omitempty" || opt == "omitzero" {
				required = false
			}
		}
		// the discriminator is checked by the family, if there is one
		if name == "$type" {
			required = false
		}
		si.byName[name] = len(si.fields)
		si.fields = append(si.fields, fieldInfo{name: name, index: f.Index, required: required})
	}
	actual, _ := structInfoCache.LoadOrStore(t, si)
	return actual.(*structInfo)
}

// Decodes a JSON object in to dst, which must be a pointer to a struct (usually an alias of the lexicon type, to avoid recursing in to UnmarshalJSON).
//
// Fields without omitempty or omitzero in their json tag are required, and missing ones are an error. A JSON null is only accepted for optional fields which can hold nil (pointers and slices), where it means absent; anywhere else, including array elements, it is a type mismatch. Array fields are decoded element by element, so errors carry the index. Properties which do not match any field are collected in to *extra, in the order encountered; if extra is nil they are dropped.
//
// A JSON null leaves dst untouched.
func UnmarshalObject(b []byte, dst any, extra **data.Object) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("UnmarshalObject requires a non-nil struct pointer, got %T", dst)
	}
	if isNull(b) {
		return nil
	}
	obj, err := data.ParseObject(b)
	if err != nil {
		return objectError(b, err)
	}

	sv := rv.Elem()
	sv.Set(reflect.Zero(sv.Type()))
	si := getStructInfo(sv.Type())

	var unknown *data.Object
	for key, raw := range obj.All() {
		idx, ok := si.byName[key]
		if !ok {
			if extra == nil {
				continue
			}
			if unknown == nil {
				unknown = data.NewObject()
			}
			if err := unknown.Set(key, raw); err != nil {
				return wrapPath(err, key)
			}
			continue
		}
		fi := si.fields[idx]
		fv := sv.FieldByIndex(fi.index)
		if isNull(raw) && (fi.required || !nillable(fv.Kind())) {
			return wrapPath(unexpectedNull(), key)
		}
		if err := decodeField(raw, fv); err != nil {
			return wrapPath(err, key)
		}
	}
	for _, fi := range si.fields {
		if fi.required && !obj.Has(fi.name) {
			return missingField(fi.name)
		}
	}
	if extra != nil {
		*extra = unknown
	}
	return nil
}

func decodeField(raw json.RawMessage, fv reflect.Value) error {
	if fv.Kind() == reflect.Slice && fv.Type().Elem().Kind() != reflect.Uint8 && !isNull(raw) {
		if _, custom := fv.Addr().Interface().(json.Unmarshaler); !custom {
			var elems []json.RawMessage
			if err := json.Unmarshal(raw, &elems); err != nil {
				return err
			}
			out := reflect.MakeSlice(fv.Type(), len(elems), len(elems))
			for i, elem := range elems {
				if isNull(elem) {
					return wrapPath(unexpectedNull(), "["+strconv.Itoa(i)+"]")
				}
				if err := json.Unmarshal(elem, out.Index(i).Addr().Interface()); err != nil {
					return wrapPath(err, "["+strconv.Itoa(i)+"]")
				}
			}
			fv.Set(out)
			return nil
		}
	}
	return json.Unmarshal(raw, fv.Addr().Interface())
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return true
	}
	return false
}

// Encodes src (usually an alias of the lexicon type) with encoding/json, then appends the properties from extra. Properties in extra which collide with a declared field name are skipped.
func MarshalObject(src any, extra *data.Object) ([]byte, error) {
	b, err := json.Marshal(src)
	if err != nil {
		return nil, err
	}
	if extra.Len() == 0 {
		return b, nil
	}
	t := reflect.TypeOf(src)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || len(b) < 2 || b[len(b)-1] != '}' {
		return nil, fmt.Errorf("MarshalObject requires a struct, got %T", src)
	}
	si := getStructInfo(t)

	var buf bytes.Buffer
	buf.Write(b[:len(b)-1])
	empty := len(b) == 2
	for key, raw := range extra.All() {
		if _, declared := si.byName[key]; declared {
			continue
		}
		if !empty {
			buf.WriteByte(',')
		}
		empty = false
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.Write(raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
