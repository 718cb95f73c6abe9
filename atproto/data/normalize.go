package data

import (
	"encoding"
	"encoding/base64"
	"encoding/json"
	"math"
	"reflect"
	"strconv"

	"github.com/bluesky-social/lexcodec/atproto/syntax"

	"github.com/ipfs/go-cid"
)

// Converts an object to the in-memory form of atproto data, rejecting anything the data model does not allow.
//
// Numbers become int64; $link, $bytes and blob objects become [CIDLink], [Bytes] and [Blob]. Values that are already normalized pass through unchanged.
func normalizeObject(obj map[string]any) (map[string]any, error) {
	if obj == nil {
		return nil, violation("top-level datum was not an object")
	}
	out, err := normalizeMap(obj, 1)
	if err != nil {
		return nil, err
	}
	m, ok := out.(map[string]any)
	if !ok {
		return nil, violation("top-level datum was not an object")
	}
	return m, nil
}

// depth is the nesting level a container found at this position would have
func normalize(val any, depth int) (any, error) {
	switch v := val.(type) {
	case nil, bool, int64, Bytes, Blob:
		return v, nil
	case CIDLink:
		if !v.Defined() {
			return nil, violation("undefined CID")
		}
		return v, nil
	case int:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, violation("integer out of range: %d", v)
		}
		return int64(v), nil
	case float64:
		return integerFromFloat(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, violation("number out of range: %s", v)
		}
		return integerFromFloat(f)
	case string:
		if len(v) > MaxStringLen {
			return nil, violation("string too long: %d bytes", len(v))
		}
		return v, nil
	case []byte:
		if len(v) > MaxBytesLen {
			return nil, violation("byte string too long: %d bytes", len(v))
		}
		return Bytes(v), nil
	case cid.Cid:
		if !v.Defined() {
			return nil, violation("undefined CID")
		}
		return CIDLink(v), nil
	case []any:
		return normalizeList(v, depth)
	case map[string]any:
		return normalizeMap(v, depth)
	case encoding.TextMarshaler:
		text, err := v.MarshalText()
		if err != nil {
			return nil, violation("%T: %w", v, err)
		}
		return normalize(string(text), depth)
	}

	rv := reflect.ValueOf(val)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil
		}
		return normalize(rv.Elem().Interface(), depth)
	}
	return nil, violation("unsupported value type: %T", val)
}

func integerFromFloat(f float64) (int64, error) {
	if math.Trunc(f) != f || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, violation("number is not an integer: %v", f)
	}
	return int64(f), nil
}

func normalizeList(l []any, depth int) ([]any, error) {
	if depth > MaxNestingDepth {
		return nil, violation("containers nested more than %d levels deep", MaxNestingDepth)
	}
	if len(l) > MaxContainerLen {
		return nil, violation("array has too many elements: %d", len(l))
	}
	out := make([]any, len(l))
	for i, elem := range l {
		n, err := normalize(elem, depth+1)
		if err != nil {
			return nil, within(err, "["+strconv.Itoa(i)+"]")
		}
		out[i] = n
	}
	return out, nil
}

func normalizeMap(obj map[string]any, depth int) (any, error) {
	if depth > MaxNestingDepth {
		return nil, violation("containers nested more than %d levels deep", MaxNestingDepth)
	}
	if len(obj) > MaxContainerLen {
		return nil, violation("object has too many entries: %d", len(obj))
	}
	if _, ok := obj["$link"]; ok {
		return linkFrom(obj)
	}
	if _, ok := obj["$bytes"]; ok {
		return bytesFrom(obj)
	}
	if typ, ok := obj["$type"]; ok {
		s, isString := typ.(string)
		if !isString || s == "" {
			return nil, within(violation("$type must be a non-empty string"), "$type")
		}
		if s == "blob" {
			return blobFrom(obj)
		}
	} else if isLegacyBlob(obj) {
		return legacyBlobFrom(obj)
	}

	out := make(map[string]any, len(obj))
	for k, val := range obj {
		if len(k) > MaxObjectKeyLen {
			return nil, violation("object key too long: %d bytes", len(k))
		}
		n, err := normalize(val, depth+1)
		if err != nil {
			return nil, within(err, k)
		}
		out[k] = n
	}
	return out, nil
}

func linkFrom(obj map[string]any) (CIDLink, error) {
	if len(obj) != 1 {
		return CIDLink{}, violation("$link object has extra fields")
	}
	s, ok := obj["$link"].(string)
	if !ok {
		return CIDLink{}, within(violation("not a string"), "$link")
	}
	parsed, err := syntax.ParseCID(s)
	if err != nil {
		return CIDLink{}, within(violation("%w", err), "$link")
	}
	c, err := parsed.Cid()
	if err != nil {
		return CIDLink{}, within(violation("%w", err), "$link")
	}
	return CIDLink(c), nil
}

func bytesFrom(obj map[string]any) (Bytes, error) {
	if len(obj) != 1 {
		return nil, violation("$bytes object has extra fields")
	}
	s, ok := obj["$bytes"].(string)
	if !ok {
		return nil, within(violation("not a string"), "$bytes")
	}
	b, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return nil, within(violation("bad base64: %w", err), "$bytes")
	}
	if len(b) > MaxBytesLen {
		return nil, within(violation("byte string too long: %d bytes", len(b)), "$bytes")
	}
	return Bytes(b), nil
}

func blobFrom(obj map[string]any) (Blob, error) {
	if len(obj) != 4 {
		return Blob{}, violation("blob must have exactly $type, ref, mimeType and size")
	}
	mimeType, ok := obj["mimeType"].(string)
	if !ok {
		return Blob{}, within(violation("missing or not a string"), "mimeType")
	}
	size, err := normalize(obj["size"], 0)
	if err != nil {
		return Blob{}, within(err, "size")
	}
	n, ok := size.(int64)
	if !ok || n < 0 {
		return Blob{}, within(violation("missing or not a non-negative integer"), "size")
	}

	var ref CIDLink
	switch v := obj["ref"].(type) {
	case CIDLink:
		ref = v
	case cid.Cid:
		ref = CIDLink(v)
	case map[string]any:
		ref, err = linkFrom(v)
		if err != nil {
			return Blob{}, within(err, "ref")
		}
	default:
		return Blob{}, within(violation("missing or not a CID link"), "ref")
	}
	if !ref.Defined() {
		return Blob{}, within(violation("undefined CID"), "ref")
	}
	return Blob{Ref: ref, MimeType: mimeType, Size: n}, nil
}

// older records reference blobs as {"cid": "<string>", "mimeType": "..."}
func isLegacyBlob(obj map[string]any) bool {
	if len(obj) != 2 {
		return false
	}
	_, hasCID := obj["cid"]
	_, hasMimeType := obj["mimeType"]
	return hasCID && hasMimeType
}

func legacyBlobFrom(obj map[string]any) (Blob, error) {
	mimeType, ok := obj["mimeType"].(string)
	if !ok {
		return Blob{}, within(violation("missing or not a string"), "mimeType")
	}
	s, ok := obj["cid"].(string)
	if !ok {
		return Blob{}, within(violation("not a string"), "cid")
	}
	c, err := cid.Decode(s)
	if err != nil {
		return Blob{}, within(violation("bad CID: %w", err), "cid")
	}
	return Blob{Ref: CIDLink(c), MimeType: mimeType, Size: -1}, nil
}
