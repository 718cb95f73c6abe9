package data

import (
	"encoding/json"
)

// Reads the top-level $type of a JSON object, without decoding the rest. Returns "" if there is none.
func ExtractTypeJSON(b []byte) (string, error) {
	var head struct {
		Type string `json:"$type"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return "", err
	}
	return head.Type, nil
}

// Collects every blob referenced anywhere in normalized data, in no particular order.
func ExtractBlobs(obj map[string]any) []Blob {
	var out []Blob
	var walk func(val any)
	walk = func(val any) {
		switch v := val.(type) {
		case Blob:
			out = append(out, v)
		case map[string]any:
			for _, elem := range v {
				walk(elem)
			}
		case []any:
			for _, elem := range v {
				walk(elem)
			}
		}
	}
	walk(obj)
	return out
}
