package data

import (
	"bytes"
	"encoding/json"
)

// The "blob" type from the atproto data model: a reference to binary content stored outside the record.
//
// Legacy blobs (a bare CID string and MIME type, no size) have Size == -1.
type Blob struct {
	Ref      CIDLink
	MimeType string
	Size     int64
}

func (b Blob) IsLegacy() bool {
	return b.Size < 0
}

// object form of the blob, for the CBOR encoding
func (b Blob) fields() map[string]any {
	if b.IsLegacy() {
		return map[string]any{
			"cid":      b.Ref.String(),
			"mimeType": b.MimeType,
		}
	}
	return map[string]any{
		"$type":    "blob",
		"ref":      b.Ref,
		"mimeType": b.MimeType,
		"size":     b.Size,
	}
}

func (b Blob) MarshalJSON() ([]byte, error) {
	if b.IsLegacy() {
		return json.Marshal(struct {
			Cid      string `json:"cid"`
			MimeType string `json:"mimeType"`
		}{b.Ref.String(), b.MimeType})
	}
	return json.Marshal(struct {
		Type     string  `json:"$type"`
		Ref      CIDLink `json:"ref"`
		MimeType string  `json:"mimeType"`
		Size     int64   `json:"size"`
	}{"blob", b.Ref, b.MimeType, b.Size})
}

// Parses a single blob object from JSON, in either the current or the legacy form.
func ParseBlob(b []byte) (Blob, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return Blob{}, err
	}
	if raw == nil {
		return Blob{}, violation("expected a blob object")
	}
	v, err := normalizeMap(raw, 1)
	if err != nil {
		return Blob{}, err
	}
	blob, ok := v.(Blob)
	if !ok {
		return Blob{}, violation("expected a blob object")
	}
	return blob, nil
}
