package util

import (
	"encoding/json"
	"fmt"
)

// Global registry of record types, used for open record slots (eg, the "record" field of a post view) which may contain any record type.
var records = NewFamily("record")

// Registers a record type for open record slots. Intended to be called from package init.
func RegisterType(id string, val Variant) {
	records.Register(id, val)
}

// Allocates a new, empty value of the registered record type.
func NewFromType(typ string) (Variant, error) {
	ctor, ok := records.Resolve(typ)
	if !ok {
		return nil, fmt.Errorf("unrecognized type: %q", typ)
	}
	return ctor(), nil
}

// Open record slot: holds any registered record type, or an [UnknownVariant].
type LexiconTypeDecoder struct {
	Val Variant
}

func (ltd *LexiconTypeDecoder) UnmarshalJSON(b []byte) error {
	val, err := records.Decode(b)
	if err != nil {
		return err
	}
	ltd.Val = val
	return nil
}

func (ltd *LexiconTypeDecoder) MarshalJSON() ([]byte, error) {
	if ltd == nil || ltd.Val == nil {
		return nil, fmt.Errorf("LexiconTypeDecoder MarshalJSON called on a nil")
	}
	return MarshalVariant(ltd.Val)
}

var _ json.Marshaler = (*LexiconTypeDecoder)(nil)
