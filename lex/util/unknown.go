package util

import (
	"github.com/bluesky-social/lexcodec/atproto/data"
)

// Union value whose $type was not registered in the family it was decoded through. The complete original object (including $type) is retained, so re-encoding reproduces the same properties and values.
type UnknownVariant struct {
	Type string
	Data *data.Object
}

func (u *UnknownVariant) LexiconType() string {
	return u.Type
}

func (u *UnknownVariant) MarshalJSON() ([]byte, error) {
	if u.Data == nil {
		return []byte("{}"), nil
	}
	return u.Data.MarshalJSON()
}

func (u *UnknownVariant) UnmarshalJSON(b []byte) error {
	obj, err := data.ParseObject(b)
	if err != nil {
		return objectError(b, err)
	}
	typ, _ := obj.GetString("$type")
	u.Type = typ
	u.Data = obj
	return nil
}

// Compares tag and payload. Payload property order is not significant.
func (u *UnknownVariant) Equal(other *UnknownVariant) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.Type == other.Type && u.Data.Equal(other.Data)
}
