package util

import (
	"encoding/json"
	"time"

	"github.com/bluesky-social/lexcodec/atproto/syntax"
)

// Datetime field value. Decoding accepts the strict atproto datetime syntax, and falls back to a lenient ISO 8601 parse (other fractional second precision, missing timezone). The instant is normalized to UTC at millisecond precision, and always encodes in the canonical "2006-01-02T15:04:05.000Z" form, so the original spelling is not preserved.
type LexDatetime struct {
	time.Time
}

func NewLexDatetime(t time.Time) LexDatetime {
	return LexDatetime{Time: t.UTC().Truncate(time.Millisecond)}
}

func ParseLexDatetime(raw string) (LexDatetime, error) {
	t, err := syntax.ParseDatetimeLenient(raw)
	if err != nil {
		return LexDatetime{}, err
	}
	return NewLexDatetime(t), nil
}

func (d LexDatetime) String() string {
	return d.Time.UTC().Format(syntax.AtprotoDatetimeLayout)
}

// Canonical form as a syntax.Datetime.
func (d LexDatetime) Datetime() syntax.Datetime {
	return syntax.Datetime(d.String())
}

func (d LexDatetime) Equal(other LexDatetime) bool {
	return d.Time.Equal(other.Time)
}

func (d LexDatetime) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *LexDatetime) UnmarshalText(text []byte) error {
	parsed, err := ParseLexDatetime(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// time.Time's JSON methods would otherwise be promoted
func (d LexDatetime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *LexDatetime) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		return unexpectedNull()
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(raw))
}
