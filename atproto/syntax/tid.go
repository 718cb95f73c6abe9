package syntax

import (
	"time"
)

// sortable base32 alphabet used by TIDs; lexical order of encodings matches numeric order
const tidAlphabet = "234567abcdefghijklmnopqrstuvwxyz"

const tidLength = 13

// Timestamp-based record identifier: 13 characters of sortable base32, packing microseconds since the UNIX epoch and a 10-bit clock ID.
//
// Always use [ParseTID] instead of wrapping strings directly, especially when working with network input.
//
// Syntax specification: https://atproto.com/specs/record-key
type TID string

// position of each character in tidAlphabet, or -1
var tidDigits = func() [256]int8 {
	var d [256]int8
	for i := range d {
		d[i] = -1
	}
	for i := 0; i < len(tidAlphabet); i++ {
		d[tidAlphabet[i]] = int8(i)
	}
	return d
}()

func ParseTID(raw string) (TID, error) {
	if raw == "" {
		return "", malformed("TID", raw, "expected TID, got empty string")
	}
	if len(raw) != tidLength {
		return "", malformed("TID", raw, "TID is wrong length (expected 13 chars)")
	}
	for i := 0; i < len(raw); i++ {
		if tidDigits[raw[i]] < 0 {
			return "", malformed("TID", raw, "TID contains a character outside the base32-sortable alphabet")
		}
	}
	// the high bit of the 64-bit value is always zero, which caps the leading character
	if tidDigits[raw[0]] > 15 {
		return "", malformed("TID", raw, "TID leading character out of range (expected 2-7 or a-j)")
	}
	return TID(raw), nil
}

// The 64-bit value encoded by the TID, or zero if it is not well-formed.
func (t TID) Integer() uint64 {
	if len(t) != tidLength {
		return 0
	}
	var v uint64
	for i := 0; i < tidLength; i++ {
		d := tidDigits[t[i]]
		if d < 0 {
			return 0
		}
		v = v<<5 | uint64(d)
	}
	return v
}

// Timestamp component, in UTC.
func (t TID) Time() time.Time {
	micros := int64(t.Integer() >> 10)
	return time.UnixMicro(micros).UTC()
}

// Clock identifier component (low 10 bits).
func (t TID) ClockID() uint {
	return uint(t.Integer() & 0x3FF)
}

func (t TID) String() string {
	return string(t)
}

func (t TID) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TID) UnmarshalText(text []byte) error {
	tid, err := ParseTID(string(text))
	if err != nil {
		return err
	}
	*t = tid
	return nil
}
