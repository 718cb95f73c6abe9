package syntax

// Key of a record within a collection, as found in the last segment of an AT-URI. Often a [TID], or a fixed value like "self".
//
// Syntax specification: https://atproto.com/specs/record-key
type RecordKey string

const maxRecordKeyLen = 512

func ParseRecordKey(raw string) (RecordKey, error) {
	if err := checkGrammar("record key", raw, maxRecordKeyLen, recordKeyGrammar); err != nil {
		return "", err
	}
	if raw == "." || raw == ".." {
		return "", malformed("record key", raw, "'.' and '..' are reserved")
	}
	return RecordKey(raw), nil
}

func (r RecordKey) String() string {
	return string(r)
}

func (r RecordKey) MarshalText() ([]byte, error) {
	return []byte(r), nil
}

func (r *RecordKey) UnmarshalText(text []byte) error {
	rkey, err := ParseRecordKey(string(text))
	if err != nil {
		return err
	}
	*r = rkey
	return nil
}
