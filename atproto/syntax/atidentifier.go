package syntax

import (
	"strings"
)

// Account reference that is either a [DID] or a [Handle], as in the authority of an AT-URI.
type AtIdentifier string

func ParseAtIdentifier(raw string) (AtIdentifier, error) {
	if raw == "" {
		return "", malformed("AT identifier", raw, "empty string")
	}
	if strings.HasPrefix(raw, "did:") {
		did, err := ParseDID(raw)
		return AtIdentifier(did), err
	}
	handle, err := ParseHandle(raw)
	return AtIdentifier(handle), err
}

func (n AtIdentifier) IsDID() bool {
	return strings.HasPrefix(string(n), "did:")
}

// Handles are lower-cased; DIDs are returned unchanged.
func (n AtIdentifier) Normalize() AtIdentifier {
	if n.IsDID() {
		return n
	}
	return AtIdentifier(Handle(n).Normalize())
}

func (n AtIdentifier) String() string {
	return string(n)
}

func (n AtIdentifier) MarshalText() ([]byte, error) {
	return []byte(n), nil
}

func (n *AtIdentifier) UnmarshalText(text []byte) error {
	atid, err := ParseAtIdentifier(string(text))
	if err != nil {
		return err
	}
	*n = atid
	return nil
}
