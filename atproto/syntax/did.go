package syntax

import (
	"strings"
)

// A DID in string form, eg "did:plc:ewvi7nxzyoun6zhxrhs64oiz". Case is preserved exactly.
//
// Syntax specification: https://atproto.com/specs/did
type DID string

const maxDIDLen = 2 * 1024

func ParseDID(raw string) (DID, error) {
	if err := checkGrammar("DID", raw, maxDIDLen, didGrammar); err != nil {
		return "", err
	}
	return DID(raw), nil
}

// splits "did:<method>:<identifier>"; the grammar guarantees both colons are present
func (d DID) parts() (method, identifier string) {
	rest := strings.TrimPrefix(string(d), "did:")
	method, identifier, _ = strings.Cut(rest, ":")
	return method, identifier
}

// Method name, eg "plc" or "web".
func (d DID) Method() string {
	m, _ := d.parts()
	return m
}

// Everything after the method, which may itself contain colons.
func (d DID) Identifier() string {
	_, id := d.parts()
	return id
}

func (d DID) String() string {
	return string(d)
}

func (d DID) MarshalText() ([]byte, error) {
	return []byte(d), nil
}

func (d *DID) UnmarshalText(text []byte) error {
	did, err := ParseDID(string(text))
	if err != nil {
		return err
	}
	*d = did
	return nil
}
