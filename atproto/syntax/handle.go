package syntax

import (
	"strings"
)

// A handle: a DNS hostname naming an account, eg "alice.bsky.social". Case is preserved; see [Handle.Normalize].
//
// Syntax specification: https://atproto.com/specs/handle
type Handle string

const maxHandleLen = 253

// top-level domains which are syntactically fine but can never be a real account's handle. ".test" stays allowed for development.
var disallowedTLDs = map[string]bool{
	"alt":       true,
	"arpa":      true,
	"example":   true,
	"internal":  true,
	"invalid":   true,
	"local":     true,
	"localhost": true,
	"onion":     true,
}

func ParseHandle(raw string) (Handle, error) {
	if err := checkGrammar("handle", raw, maxHandleLen, handleGrammar); err != nil {
		return "", err
	}
	return Handle(raw), nil
}

// Reports whether the handle's TLD may be used for an account.
func (h Handle) AllowedTLD() bool {
	return !disallowedTLDs[h.TLD()]
}

// Last label of the handle, lower-cased.
func (h Handle) TLD() string {
	s := string(h.Normalize())
	return s[strings.LastIndexByte(s, '.')+1:]
}

// Lower-cased form, for comparing handles. Parsing never does this implicitly.
func (h Handle) Normalize() Handle {
	return Handle(strings.ToLower(string(h)))
}

func (h Handle) String() string {
	return string(h)
}

func (h Handle) MarshalText() ([]byte, error) {
	return []byte(h), nil
}

func (h *Handle) UnmarshalText(text []byte) error {
	handle, err := ParseHandle(string(text))
	if err != nil {
		return err
	}
	*h = handle
	return nil
}
