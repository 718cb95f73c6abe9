package syntax

import (
	"regexp"
	"strings"
)

var aturiRegex = regexp.MustCompile(`^at:\/\/(?P<authority>[a-zA-Z0-9._:%-]+)(\/(?P<collection>[a-zA-Z0-9-.]+)(\/(?P<rkey>[a-zA-Z0-9_~.:-]{1,512}))?)?$`)

// String type which represents a syntaxtually valid AT URI, as would pass Lexicon syntax validation for the 'at-uri' field (no query or fragment parts)
//
// The authority is always present; the collection and record key path segments are optional, but a record key is only allowed after a collection. Each segment is validated with the parser for its own type.
//
// Always use [ParseATURI] instead of wrapping strings directly, especially when working with input.
//
// Syntax specification: https://atproto.com/specs/at-uri-scheme
type ATURI string

func ParseATURI(raw string) (ATURI, error) {
	if len(raw) > 8192 {
		return "", malformed("AT-URI", raw, "AT-URI is too long (8192 chars max)")
	}
	parts := aturiRegex.FindStringSubmatch(raw)
	if parts == nil || len(parts) < 2 || parts[0] == "" {
		return "", malformed("AT-URI", raw, "AT-URI syntax didn't validate via regex")
	}
	if _, err := ParseAtIdentifier(parts[1]); err != nil {
		return "", malformedNested("AT-URI", raw, "authority section neither a DID nor Handle", err)
	}
	if len(parts) >= 4 && parts[3] != "" {
		if _, err := ParseNSID(parts[3]); err != nil {
			return "", malformedNested("AT-URI", raw, "first path segment not an NSID", err)
		}
	}
	if len(parts) >= 6 && parts[5] != "" {
		if _, err := ParseRecordKey(parts[5]); err != nil {
			return "", malformedNested("AT-URI", raw, "second path segment not a RecordKey", err)
		}
	}
	return ATURI(raw), nil
}

// Builds an AT-URI from already-parsed parts. Collection and record key may be empty (record key must be empty if collection is).
func NewATURI(authority AtIdentifier, collection NSID, rkey RecordKey) (ATURI, error) {
	s := "at://" + authority.String()
	if collection != "" {
		s += "/" + collection.String()
		if rkey != "" {
			s += "/" + rkey.String()
		}
	} else if rkey != "" {
		return "", malformed("AT-URI", s+"//"+rkey.String(), "record key without collection")
	}
	return ParseATURI(s)
}

func (n ATURI) Authority() (AtIdentifier, error) {
	parts := strings.SplitN(string(n), "/", 4)
	if len(parts) < 3 {
		// something has gone wrong (would not validate)
		return "", malformed("AT-URI", string(n), "no authority segment")
	}
	return ParseAtIdentifier(parts[2])
}

// Returns path segment, without leading slash, as would be used in an atproto repository key
func (n ATURI) Path() string {
	parts := strings.SplitN(string(n), "/", 5)
	if len(parts) < 4 {
		return ""
	}
	if len(parts) == 4 {
		return parts[3]
	}
	return parts[3] + "/" + parts[4]
}

func (n ATURI) Collection() (NSID, error) {
	parts := strings.SplitN(string(n), "/", 5)
	if len(parts) < 4 {
		return "", malformed("AT-URI", string(n), "no collection segment")
	}
	// re-parsing is safest
	return ParseNSID(parts[3])
}

func (n ATURI) RecordKey() (RecordKey, error) {
	parts := strings.SplitN(string(n), "/", 6)
	if len(parts) < 5 {
		return "", malformed("AT-URI", string(n), "no record key segment")
	}
	return ParseRecordKey(parts[4])
}

// Normalizes the authority and collection; see [Handle.Normalize] and [NSID.Normalize]. Parsing never normalizes.
func (n ATURI) Normalize() ATURI {
	auth, err := n.Authority()
	if err != nil {
		// invalid AT-URI
		return n
	}
	coll, err := n.Collection()
	if err != nil {
		return ATURI("at://" + auth.Normalize().String())
	}
	rkey, err := n.RecordKey()
	if err != nil {
		return ATURI("at://" + auth.Normalize().String() + "/" + coll.Normalize().String())
	}
	return ATURI("at://" + auth.Normalize().String() + "/" + coll.Normalize().String() + "/" + rkey.String())
}

func (n ATURI) String() string {
	return string(n)
}

func (n ATURI) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *ATURI) UnmarshalText(text []byte) error {
	aturi, err := ParseATURI(string(text))
	if err != nil {
		return err
	}
	*n = aturi
	return nil
}
