package syntax

import (
	"slices"
	"strings"
)

// Namespace identifier, eg "app.bsky.feed.post": a reversed domain authority followed by a name.
//
// NSIDs are the record collections of AT-URIs, and the part of every lexicon $type before any "#".
//
// Syntax specification: https://atproto.com/specs/nsid
type NSID string

const maxNSIDLen = 317

func ParseNSID(raw string) (NSID, error) {
	if err := checkGrammar("NSID", raw, maxNSIDLen, nsidGrammar); err != nil {
		return "", err
	}
	return NSID(raw), nil
}

// reversed authority segments, and the name
func (n NSID) split() (string, string) {
	i := strings.LastIndexByte(string(n), '.')
	if i < 0 {
		return "", string(n)
	}
	return string(n[:i]), string(n[i+1:])
}

// Authority as a lower-cased domain name in normal DNS order, eg "feed.bsky.app".
func (n NSID) Authority() string {
	reversed, _ := n.split()
	if reversed == "" {
		return ""
	}
	labels := strings.Split(strings.ToLower(reversed), ".")
	slices.Reverse(labels)
	return strings.Join(labels, ".")
}

// Final segment, eg "post". Case-sensitive.
func (n NSID) Name() string {
	_, name := n.split()
	return name
}

// Lower-cases the authority segments; the name keeps its case.
func (n NSID) Normalize() NSID {
	reversed, name := n.split()
	if reversed == "" {
		return n
	}
	return NSID(strings.ToLower(reversed) + "." + name)
}

func (n NSID) String() string {
	return string(n)
}

func (n NSID) MarshalText() ([]byte, error) {
	return []byte(n), nil
}

func (n *NSID) UnmarshalText(text []byte) error {
	nsid, err := ParseNSID(string(text))
	if err != nil {
		return err
	}
	*n = nsid
	return nil
}
