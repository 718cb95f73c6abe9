package syntax

import (
	"regexp"
	"strings"

	"github.com/ipfs/go-cid"
)

var cidRegex = regexp.MustCompile(`^[a-zA-Z0-9+=]{8,256}$`)

// Represents a CIDv1 in string format, as would pass Lexicon syntax validation.
//
// The string is fully decoded (multibase prefix, version, codec, multihash) during parsing, but the original string is retained as-is: there is no re-encoding or normalization, so [CID.String] returns exactly the parsed input.
//
// Always use [ParseCID] instead of wrapping strings directly, especially when working with network input.
type CID string

func ParseCID(raw string) (CID, error) {
	if len(raw) > 256 {
		return "", malformed("CID", raw, "CID is too long (256 chars max)")
	}
	if len(raw) < 8 {
		return "", malformed("CID", raw, "CID is too short (8 chars min)")
	}
	if !cidRegex.MatchString(raw) {
		return "", malformed("CID", raw, "CID syntax didn't validate via regex")
	}
	if strings.HasPrefix(raw, "Qm") {
		return "", malformed("CID", raw, "CIDv0 not allowed in this version of atproto")
	}
	c, err := cid.Decode(raw)
	if err != nil {
		return "", malformedNested("CID", raw, "not a self-describing content identifier", err)
	}
	if c.Version() != 1 {
		return "", malformed("CID", raw, "only CIDv1 is supported")
	}
	return CID(raw), nil
}

// Wraps an already-computed [cid.Cid] (eg, from hashing a record) in the default base32 string encoding.
func CIDFromCid(c cid.Cid) (CID, error) {
	if !c.Defined() {
		return "", malformed("CID", "", "undefined CID")
	}
	return ParseCID(c.String())
}

// Decodes to the binary [cid.Cid] representation. Always succeeds for values returned by [ParseCID].
func (c CID) Cid() (cid.Cid, error) {
	return cid.Decode(string(c))
}

func (c CID) String() string {
	return string(c)
}

func (c CID) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *CID) UnmarshalText(text []byte) error {
	cid, err := ParseCID(string(text))
	if err != nil {
		return err
	}
	*c = cid
	return nil
}
