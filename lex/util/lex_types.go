package util

import (
	"encoding/base64"
	"encoding/json"

	"github.com/bluesky-social/lexcodec/atproto/data"
	"github.com/bluesky-social/lexcodec/atproto/syntax"

	"github.com/ipfs/go-cid"
	xerrors "golang.org/x/xerrors"
)

// Lexicon "cid-link" field. Serialized as {"$link": "<cid>"}.
type LexLink cid.Cid

func (ll LexLink) String() string {
	return cid.Cid(ll).String()
}

func (ll LexLink) Defined() bool {
	return cid.Cid(ll).Defined()
}

func (ll LexLink) MarshalJSON() ([]byte, error) {
	return data.CIDLink(ll).MarshalJSON()
}

func (ll *LexLink) UnmarshalJSON(raw []byte) error {
	var obj struct {
		Link string `json:"$link"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return xerrors.Errorf("cid-link: %w", err)
	}
	// syntax errors surface as malformed identifiers
	parsed, err := syntax.ParseCID(obj.Link)
	if err != nil {
		return xerrors.Errorf("cid-link: %w", err)
	}
	c, err := parsed.Cid()
	if err != nil {
		return xerrors.Errorf("cid-link: %w", err)
	}
	*ll = LexLink(c)
	return nil
}

// Lexicon "bytes" field. Serialized as {"$bytes": "<unpadded base64>"}.
type LexBytes []byte

func (lb LexBytes) MarshalJSON() ([]byte, error) {
	return data.Bytes(lb).MarshalJSON()
}

func (lb *LexBytes) UnmarshalJSON(raw []byte) error {
	var obj struct {
		Bytes *string `json:"$bytes"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return xerrors.Errorf("$bytes: %w", err)
	}
	if obj.Bytes == nil {
		return xerrors.Errorf("$bytes: missing base64 string")
	}
	b, err := base64.RawStdEncoding.DecodeString(*obj.Bytes)
	if err != nil {
		return xerrors.Errorf("$bytes: %w", err)
	}
	*lb = LexBytes(b)
	return nil
}

// Lexicon "blob" field. Size is -1 for legacy blobs ({"cid": "<string>", "mimeType": ...}), which are written back in the legacy form.
type LexBlob struct {
	Ref      LexLink
	MimeType string
	Size     int64
}

func (b LexBlob) MarshalJSON() ([]byte, error) {
	return data.Blob{Ref: data.CIDLink(b.Ref), MimeType: b.MimeType, Size: b.Size}.MarshalJSON()
}

func (b *LexBlob) UnmarshalJSON(raw []byte) error {
	blob, err := data.ParseBlob(raw)
	if err != nil {
		return err
	}
	*b = LexBlob{Ref: LexLink(blob.Ref), MimeType: blob.MimeType, Size: blob.Size}
	return nil
}
