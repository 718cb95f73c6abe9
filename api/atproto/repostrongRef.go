package atproto

import (
	"fmt"

	"github.com/bluesky-social/lexcodec/atproto/data"
	"github.com/bluesky-social/lexcodec/atproto/syntax"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: com.atproto.repo.strongRef

// RepoStrongRef is a "main" in the com.atproto.repo.strongRef schema.
type RepoStrongRef struct {
	LexiconTypeID string       `json:"$type,const=com.atproto.repo.strongRef,omitempty"`
	Cid           syntax.CID   `json:"cid"`
	Uri           syntax.ATURI `json:"uri"`
	Extra         *data.Object `json:"-"`
}

func (t RepoStrongRef) LexiconType() string {
	return "com.atproto.repo.strongRef"
}

func (t *RepoStrongRef) UnmarshalJSON(b []byte) error {
	type alias RepoStrongRef
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t RepoStrongRef) MarshalJSON() ([]byte, error) {
	type alias RepoStrongRef
	return lexutil.MarshalObject(alias(t), t.Extra)
}

// Builds a strong reference from string forms of the record URI and CID. Both are validated.
func NewRepoStrongRef(uri, cid string) (*RepoStrongRef, error) {
	u, err := syntax.ParseATURI(uri)
	if err != nil {
		return nil, err
	}
	c, err := syntax.ParseCID(cid)
	if err != nil {
		return nil, err
	}
	return &RepoStrongRef{Uri: u, Cid: c}, nil
}

// Builds a strong reference to the current version of a record, by computing the record's CID.
func NewRepoStrongRefForRecord(uri syntax.ATURI, record any) (*RepoStrongRef, error) {
	c, err := lexutil.RecordCID(record)
	if err != nil {
		return nil, fmt.Errorf("computing record CID for %s: %w", uri, err)
	}
	return &RepoStrongRef{Uri: uri, Cid: c}, nil
}

// Exact comparison of URI and CID strings (and any unknown properties). No normalization is done.
func (t *RepoStrongRef) Equal(other *RepoStrongRef) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Uri == other.Uri && t.Cid == other.Cid && t.Extra.Equal(other.Extra)
}
