package atproto

import (
	"github.com/bluesky-social/lexcodec/atproto/data"
	"github.com/bluesky-social/lexcodec/atproto/syntax"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: com.atproto.admin.defs

// AdminDefs_RepoRef is a "repoRef" in the com.atproto.admin.defs schema.
type AdminDefs_RepoRef struct {
	LexiconTypeID string       `json:"$type,const=com.atproto.admin.defs#repoRef,omitempty"`
	Did           syntax.DID   `json:"did"`
	Extra         *data.Object `json:"-"`
}

func (t AdminDefs_RepoRef) LexiconType() string {
	return "com.atproto.admin.defs#repoRef"
}

func (t *AdminDefs_RepoRef) UnmarshalJSON(b []byte) error {
	type alias AdminDefs_RepoRef
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t AdminDefs_RepoRef) MarshalJSON() ([]byte, error) {
	type alias AdminDefs_RepoRef
	return lexutil.MarshalObject(alias(t), t.Extra)
}
