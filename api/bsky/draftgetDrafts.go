package bsky

import (
	"github.com/bluesky-social/lexcodec/atproto/data"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: app.bsky.draft.getDrafts

// DraftGetDrafts_Output is the output of a app.bsky.draft.getDrafts call.
type DraftGetDrafts_Output struct {
	Cursor *string                `json:"cursor,omitempty"`
	Drafts []*DraftDefs_DraftView `json:"drafts"`
	Extra  *data.Object           `json:"-"`
}

func (t *DraftGetDrafts_Output) UnmarshalJSON(b []byte) error {
	type alias DraftGetDrafts_Output
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t DraftGetDrafts_Output) MarshalJSON() ([]byte, error) {
	type alias DraftGetDrafts_Output
	return lexutil.MarshalObject(alias(t), t.Extra)
}
