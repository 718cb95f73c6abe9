package bsky

import (
	"github.com/bluesky-social/lexcodec/atproto/data"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: app.bsky.embed.defs

// EmbedDefs_AspectRatio is a "aspectRatio" in the app.bsky.embed.defs schema.
//
// width:height represents an aspect ratio. It may be approximate, and may not correspond to absolute dimensions in any given unit.
type EmbedDefs_AspectRatio struct {
	Height int64        `json:"height"`
	Width  int64        `json:"width"`
	Extra  *data.Object `json:"-"`
}

func (t *EmbedDefs_AspectRatio) UnmarshalJSON(b []byte) error {
	type alias EmbedDefs_AspectRatio
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t EmbedDefs_AspectRatio) MarshalJSON() ([]byte, error) {
	type alias EmbedDefs_AspectRatio
	return lexutil.MarshalObject(alias(t), t.Extra)
}
