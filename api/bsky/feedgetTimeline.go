package bsky

import (
	"github.com/bluesky-social/lexcodec/atproto/data"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: app.bsky.feed.getTimeline

// FeedGetTimeline_Output is the output of a app.bsky.feed.getTimeline call.
type FeedGetTimeline_Output struct {
	Cursor *string                  `json:"cursor,omitempty"`
	Feed   []*FeedDefs_FeedViewPost `json:"feed"`
	Extra  *data.Object             `json:"-"`
}

func (t *FeedGetTimeline_Output) UnmarshalJSON(b []byte) error {
	type alias FeedGetTimeline_Output
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t FeedGetTimeline_Output) MarshalJSON() ([]byte, error) {
	type alias FeedGetTimeline_Output
	return lexutil.MarshalObject(alias(t), t.Extra)
}
