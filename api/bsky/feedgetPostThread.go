package bsky

import (
	"github.com/bluesky-social/lexcodec/atproto/data"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: app.bsky.feed.getPostThread

// FeedGetPostThread_Output is the output of a app.bsky.feed.getPostThread call.
type FeedGetPostThread_Output struct {
	Thread     *FeedGetPostThread_Output_Thread `json:"thread"`
	Threadgate *FeedDefs_ThreadgateView         `json:"threadgate,omitempty"`
	Extra      *data.Object                     `json:"-"`
}

func (t *FeedGetPostThread_Output) UnmarshalJSON(b []byte) error {
	type alias FeedGetPostThread_Output
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t FeedGetPostThread_Output) MarshalJSON() ([]byte, error) {
	type alias FeedGetPostThread_Output
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type FeedGetPostThread_Output_Thread struct {
	Value lexutil.Variant
}

func (t FeedGetPostThread_Output_Thread) MarshalJSON() ([]byte, error) {
	return lexutil.MarshalVariant(t.Value)
}

func (t *FeedGetPostThread_Output_Thread) UnmarshalJSON(b []byte) error {
	return feedThreadPost.UnmarshalInto(b, &t.Value)
}
