package bsky

import (
	comatproto "github.com/bluesky-social/lexcodec/api/atproto"
	"github.com/bluesky-social/lexcodec/atproto/data"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: app.bsky.feed.like

func init() {
	lexutil.RegisterType("app.bsky.feed.like", &FeedLike{})
}

// FeedLike is a "main" in the app.bsky.feed.like schema.
//
// Record declaring a 'like' of a piece of subject content.
//
// RECORDTYPE: FeedLike
type FeedLike struct {
	LexiconTypeID string                    `json:"$type,const=app.bsky.feed.like,omitempty"`
	CreatedAt     lexutil.LexDatetime       `json:"createdAt"`
	Subject       *comatproto.RepoStrongRef `json:"subject"`
	Via           *comatproto.RepoStrongRef `json:"via,omitempty"`
	Extra         *data.Object              `json:"-"`
}

func (t FeedLike) LexiconType() string {
	return "app.bsky.feed.like"
}

func (t *FeedLike) UnmarshalJSON(b []byte) error {
	type alias FeedLike
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t FeedLike) MarshalJSON() ([]byte, error) {
	type alias FeedLike
	return lexutil.MarshalObject(alias(t), t.Extra)
}
