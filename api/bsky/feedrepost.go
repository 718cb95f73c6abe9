package bsky

import (
	comatproto "github.com/bluesky-social/lexcodec/api/atproto"
	"github.com/bluesky-social/lexcodec/atproto/data"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: app.bsky.feed.repost

func init() {
	lexutil.RegisterType("app.bsky.feed.repost", &FeedRepost{})
}

// FeedRepost is a "main" in the app.bsky.feed.repost schema.
//
// Record representing a 'repost' of an existing Bluesky post.
//
// RECORDTYPE: FeedRepost
type FeedRepost struct {
	LexiconTypeID string                    `json:"$type,const=app.bsky.feed.repost,omitempty"`
	CreatedAt     lexutil.LexDatetime       `json:"createdAt"`
	Subject       *comatproto.RepoStrongRef `json:"subject"`
	Via           *comatproto.RepoStrongRef `json:"via,omitempty"`
	Extra         *data.Object              `json:"-"`
}

func (t FeedRepost) LexiconType() string {
	return "app.bsky.feed.repost"
}

func (t *FeedRepost) UnmarshalJSON(b []byte) error {
	type alias FeedRepost
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t FeedRepost) MarshalJSON() ([]byte, error) {
	type alias FeedRepost
	return lexutil.MarshalObject(alias(t), t.Extra)
}
