package bsky

import (
	comatproto "github.com/bluesky-social/lexcodec/api/atproto"
	"github.com/bluesky-social/lexcodec/atproto/data"
	"github.com/bluesky-social/lexcodec/atproto/syntax"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: app.bsky.feed.post

func init() {
	lexutil.RegisterType("app.bsky.feed.post", &FeedPost{})
}

// FeedPost is a "main" in the app.bsky.feed.post schema.
//
// RECORDTYPE: FeedPost
type FeedPost struct {
	LexiconTypeID string `json:"$type,const=app.bsky.feed.post,omitempty"`
	// createdAt: Client-declared timestamp when this post was originally created.
	CreatedAt lexutil.LexDatetime `json:"createdAt"`
	Embed     *FeedPost_Embed     `json:"embed,omitempty"`
	// facets: Annotations of text (mentions, URLs, hashtags, etc)
	Facets []*RichtextFacet `json:"facets,omitzero"`
	// labels: Self-label values for this post. Effectively content warnings.
	Labels *FeedPost_Labels `json:"labels,omitempty"`
	// langs: Indicates human language of post primary text content.
	Langs []syntax.Language  `json:"langs,omitzero"`
	Reply *FeedPost_ReplyRef `json:"reply,omitempty"`
	// tags: Additional hashtags, in addition to any included in post text and facets.
	Tags []string `json:"tags,omitzero"`
	// text: The primary post content. May be an empty string, if there are embeds.
	Text  string       `json:"text"`
	Extra *data.Object `json:"-"`
}

func (t FeedPost) LexiconType() string {
	return "app.bsky.feed.post"
}

func (t *FeedPost) UnmarshalJSON(b []byte) error {
	type alias FeedPost
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t FeedPost) MarshalJSON() ([]byte, error) {
	type alias FeedPost
	return lexutil.MarshalObject(alias(t), t.Extra)
}

var feedPostEmbed = lexutil.NewFamily("app.bsky.feed.post#embed").
	Register("app.bsky.embed.images", &EmbedImages{}).
	Register("app.bsky.embed.video", &EmbedVideo{}).
	Register("app.bsky.embed.external", &EmbedExternal{}).
	Register("app.bsky.embed.record", &EmbedRecord{}).
	Register("app.bsky.embed.recordWithMedia", &EmbedRecordWithMedia{})

type FeedPost_Embed struct {
	Value lexutil.Variant
}

func (t FeedPost_Embed) MarshalJSON() ([]byte, error) {
	return lexutil.MarshalVariant(t.Value)
}

func (t *FeedPost_Embed) UnmarshalJSON(b []byte) error {
	return feedPostEmbed.UnmarshalInto(b, &t.Value)
}

var feedPostLabels = lexutil.NewFamily("app.bsky.feed.post#labels").
	Register("com.atproto.label.defs#selfLabels", &comatproto.LabelDefs_SelfLabels{})

type FeedPost_Labels struct {
	Value lexutil.Variant
}

func (t FeedPost_Labels) MarshalJSON() ([]byte, error) {
	return lexutil.MarshalVariant(t.Value)
}

func (t *FeedPost_Labels) UnmarshalJSON(b []byte) error {
	return feedPostLabels.UnmarshalInto(b, &t.Value)
}

type FeedPost_ReplyRef struct {
	LexiconTypeID string                    `json:"$type,const=app.bsky.feed.post#replyRef,omitempty"`
	Parent        *comatproto.RepoStrongRef `json:"parent"`
	Root          *comatproto.RepoStrongRef `json:"root"`
	Extra         *data.Object              `json:"-"`
}

func (t FeedPost_ReplyRef) LexiconType() string {
	return "app.bsky.feed.post#replyRef"
}

func (t *FeedPost_ReplyRef) UnmarshalJSON(b []byte) error {
	type alias FeedPost_ReplyRef
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t FeedPost_ReplyRef) MarshalJSON() ([]byte, error) {
	type alias FeedPost_ReplyRef
	return lexutil.MarshalObject(alias(t), t.Extra)
}
