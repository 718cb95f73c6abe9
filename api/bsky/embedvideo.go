package bsky

import (
	"github.com/bluesky-social/lexcodec/atproto/data"
	"github.com/bluesky-social/lexcodec/atproto/syntax"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: app.bsky.embed.video

// EmbedVideo is a "main" in the app.bsky.embed.video schema.
type EmbedVideo struct {
	LexiconTypeID string `json:"$type,const=app.bsky.embed.video,omitempty"`
	// alt: Alt text description of the video, for accessibility.
	Alt         *string                `json:"alt,omitempty"`
	AspectRatio *EmbedDefs_AspectRatio `json:"aspectRatio,omitempty"`
	// video: The mp4 video file. May be up to 100mb, formerly limited to 50mb.
	Video *lexutil.LexBlob `json:"video"`
	Extra *data.Object     `json:"-"`
}

func (t EmbedVideo) LexiconType() string {
	return "app.bsky.embed.video"
}

func (t *EmbedVideo) UnmarshalJSON(b []byte) error {
	type alias EmbedVideo
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t EmbedVideo) MarshalJSON() ([]byte, error) {
	type alias EmbedVideo
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type EmbedVideo_View struct {
	LexiconTypeID string                 `json:"$type,const=app.bsky.embed.video#view,omitempty"`
	Alt           *string                `json:"alt,omitempty"`
	AspectRatio   *EmbedDefs_AspectRatio `json:"aspectRatio,omitempty"`
	Cid           syntax.CID             `json:"cid"`
	Playlist      string                 `json:"playlist"`
	Thumbnail     *string                `json:"thumbnail,omitempty"`
	Extra         *data.Object           `json:"-"`
}

func (t EmbedVideo_View) LexiconType() string {
	return "app.bsky.embed.video#view"
}

func (t *EmbedVideo_View) UnmarshalJSON(b []byte) error {
	type alias EmbedVideo_View
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t EmbedVideo_View) MarshalJSON() ([]byte, error) {
	type alias EmbedVideo_View
	return lexutil.MarshalObject(alias(t), t.Extra)
}
