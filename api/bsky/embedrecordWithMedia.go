package bsky

import (
	"github.com/bluesky-social/lexcodec/atproto/data"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: app.bsky.embed.recordWithMedia

// EmbedRecordWithMedia is a "main" in the app.bsky.embed.recordWithMedia schema.
//
// A representation of a record embedded in a Bluesky record (eg, a post), alongside other compatible embeds. For example, a quote post and image, or a quote post and external URL card.
type EmbedRecordWithMedia struct {
	LexiconTypeID string                      `json:"$type,const=app.bsky.embed.recordWithMedia,omitempty"`
	Media         *EmbedRecordWithMedia_Media `json:"media"`
	Record        *EmbedRecord                `json:"record"`
	Extra         *data.Object                `json:"-"`
}

func (t EmbedRecordWithMedia) LexiconType() string {
	return "app.bsky.embed.recordWithMedia"
}

func (t *EmbedRecordWithMedia) UnmarshalJSON(b []byte) error {
	type alias EmbedRecordWithMedia
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t EmbedRecordWithMedia) MarshalJSON() ([]byte, error) {
	type alias EmbedRecordWithMedia
	return lexutil.MarshalObject(alias(t), t.Extra)
}

var embedRecordWithMediaMedia = lexutil.NewFamily("app.bsky.embed.recordWithMedia#media").
	Register("app.bsky.embed.images", &EmbedImages{}).
	Register("app.bsky.embed.video", &EmbedVideo{}).
	Register("app.bsky.embed.external", &EmbedExternal{})

type EmbedRecordWithMedia_Media struct {
	Value lexutil.Variant
}

func (t EmbedRecordWithMedia_Media) MarshalJSON() ([]byte, error) {
	return lexutil.MarshalVariant(t.Value)
}

func (t *EmbedRecordWithMedia_Media) UnmarshalJSON(b []byte) error {
	return embedRecordWithMediaMedia.UnmarshalInto(b, &t.Value)
}

type EmbedRecordWithMedia_View struct {
	LexiconTypeID string                           `json:"$type,const=app.bsky.embed.recordWithMedia#view,omitempty"`
	Media         *EmbedRecordWithMedia_View_Media `json:"media"`
	Record        *EmbedRecord_View                `json:"record"`
	Extra         *data.Object                     `json:"-"`
}

func (t EmbedRecordWithMedia_View) LexiconType() string {
	return "app.bsky.embed.recordWithMedia#view"
}

func (t *EmbedRecordWithMedia_View) UnmarshalJSON(b []byte) error {
	type alias EmbedRecordWithMedia_View
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t EmbedRecordWithMedia_View) MarshalJSON() ([]byte, error) {
	type alias EmbedRecordWithMedia_View
	return lexutil.MarshalObject(alias(t), t.Extra)
}

var embedRecordWithMediaViewMedia = lexutil.NewFamily("app.bsky.embed.recordWithMedia#view.media").
	Register("app.bsky.embed.images#view", &EmbedImages_View{}).
	Register("app.bsky.embed.video#view", &EmbedVideo_View{}).
	Register("app.bsky.embed.external#view", &EmbedExternal_View{})

type EmbedRecordWithMedia_View_Media struct {
	Value lexutil.Variant
}

func (t EmbedRecordWithMedia_View_Media) MarshalJSON() ([]byte, error) {
	return lexutil.MarshalVariant(t.Value)
}

func (t *EmbedRecordWithMedia_View_Media) UnmarshalJSON(b []byte) error {
	return embedRecordWithMediaViewMedia.UnmarshalInto(b, &t.Value)
}
