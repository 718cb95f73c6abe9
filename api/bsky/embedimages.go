package bsky

import (
	"github.com/bluesky-social/lexcodec/atproto/data"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: app.bsky.embed.images

// EmbedImages is a "main" in the app.bsky.embed.images schema.
type EmbedImages struct {
	LexiconTypeID string               `json:"$type,const=app.bsky.embed.images,omitempty"`
	Images        []*EmbedImages_Image `json:"images"`
	Extra         *data.Object         `json:"-"`
}

func (t EmbedImages) LexiconType() string {
	return "app.bsky.embed.images"
}

func (t *EmbedImages) UnmarshalJSON(b []byte) error {
	type alias EmbedImages
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t EmbedImages) MarshalJSON() ([]byte, error) {
	type alias EmbedImages
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type EmbedImages_Image struct {
	// alt: Alt text description of the image, for accessibility.
	Alt         string                 `json:"alt"`
	AspectRatio *EmbedDefs_AspectRatio `json:"aspectRatio,omitempty"`
	Image       *lexutil.LexBlob       `json:"image"`
	Extra       *data.Object           `json:"-"`
}

func (t *EmbedImages_Image) UnmarshalJSON(b []byte) error {
	type alias EmbedImages_Image
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t EmbedImages_Image) MarshalJSON() ([]byte, error) {
	type alias EmbedImages_Image
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type EmbedImages_View struct {
	LexiconTypeID string                   `json:"$type,const=app.bsky.embed.images#view,omitempty"`
	Images        []*EmbedImages_ViewImage `json:"images"`
	Extra         *data.Object             `json:"-"`
}

func (t EmbedImages_View) LexiconType() string {
	return "app.bsky.embed.images#view"
}

func (t *EmbedImages_View) UnmarshalJSON(b []byte) error {
	type alias EmbedImages_View
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t EmbedImages_View) MarshalJSON() ([]byte, error) {
	type alias EmbedImages_View
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type EmbedImages_ViewImage struct {
	// alt: Alt text description of the image, for accessibility.
	Alt         string                 `json:"alt"`
	AspectRatio *EmbedDefs_AspectRatio `json:"aspectRatio,omitempty"`
	// fullsize: Fully-qualified URL where a large version of the image can be fetched. May or may not be the exact original blob. For example, CDN location provided by the App View.
	Fullsize string `json:"fullsize"`
	// thumb: Fully-qualified URL where a thumbnail of the image can be fetched. For example, CDN location provided by the App View.
	Thumb string       `json:"thumb"`
	Extra *data.Object `json:"-"`
}

func (t *EmbedImages_ViewImage) UnmarshalJSON(b []byte) error {
	type alias EmbedImages_ViewImage
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t EmbedImages_ViewImage) MarshalJSON() ([]byte, error) {
	type alias EmbedImages_ViewImage
	return lexutil.MarshalObject(alias(t), t.Extra)
}
