package bsky

import (
	"github.com/bluesky-social/lexcodec/atproto/data"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: app.bsky.embed.external

// EmbedExternal is a "main" in the app.bsky.embed.external schema.
//
// A representation of some externally linked content (eg, a URL and 'card'), embedded in a Bluesky record (eg, a post).
type EmbedExternal struct {
	LexiconTypeID string                  `json:"$type,const=app.bsky.embed.external,omitempty"`
	External      *EmbedExternal_External `json:"external"`
	Extra         *data.Object            `json:"-"`
}

func (t EmbedExternal) LexiconType() string {
	return "app.bsky.embed.external"
}

func (t *EmbedExternal) UnmarshalJSON(b []byte) error {
	type alias EmbedExternal
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t EmbedExternal) MarshalJSON() ([]byte, error) {
	type alias EmbedExternal
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type EmbedExternal_External struct {
	Description string           `json:"description"`
	Thumb       *lexutil.LexBlob `json:"thumb,omitempty"`
	Title       string           `json:"title"`
	Uri         string           `json:"uri"`
	Extra       *data.Object     `json:"-"`
}

func (t *EmbedExternal_External) UnmarshalJSON(b []byte) error {
	type alias EmbedExternal_External
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t EmbedExternal_External) MarshalJSON() ([]byte, error) {
	type alias EmbedExternal_External
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type EmbedExternal_View struct {
	LexiconTypeID string                      `json:"$type,const=app.bsky.embed.external#view,omitempty"`
	External      *EmbedExternal_ViewExternal `json:"external"`
	Extra         *data.Object                `json:"-"`
}

func (t EmbedExternal_View) LexiconType() string {
	return "app.bsky.embed.external#view"
}

func (t *EmbedExternal_View) UnmarshalJSON(b []byte) error {
	type alias EmbedExternal_View
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t EmbedExternal_View) MarshalJSON() ([]byte, error) {
	type alias EmbedExternal_View
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type EmbedExternal_ViewExternal struct {
	Description string       `json:"description"`
	Thumb       *string      `json:"thumb,omitempty"`
	Title       string       `json:"title"`
	Uri         string       `json:"uri"`
	Extra       *data.Object `json:"-"`
}

func (t *EmbedExternal_ViewExternal) UnmarshalJSON(b []byte) error {
	type alias EmbedExternal_ViewExternal
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t EmbedExternal_ViewExternal) MarshalJSON() ([]byte, error) {
	type alias EmbedExternal_ViewExternal
	return lexutil.MarshalObject(alias(t), t.Extra)
}
