package bsky

import (
	"github.com/bluesky-social/lexcodec/atproto/data"
	"github.com/bluesky-social/lexcodec/atproto/syntax"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: app.bsky.richtext.facet

// RichtextFacet is a "main" in the app.bsky.richtext.facet schema.
//
// Annotation of a sub-string within rich text.
type RichtextFacet struct {
	LexiconTypeID string                         `json:"$type,const=app.bsky.richtext.facet,omitempty"`
	Features      []*RichtextFacet_Features_Elem `json:"features"`
	Index         *RichtextFacet_ByteSlice       `json:"index"`
	Extra         *data.Object                   `json:"-"`
}

func (t RichtextFacet) LexiconType() string {
	return "app.bsky.richtext.facet"
}

func (t *RichtextFacet) UnmarshalJSON(b []byte) error {
	type alias RichtextFacet
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t RichtextFacet) MarshalJSON() ([]byte, error) {
	type alias RichtextFacet
	return lexutil.MarshalObject(alias(t), t.Extra)
}

var richtextFacetFeatures = lexutil.NewFamily("app.bsky.richtext.facet#features").
	Register("app.bsky.richtext.facet#mention", &RichtextFacet_Mention{}).
	Register("app.bsky.richtext.facet#link", &RichtextFacet_Link{}).
	Register("app.bsky.richtext.facet#tag", &RichtextFacet_Tag{})

type RichtextFacet_Features_Elem struct {
	Value lexutil.Variant
}

func (t RichtextFacet_Features_Elem) MarshalJSON() ([]byte, error) {
	return lexutil.MarshalVariant(t.Value)
}

func (t *RichtextFacet_Features_Elem) UnmarshalJSON(b []byte) error {
	return richtextFacetFeatures.UnmarshalInto(b, &t.Value)
}

// RichtextFacet_ByteSlice is a "byteSlice" in the app.bsky.richtext.facet schema.
//
// Specifies the sub-string range a facet feature applies to. Start index is inclusive, end index is exclusive. Indices are zero-indexed, counting bytes of the UTF-8 encoded text.
type RichtextFacet_ByteSlice struct {
	ByteEnd   int64        `json:"byteEnd"`
	ByteStart int64        `json:"byteStart"`
	Extra     *data.Object `json:"-"`
}

func (t *RichtextFacet_ByteSlice) UnmarshalJSON(b []byte) error {
	type alias RichtextFacet_ByteSlice
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t RichtextFacet_ByteSlice) MarshalJSON() ([]byte, error) {
	type alias RichtextFacet_ByteSlice
	return lexutil.MarshalObject(alias(t), t.Extra)
}

// Facet feature for mention of another account. The text is usually a handle, including a '@' prefix, but the facet reference is a DID.
type RichtextFacet_Mention struct {
	LexiconTypeID string       `json:"$type,const=app.bsky.richtext.facet#mention,omitempty"`
	Did           syntax.DID   `json:"did"`
	Extra         *data.Object `json:"-"`
}

func (t RichtextFacet_Mention) LexiconType() string {
	return "app.bsky.richtext.facet#mention"
}

func (t *RichtextFacet_Mention) UnmarshalJSON(b []byte) error {
	type alias RichtextFacet_Mention
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t RichtextFacet_Mention) MarshalJSON() ([]byte, error) {
	type alias RichtextFacet_Mention
	return lexutil.MarshalObject(alias(t), t.Extra)
}

// Facet feature for a URL. The text URL may have been simplified or truncated, but the facet reference should be a complete URL.
type RichtextFacet_Link struct {
	LexiconTypeID string       `json:"$type,const=app.bsky.richtext.facet#link,omitempty"`
	Uri           string       `json:"uri"`
	Extra         *data.Object `json:"-"`
}

func (t RichtextFacet_Link) LexiconType() string {
	return "app.bsky.richtext.facet#link"
}

func (t *RichtextFacet_Link) UnmarshalJSON(b []byte) error {
	type alias RichtextFacet_Link
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t RichtextFacet_Link) MarshalJSON() ([]byte, error) {
	type alias RichtextFacet_Link
	return lexutil.MarshalObject(alias(t), t.Extra)
}

// Facet feature for a hashtag. The text usually includes a '#' prefix, but the facet reference should not (except in the case of 'double hash tags').
type RichtextFacet_Tag struct {
	LexiconTypeID string       `json:"$type,const=app.bsky.richtext.facet#tag,omitempty"`
	Tag           string       `json:"tag"`
	Extra         *data.Object `json:"-"`
}

func (t RichtextFacet_Tag) LexiconType() string {
	return "app.bsky.richtext.facet#tag"
}

func (t *RichtextFacet_Tag) UnmarshalJSON(b []byte) error {
	type alias RichtextFacet_Tag
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t RichtextFacet_Tag) MarshalJSON() ([]byte, error) {
	type alias RichtextFacet_Tag
	return lexutil.MarshalObject(alias(t), t.Extra)
}
