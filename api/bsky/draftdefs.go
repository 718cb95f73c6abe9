package bsky

import (
	comatproto "github.com/bluesky-social/lexcodec/api/atproto"
	"github.com/bluesky-social/lexcodec/atproto/data"
	"github.com/bluesky-social/lexcodec/atproto/syntax"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: app.bsky.draft.defs

// DraftDefs_Draft is a "draft" in the app.bsky.draft.defs schema.
//
// A draft containing an array of draft posts.
type DraftDefs_Draft struct {
	// langs: Indicates human language of posts primary text content.
	Langs []syntax.Language `json:"langs,omitzero"`
	// posts: Array of draft posts that compose this draft.
	Posts []*DraftDefs_DraftPost `json:"posts"`
	// threadgateAllow: Allow-rules for the threadgate record created when the draft is published. If value is an empty array, no one can reply. If value is absent, anybody can reply.
	ThreadgateAllow []*DraftDefs_Draft_ThreadgateAllow_Elem `json:"threadgateAllow,omitzero"`
	Extra           *data.Object                            `json:"-"`
}

func (t *DraftDefs_Draft) UnmarshalJSON(b []byte) error {
	type alias DraftDefs_Draft
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t DraftDefs_Draft) MarshalJSON() ([]byte, error) {
	type alias DraftDefs_Draft
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type DraftDefs_Draft_ThreadgateAllow_Elem struct {
	Value lexutil.Variant
}

func (t DraftDefs_Draft_ThreadgateAllow_Elem) MarshalJSON() ([]byte, error) {
	return lexutil.MarshalVariant(t.Value)
}

func (t *DraftDefs_Draft_ThreadgateAllow_Elem) UnmarshalJSON(b []byte) error {
	return threadgateRules.UnmarshalInto(b, &t.Value)
}

// DraftDefs_DraftPost is a "draftPost" in the app.bsky.draft.defs schema.
//
// One of the posts that compose a draft.
type DraftDefs_DraftPost struct {
	EmbedExternals []*DraftDefs_DraftEmbedExternal `json:"embedExternals,omitzero"`
	EmbedImages    []*DraftDefs_DraftEmbedImage    `json:"embedImages,omitzero"`
	EmbedRecords   []*DraftDefs_DraftEmbedRecord   `json:"embedRecords,omitzero"`
	// labels: Self-label values for this post. Effectively content warnings.
	Labels *DraftDefs_DraftPost_Labels `json:"labels,omitempty"`
	// text: The primary post content.
	Text  string       `json:"text"`
	Extra *data.Object `json:"-"`
}

func (t *DraftDefs_DraftPost) UnmarshalJSON(b []byte) error {
	type alias DraftDefs_DraftPost
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t DraftDefs_DraftPost) MarshalJSON() ([]byte, error) {
	type alias DraftDefs_DraftPost
	return lexutil.MarshalObject(alias(t), t.Extra)
}

var draftPostLabels = lexutil.NewFamily("app.bsky.draft.defs#draftPost.labels").
	Register("com.atproto.label.defs#selfLabels", &comatproto.LabelDefs_SelfLabels{})

type DraftDefs_DraftPost_Labels struct {
	Value lexutil.Variant
}

func (t DraftDefs_DraftPost_Labels) MarshalJSON() ([]byte, error) {
	return lexutil.MarshalVariant(t.Value)
}

func (t *DraftDefs_DraftPost_Labels) UnmarshalJSON(b []byte) error {
	return draftPostLabels.UnmarshalInto(b, &t.Value)
}

type DraftDefs_DraftEmbedLocalRef struct {
	// path: Local, on-device ref to file to be embedded. Embeds are currently device-bound for drafts.
	Path  string       `json:"path"`
	Extra *data.Object `json:"-"`
}

func (t *DraftDefs_DraftEmbedLocalRef) UnmarshalJSON(b []byte) error {
	type alias DraftDefs_DraftEmbedLocalRef
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t DraftDefs_DraftEmbedLocalRef) MarshalJSON() ([]byte, error) {
	type alias DraftDefs_DraftEmbedLocalRef
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type DraftDefs_DraftEmbedImage struct {
	Alt      *string                       `json:"alt,omitempty"`
	LocalRef *DraftDefs_DraftEmbedLocalRef `json:"localRef"`
	Extra    *data.Object                  `json:"-"`
}

func (t *DraftDefs_DraftEmbedImage) UnmarshalJSON(b []byte) error {
	type alias DraftDefs_DraftEmbedImage
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t DraftDefs_DraftEmbedImage) MarshalJSON() ([]byte, error) {
	type alias DraftDefs_DraftEmbedImage
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type DraftDefs_DraftEmbedExternal struct {
	Uri   string       `json:"uri"`
	Extra *data.Object `json:"-"`
}

func (t *DraftDefs_DraftEmbedExternal) UnmarshalJSON(b []byte) error {
	type alias DraftDefs_DraftEmbedExternal
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t DraftDefs_DraftEmbedExternal) MarshalJSON() ([]byte, error) {
	type alias DraftDefs_DraftEmbedExternal
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type DraftDefs_DraftEmbedRecord struct {
	Record *comatproto.RepoStrongRef `json:"record"`
	Extra  *data.Object              `json:"-"`
}

func (t *DraftDefs_DraftEmbedRecord) UnmarshalJSON(b []byte) error {
	type alias DraftDefs_DraftEmbedRecord
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t DraftDefs_DraftEmbedRecord) MarshalJSON() ([]byte, error) {
	type alias DraftDefs_DraftEmbedRecord
	return lexutil.MarshalObject(alias(t), t.Extra)
}

// DraftDefs_DraftView is a "draftView" in the app.bsky.draft.defs schema.
//
// View to present drafts data to users.
type DraftDefs_DraftView struct {
	// createdAt: The time the draft was created.
	CreatedAt lexutil.LexDatetime `json:"createdAt"`
	Draft     *DraftDefs_Draft    `json:"draft"`
	// id: A TID to be used as a draft identifier.
	Id syntax.TID `json:"id"`
	// updatedAt: The time the draft was last updated.
	UpdatedAt lexutil.LexDatetime `json:"updatedAt"`
	Extra     *data.Object        `json:"-"`
}

func (t *DraftDefs_DraftView) UnmarshalJSON(b []byte) error {
	type alias DraftDefs_DraftView
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t DraftDefs_DraftView) MarshalJSON() ([]byte, error) {
	type alias DraftDefs_DraftView
	return lexutil.MarshalObject(alias(t), t.Extra)
}
