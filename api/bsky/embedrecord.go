package bsky

import (
	comatproto "github.com/bluesky-social/lexcodec/api/atproto"
	"github.com/bluesky-social/lexcodec/atproto/data"
	"github.com/bluesky-social/lexcodec/atproto/syntax"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: app.bsky.embed.record

// EmbedRecord is a "main" in the app.bsky.embed.record schema.
//
// A representation of a record embedded in a Bluesky record (eg, a post). For example, a quote-post, or sharing a feed generator record.
type EmbedRecord struct {
	LexiconTypeID string                    `json:"$type,const=app.bsky.embed.record,omitempty"`
	Record        *comatproto.RepoStrongRef `json:"record"`
	Extra         *data.Object              `json:"-"`
}

func (t EmbedRecord) LexiconType() string {
	return "app.bsky.embed.record"
}

func (t *EmbedRecord) UnmarshalJSON(b []byte) error {
	type alias EmbedRecord
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t EmbedRecord) MarshalJSON() ([]byte, error) {
	type alias EmbedRecord
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type EmbedRecord_View struct {
	LexiconTypeID string                   `json:"$type,const=app.bsky.embed.record#view,omitempty"`
	Record        *EmbedRecord_View_Record `json:"record"`
	Extra         *data.Object             `json:"-"`
}

func (t EmbedRecord_View) LexiconType() string {
	return "app.bsky.embed.record#view"
}

func (t *EmbedRecord_View) UnmarshalJSON(b []byte) error {
	type alias EmbedRecord_View
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t EmbedRecord_View) MarshalJSON() ([]byte, error) {
	type alias EmbedRecord_View
	return lexutil.MarshalObject(alias(t), t.Extra)
}

var embedRecordViewRecord = lexutil.NewFamily("app.bsky.embed.record#view.record").
	Register("app.bsky.embed.record#viewRecord", &EmbedRecord_ViewRecord{}).
	Register("app.bsky.embed.record#viewNotFound", &EmbedRecord_ViewNotFound{}).
	Register("app.bsky.embed.record#viewBlocked", &EmbedRecord_ViewBlocked{}).
	Register("app.bsky.embed.record#viewDetached", &EmbedRecord_ViewDetached{}).
	Register("app.bsky.labeler.defs#labelerView", &LabelerDefs_LabelerView{})

type EmbedRecord_View_Record struct {
	Value lexutil.Variant
}

func (t EmbedRecord_View_Record) MarshalJSON() ([]byte, error) {
	return lexutil.MarshalVariant(t.Value)
}

func (t *EmbedRecord_View_Record) UnmarshalJSON(b []byte) error {
	return embedRecordViewRecord.UnmarshalInto(b, &t.Value)
}

type EmbedRecord_ViewRecord struct {
	LexiconTypeID string                                `json:"$type,const=app.bsky.embed.record#viewRecord,omitempty"`
	Author        *ActorDefs_ProfileViewBasic           `json:"author"`
	Cid           syntax.CID                            `json:"cid"`
	Embeds        []*EmbedRecord_ViewRecord_Embeds_Elem `json:"embeds,omitzero"`
	IndexedAt     lexutil.LexDatetime                   `json:"indexedAt"`
	Labels        []*comatproto.LabelDefs_Label         `json:"labels,omitzero"`
	LikeCount     *int64                                `json:"likeCount,omitempty"`
	QuoteCount    *int64                                `json:"quoteCount,omitempty"`
	ReplyCount    *int64                                `json:"replyCount,omitempty"`
	RepostCount   *int64                                `json:"repostCount,omitempty"`
	Uri           syntax.ATURI                          `json:"uri"`
	// value: The record data itself.
	Value *lexutil.LexiconTypeDecoder `json:"value"`
	Extra *data.Object                `json:"-"`
}

func (t EmbedRecord_ViewRecord) LexiconType() string {
	return "app.bsky.embed.record#viewRecord"
}

func (t *EmbedRecord_ViewRecord) UnmarshalJSON(b []byte) error {
	type alias EmbedRecord_ViewRecord
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t EmbedRecord_ViewRecord) MarshalJSON() ([]byte, error) {
	type alias EmbedRecord_ViewRecord
	return lexutil.MarshalObject(alias(t), t.Extra)
}

var embedViewFamily = lexutil.NewFamily("app.bsky.embed#view").
	Register("app.bsky.embed.images#view", &EmbedImages_View{}).
	Register("app.bsky.embed.video#view", &EmbedVideo_View{}).
	Register("app.bsky.embed.external#view", &EmbedExternal_View{}).
	Register("app.bsky.embed.record#view", &EmbedRecord_View{}).
	Register("app.bsky.embed.recordWithMedia#view", &EmbedRecordWithMedia_View{})

type EmbedRecord_ViewRecord_Embeds_Elem struct {
	Value lexutil.Variant
}

func (t EmbedRecord_ViewRecord_Embeds_Elem) MarshalJSON() ([]byte, error) {
	return lexutil.MarshalVariant(t.Value)
}

func (t *EmbedRecord_ViewRecord_Embeds_Elem) UnmarshalJSON(b []byte) error {
	return embedViewFamily.UnmarshalInto(b, &t.Value)
}

type EmbedRecord_ViewNotFound struct {
	LexiconTypeID string       `json:"$type,const=app.bsky.embed.record#viewNotFound,omitempty"`
	NotFound      bool         `json:"notFound"`
	Uri           syntax.ATURI `json:"uri"`
	Extra         *data.Object `json:"-"`
}

func (t EmbedRecord_ViewNotFound) LexiconType() string {
	return "app.bsky.embed.record#viewNotFound"
}

func (t *EmbedRecord_ViewNotFound) UnmarshalJSON(b []byte) error {
	type alias EmbedRecord_ViewNotFound
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t EmbedRecord_ViewNotFound) MarshalJSON() ([]byte, error) {
	type alias EmbedRecord_ViewNotFound
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type EmbedRecord_ViewBlocked struct {
	LexiconTypeID string                  `json:"$type,const=app.bsky.embed.record#viewBlocked,omitempty"`
	Author        *FeedDefs_BlockedAuthor `json:"author"`
	Blocked       bool                    `json:"blocked"`
	Uri           syntax.ATURI            `json:"uri"`
	Extra         *data.Object            `json:"-"`
}

func (t EmbedRecord_ViewBlocked) LexiconType() string {
	return "app.bsky.embed.record#viewBlocked"
}

func (t *EmbedRecord_ViewBlocked) UnmarshalJSON(b []byte) error {
	type alias EmbedRecord_ViewBlocked
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t EmbedRecord_ViewBlocked) MarshalJSON() ([]byte, error) {
	type alias EmbedRecord_ViewBlocked
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type EmbedRecord_ViewDetached struct {
	LexiconTypeID string       `json:"$type,const=app.bsky.embed.record#viewDetached,omitempty"`
	Detached      bool         `json:"detached"`
	Uri           syntax.ATURI `json:"uri"`
	Extra         *data.Object `json:"-"`
}

func (t EmbedRecord_ViewDetached) LexiconType() string {
	return "app.bsky.embed.record#viewDetached"
}

func (t *EmbedRecord_ViewDetached) UnmarshalJSON(b []byte) error {
	type alias EmbedRecord_ViewDetached
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t EmbedRecord_ViewDetached) MarshalJSON() ([]byte, error) {
	type alias EmbedRecord_ViewDetached
	return lexutil.MarshalObject(alias(t), t.Extra)
}
