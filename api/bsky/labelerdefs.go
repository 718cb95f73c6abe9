package bsky

import (
	comatproto "github.com/bluesky-social/lexcodec/api/atproto"
	"github.com/bluesky-social/lexcodec/atproto/data"
	"github.com/bluesky-social/lexcodec/atproto/syntax"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: app.bsky.labeler.defs

// LabelerDefs_LabelerView is a "labelerView" in the app.bsky.labeler.defs schema.
type LabelerDefs_LabelerView struct {
	LexiconTypeID string                          `json:"$type,const=app.bsky.labeler.defs#labelerView,omitempty"`
	Cid           syntax.CID                      `json:"cid"`
	Creator       *ActorDefs_ProfileView          `json:"creator"`
	IndexedAt     lexutil.LexDatetime             `json:"indexedAt"`
	Labels        []*comatproto.LabelDefs_Label   `json:"labels,omitzero"`
	LikeCount     *int64                          `json:"likeCount,omitempty"`
	Uri           syntax.ATURI                    `json:"uri"`
	Viewer        *LabelerDefs_LabelerViewerState `json:"viewer,omitempty"`
	Extra         *data.Object                    `json:"-"`
}

func (t LabelerDefs_LabelerView) LexiconType() string {
	return "app.bsky.labeler.defs#labelerView"
}

func (t *LabelerDefs_LabelerView) UnmarshalJSON(b []byte) error {
	type alias LabelerDefs_LabelerView
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t LabelerDefs_LabelerView) MarshalJSON() ([]byte, error) {
	type alias LabelerDefs_LabelerView
	return lexutil.MarshalObject(alias(t), t.Extra)
}

// LabelerDefs_LabelerViewDetailed is a "labelerViewDetailed" in the app.bsky.labeler.defs schema.
type LabelerDefs_LabelerViewDetailed struct {
	LexiconTypeID string                        `json:"$type,const=app.bsky.labeler.defs#labelerViewDetailed,omitempty"`
	Cid           syntax.CID                    `json:"cid"`
	Creator       *ActorDefs_ProfileView        `json:"creator"`
	IndexedAt     lexutil.LexDatetime           `json:"indexedAt"`
	Labels        []*comatproto.LabelDefs_Label `json:"labels,omitzero"`
	LikeCount     *int64                        `json:"likeCount,omitempty"`
	Policies      *LabelerDefs_LabelerPolicies  `json:"policies"`
	// reasonTypes: The set of report reason 'codes' which are in-scope for this service to review and action. These usually align to policy categories. If not defined (distinct from empty array), all reason types are allowed.
	ReasonTypes []comatproto.ModerationDefs_ReasonType `json:"reasonTypes,omitzero"`
	Uri         syntax.ATURI                           `json:"uri"`
	Viewer      *LabelerDefs_LabelerViewerState        `json:"viewer,omitempty"`
	Extra       *data.Object                           `json:"-"`
}

func (t LabelerDefs_LabelerViewDetailed) LexiconType() string {
	return "app.bsky.labeler.defs#labelerViewDetailed"
}

func (t *LabelerDefs_LabelerViewDetailed) UnmarshalJSON(b []byte) error {
	type alias LabelerDefs_LabelerViewDetailed
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t LabelerDefs_LabelerViewDetailed) MarshalJSON() ([]byte, error) {
	type alias LabelerDefs_LabelerViewDetailed
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type LabelerDefs_LabelerViewerState struct {
	Like  *syntax.ATURI `json:"like,omitempty"`
	Extra *data.Object  `json:"-"`
}

func (t *LabelerDefs_LabelerViewerState) UnmarshalJSON(b []byte) error {
	type alias LabelerDefs_LabelerViewerState
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t LabelerDefs_LabelerViewerState) MarshalJSON() ([]byte, error) {
	type alias LabelerDefs_LabelerViewerState
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type LabelerDefs_LabelerPolicies struct {
	// labelValueDefinitions: Label values created by this labeler and scoped exclusively to it. Labels defined here will override global label definitions for this labeler.
	LabelValueDefinitions []*comatproto.LabelDefs_LabelValueDefinition `json:"labelValueDefinitions,omitzero"`
	// labelValues: The label values which this labeler publishes. May include global or custom labels.
	LabelValues []string     `json:"labelValues"`
	Extra       *data.Object `json:"-"`
}

func (t *LabelerDefs_LabelerPolicies) UnmarshalJSON(b []byte) error {
	type alias LabelerDefs_LabelerPolicies
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t LabelerDefs_LabelerPolicies) MarshalJSON() ([]byte, error) {
	type alias LabelerDefs_LabelerPolicies
	return lexutil.MarshalObject(alias(t), t.Extra)
}
