package bsky

import (
	"github.com/bluesky-social/lexcodec/atproto/data"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: app.bsky.labeler.getServices

// LabelerGetServices_Output is the output of a app.bsky.labeler.getServices call.
type LabelerGetServices_Output struct {
	Views []*LabelerGetServices_Output_Views_Elem `json:"views"`
	Extra *data.Object                            `json:"-"`
}

func (t *LabelerGetServices_Output) UnmarshalJSON(b []byte) error {
	type alias LabelerGetServices_Output
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t LabelerGetServices_Output) MarshalJSON() ([]byte, error) {
	type alias LabelerGetServices_Output
	return lexutil.MarshalObject(alias(t), t.Extra)
}

var labelerServiceViews = lexutil.NewFamily("app.bsky.labeler.getServices#views").
	Register("app.bsky.labeler.defs#labelerView", &LabelerDefs_LabelerView{}).
	Register("app.bsky.labeler.defs#labelerViewDetailed", &LabelerDefs_LabelerViewDetailed{})

type LabelerGetServices_Output_Views_Elem struct {
	Value lexutil.Variant
}

func (t LabelerGetServices_Output_Views_Elem) MarshalJSON() ([]byte, error) {
	return lexutil.MarshalVariant(t.Value)
}

func (t *LabelerGetServices_Output_Views_Elem) UnmarshalJSON(b []byte) error {
	return labelerServiceViews.UnmarshalInto(b, &t.Value)
}
