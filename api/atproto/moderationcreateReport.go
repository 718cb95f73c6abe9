package atproto

import (
	"github.com/bluesky-social/lexcodec/atproto/data"
	"github.com/bluesky-social/lexcodec/atproto/syntax"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: com.atproto.moderation.createReport

// ModerationCreateReport_Input is the input argument to a com.atproto.moderation.createReport call
type ModerationCreateReport_Input struct {
	// reason: Additional context about the content and violation.
	Reason *string `json:"reason,omitempty"`
	// reasonType: Indicates the broad category of violation the report is for.
	ReasonType ModerationDefs_ReasonType             `json:"reasonType"`
	Subject    *ModerationCreateReport_Input_Subject `json:"subject"`
	Extra      *data.Object                          `json:"-"`
}

func (t *ModerationCreateReport_Input) UnmarshalJSON(b []byte) error {
	type alias ModerationCreateReport_Input
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t ModerationCreateReport_Input) MarshalJSON() ([]byte, error) {
	type alias ModerationCreateReport_Input
	return lexutil.MarshalObject(alias(t), t.Extra)
}

var moderationReportSubject = lexutil.NewFamily("com.atproto.moderation.createReport#subject").
	Register("com.atproto.admin.defs#repoRef", &AdminDefs_RepoRef{}).
	Register("com.atproto.repo.strongRef", &RepoStrongRef{})

type ModerationCreateReport_Input_Subject struct {
	Value lexutil.Variant
}

func (t ModerationCreateReport_Input_Subject) MarshalJSON() ([]byte, error) {
	return lexutil.MarshalVariant(t.Value)
}

func (t *ModerationCreateReport_Input_Subject) UnmarshalJSON(b []byte) error {
	return moderationReportSubject.UnmarshalInto(b, &t.Value)
}

// ModerationCreateReport_Output is the output of a com.atproto.moderation.createReport call.
type ModerationCreateReport_Output struct {
	CreatedAt  lexutil.LexDatetime                    `json:"createdAt"`
	Id         int64                                  `json:"id"`
	Reason     *string                                `json:"reason,omitempty"`
	ReasonType ModerationDefs_ReasonType              `json:"reasonType"`
	ReportedBy syntax.DID                             `json:"reportedBy"`
	Subject    *ModerationCreateReport_Output_Subject `json:"subject"`
	Extra      *data.Object                           `json:"-"`
}

func (t *ModerationCreateReport_Output) UnmarshalJSON(b []byte) error {
	type alias ModerationCreateReport_Output
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t ModerationCreateReport_Output) MarshalJSON() ([]byte, error) {
	type alias ModerationCreateReport_Output
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type ModerationCreateReport_Output_Subject struct {
	Value lexutil.Variant
}

func (t ModerationCreateReport_Output_Subject) MarshalJSON() ([]byte, error) {
	return lexutil.MarshalVariant(t.Value)
}

func (t *ModerationCreateReport_Output_Subject) UnmarshalJSON(b []byte) error {
	return moderationReportSubject.UnmarshalInto(b, &t.Value)
}
