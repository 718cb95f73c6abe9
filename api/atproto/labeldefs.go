package atproto

import (
	"github.com/bluesky-social/lexcodec/atproto/data"
	"github.com/bluesky-social/lexcodec/atproto/syntax"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: com.atproto.label.defs

// LabelDefs_Label is a "label" in the com.atproto.label.defs schema.
//
// Metadata tag on an atproto resource (eg, repo or record).
type LabelDefs_Label struct {
	LexiconTypeID string `json:"$type,const=com.atproto.label.defs#label,omitempty"`
	// cid: Optionally, CID specifying the specific version of 'uri' resource this label applies to.
	Cid *syntax.CID `json:"cid,omitempty"`
	// cts: Timestamp when this label was created.
	Cts lexutil.LexDatetime `json:"cts"`
	// exp: Timestamp at which this label expires (no longer applies).
	Exp *lexutil.LexDatetime `json:"exp,omitempty"`
	// neg: If true, this is a negation label, overwriting a previous label.
	Neg *bool `json:"neg,omitempty"`
	// sig: Signature of dag-cbor encoded label.
	Sig lexutil.LexBytes `json:"sig,omitempty"`
	// src: DID of the actor who created this label.
	Src syntax.DID `json:"src"`
	// uri: AT URI of the record, repository (account), or other resource that this label applies to.
	Uri string `json:"uri"`
	// val: The short string name of the value or type of this label.
	Val string `json:"val"`
	// ver: The AT Protocol version of the label object.
	Ver   *int64       `json:"ver,omitempty"`
	Extra *data.Object `json:"-"`
}

func (t LabelDefs_Label) LexiconType() string {
	return "com.atproto.label.defs#label"
}

func (t *LabelDefs_Label) UnmarshalJSON(b []byte) error {
	type alias LabelDefs_Label
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t LabelDefs_Label) MarshalJSON() ([]byte, error) {
	type alias LabelDefs_Label
	return lexutil.MarshalObject(alias(t), t.Extra)
}

// LabelDefs_SelfLabels is a "selfLabels" in the com.atproto.label.defs schema.
//
// Metadata tags on an atproto record, published by the author within the record.
type LabelDefs_SelfLabels struct {
	LexiconTypeID string                 `json:"$type,const=com.atproto.label.defs#selfLabels,omitempty"`
	Values        []*LabelDefs_SelfLabel `json:"values"`
	Extra         *data.Object           `json:"-"`
}

func (t LabelDefs_SelfLabels) LexiconType() string {
	return "com.atproto.label.defs#selfLabels"
}

func (t *LabelDefs_SelfLabels) UnmarshalJSON(b []byte) error {
	type alias LabelDefs_SelfLabels
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t LabelDefs_SelfLabels) MarshalJSON() ([]byte, error) {
	type alias LabelDefs_SelfLabels
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type LabelDefs_SelfLabel struct {
	// val: The short string name of the value or type of this label.
	Val   string       `json:"val"`
	Extra *data.Object `json:"-"`
}

func (t *LabelDefs_SelfLabel) UnmarshalJSON(b []byte) error {
	type alias LabelDefs_SelfLabel
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t LabelDefs_SelfLabel) MarshalJSON() ([]byte, error) {
	type alias LabelDefs_SelfLabel
	return lexutil.MarshalObject(alias(t), t.Extra)
}

// LabelDefs_LabelValueDefinition is a "labelValueDefinition" in the com.atproto.label.defs schema.
//
// Declares a label value and its expected interpretations and behaviors.
type LabelDefs_LabelValueDefinition struct {
	// adultOnly: Does the user need to have adult content enabled in order to configure this label?
	AdultOnly *bool `json:"adultOnly,omitempty"`
	// blurs: What should this label hide in the UI, if applied? 'content' hides all of the target; 'media' hides the images/video/audio; 'none' hides nothing.
	Blurs LabelDefs_Blurs `json:"blurs"`
	// defaultSetting: The default setting for this label.
	DefaultSetting *LabelDefs_DefaultSetting `json:"defaultSetting,omitempty"`
	// identifier: The value of the label being defined. Must only include lowercase ascii and the '-' character ([a-z-]+).
	Identifier string                                   `json:"identifier"`
	Locales    []*LabelDefs_LabelValueDefinitionStrings `json:"locales"`
	// severity: How should a client visually convey this label? 'inform' means neutral and informational; 'alert' means negative and warning; 'none' means show nothing.
	Severity LabelDefs_Severity `json:"severity"`
	Extra    *data.Object       `json:"-"`
}

func (t *LabelDefs_LabelValueDefinition) UnmarshalJSON(b []byte) error {
	type alias LabelDefs_LabelValueDefinition
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t LabelDefs_LabelValueDefinition) MarshalJSON() ([]byte, error) {
	type alias LabelDefs_LabelValueDefinition
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type LabelDefs_LabelValueDefinitionStrings struct {
	Description string          `json:"description"`
	Lang        syntax.Language `json:"lang"`
	Name        string          `json:"name"`
	Extra       *data.Object    `json:"-"`
}

func (t *LabelDefs_LabelValueDefinitionStrings) UnmarshalJSON(b []byte) error {
	type alias LabelDefs_LabelValueDefinitionStrings
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t LabelDefs_LabelValueDefinitionStrings) MarshalJSON() ([]byte, error) {
	type alias LabelDefs_LabelValueDefinitionStrings
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type LabelDefs_Severity int

const (
	LabelDefs_SeverityNone LabelDefs_Severity = iota
	LabelDefs_SeverityInform
	LabelDefs_SeverityAlert
)

var labelSeverity = lexutil.NewEnum("com.atproto.label.defs#labelValueDefinition.severity", LabelDefs_SeverityNone, map[LabelDefs_Severity]string{
	LabelDefs_SeverityNone:   "none",
	LabelDefs_SeverityInform: "inform",
	LabelDefs_SeverityAlert:  "alert",
})

func (v LabelDefs_Severity) String() string {
	s, _ := labelSeverity.Encode(v)
	return s
}

func (v LabelDefs_Severity) MarshalText() ([]byte, error) {
	s, err := labelSeverity.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *LabelDefs_Severity) UnmarshalText(b []byte) error {
	*v = labelSeverity.Decode(string(b))
	return nil
}

type LabelDefs_Blurs int

const (
	LabelDefs_BlursNone LabelDefs_Blurs = iota
	LabelDefs_BlursContent
	LabelDefs_BlursMedia
)

var labelBlurs = lexutil.NewEnum("com.atproto.label.defs#labelValueDefinition.blurs", LabelDefs_BlursNone, map[LabelDefs_Blurs]string{
	LabelDefs_BlursNone:    "none",
	LabelDefs_BlursContent: "content",
	LabelDefs_BlursMedia:   "media",
})

func (v LabelDefs_Blurs) String() string {
	s, _ := labelBlurs.Encode(v)
	return s
}

func (v LabelDefs_Blurs) MarshalText() ([]byte, error) {
	s, err := labelBlurs.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *LabelDefs_Blurs) UnmarshalText(b []byte) error {
	*v = labelBlurs.Decode(string(b))
	return nil
}

type LabelDefs_DefaultSetting int

const (
	LabelDefs_DefaultSettingWarn LabelDefs_DefaultSetting = iota
	LabelDefs_DefaultSettingIgnore
	LabelDefs_DefaultSettingHide
)

var labelDefaultSetting = lexutil.NewEnum("com.atproto.label.defs#labelValueDefinition.defaultSetting", LabelDefs_DefaultSettingWarn, map[LabelDefs_DefaultSetting]string{
	LabelDefs_DefaultSettingWarn:   "warn",
	LabelDefs_DefaultSettingIgnore: "ignore",
	LabelDefs_DefaultSettingHide:   "hide",
})

func (v LabelDefs_DefaultSetting) String() string {
	s, _ := labelDefaultSetting.Encode(v)
	return s
}

func (v LabelDefs_DefaultSetting) MarshalText() ([]byte, error) {
	s, err := labelDefaultSetting.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *LabelDefs_DefaultSetting) UnmarshalText(b []byte) error {
	*v = labelDefaultSetting.Decode(string(b))
	return nil
}
