package atproto

import (
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: com.atproto.moderation.defs

// Reason for a moderation report. Unrecognized reasons decode as ModerationDefs_ReasonOther.
type ModerationDefs_ReasonType int

const (
	ModerationDefs_ReasonOther ModerationDefs_ReasonType = iota
	ModerationDefs_ReasonSpam
	ModerationDefs_ReasonViolation
	ModerationDefs_ReasonMisleading
	ModerationDefs_ReasonSexual
	ModerationDefs_ReasonRude
	ModerationDefs_ReasonAppeal
)

var moderationReasonType = lexutil.NewEnum("com.atproto.moderation.defs#reasonType", ModerationDefs_ReasonOther, map[ModerationDefs_ReasonType]string{
	ModerationDefs_ReasonOther:      "com.atproto.moderation.defs#reasonOther",
	ModerationDefs_ReasonSpam:       "com.atproto.moderation.defs#reasonSpam",
	ModerationDefs_ReasonViolation:  "com.atproto.moderation.defs#reasonViolation",
	ModerationDefs_ReasonMisleading: "com.atproto.moderation.defs#reasonMisleading",
	ModerationDefs_ReasonSexual:     "com.atproto.moderation.defs#reasonSexual",
	ModerationDefs_ReasonRude:       "com.atproto.moderation.defs#reasonRude",
	ModerationDefs_ReasonAppeal:     "com.atproto.moderation.defs#reasonAppeal",
})

func (v ModerationDefs_ReasonType) String() string {
	s, _ := moderationReasonType.Encode(v)
	return s
}

func (v ModerationDefs_ReasonType) MarshalText() ([]byte, error) {
	s, err := moderationReasonType.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *ModerationDefs_ReasonType) UnmarshalText(b []byte) error {
	*v = moderationReasonType.Decode(string(b))
	return nil
}
