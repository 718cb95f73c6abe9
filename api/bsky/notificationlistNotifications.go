package bsky

import (
	comatproto "github.com/bluesky-social/lexcodec/api/atproto"
	"github.com/bluesky-social/lexcodec/atproto/data"
	"github.com/bluesky-social/lexcodec/atproto/syntax"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: app.bsky.notification.listNotifications

// NotificationListNotifications_Output is the output of a app.bsky.notification.listNotifications call.
type NotificationListNotifications_Output struct {
	Cursor        *string                                       `json:"cursor,omitempty"`
	Notifications []*NotificationListNotifications_Notification `json:"notifications"`
	Priority      *bool                                         `json:"priority,omitempty"`
	SeenAt        *lexutil.LexDatetime                          `json:"seenAt,omitempty"`
	Extra         *data.Object                                  `json:"-"`
}

func (t *NotificationListNotifications_Output) UnmarshalJSON(b []byte) error {
	type alias NotificationListNotifications_Output
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t NotificationListNotifications_Output) MarshalJSON() ([]byte, error) {
	type alias NotificationListNotifications_Output
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type NotificationListNotifications_Notification struct {
	Author    *ActorDefs_ProfileView        `json:"author"`
	Cid       syntax.CID                    `json:"cid"`
	IndexedAt lexutil.LexDatetime           `json:"indexedAt"`
	IsRead    bool                          `json:"isRead"`
	Labels    []*comatproto.LabelDefs_Label `json:"labels,omitzero"`
	// reason: The reason why this notification was delivered - e.g. your post was liked, or you received a new follower.
	Reason        NotificationListNotifications_Reason `json:"reason"`
	ReasonSubject *syntax.ATURI                        `json:"reasonSubject,omitempty"`
	Record        *lexutil.LexiconTypeDecoder          `json:"record"`
	Uri           syntax.ATURI                         `json:"uri"`
	Extra         *data.Object                         `json:"-"`
}

func (t *NotificationListNotifications_Notification) UnmarshalJSON(b []byte) error {
	type alias NotificationListNotifications_Notification
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t NotificationListNotifications_Notification) MarshalJSON() ([]byte, error) {
	type alias NotificationListNotifications_Notification
	return lexutil.MarshalObject(alias(t), t.Extra)
}

// New reasons are added to the protocol over time; any not listed here decode as NotificationReasonUnknown.
type NotificationListNotifications_Reason int

const (
	NotificationReasonUnknown NotificationListNotifications_Reason = iota
	NotificationReasonLike
	NotificationReasonRepost
	NotificationReasonFollow
	NotificationReasonMention
	NotificationReasonReply
	NotificationReasonQuote
	NotificationReasonStarterpackJoined
	NotificationReasonVerified
	NotificationReasonUnverified
	NotificationReasonLikeViaRepost
	NotificationReasonRepostViaRepost
	NotificationReasonSubscribedPost
)

var notificationReason = lexutil.NewEnum("app.bsky.notification.listNotifications#notification.reason", NotificationReasonUnknown, map[NotificationListNotifications_Reason]string{
	NotificationReasonUnknown:           "unknown",
	NotificationReasonLike:              "like",
	NotificationReasonRepost:            "repost",
	NotificationReasonFollow:            "follow",
	NotificationReasonMention:           "mention",
	NotificationReasonReply:             "reply",
	NotificationReasonQuote:             "quote",
	NotificationReasonStarterpackJoined: "starterpack-joined",
	NotificationReasonVerified:          "verified",
	NotificationReasonUnverified:        "unverified",
	NotificationReasonLikeViaRepost:     "like-via-repost",
	NotificationReasonRepostViaRepost:   "repost-via-repost",
	NotificationReasonSubscribedPost:    "subscribed-post",
})

func (v NotificationListNotifications_Reason) String() string {
	s, _ := notificationReason.Encode(v)
	return s
}

func (v NotificationListNotifications_Reason) MarshalText() ([]byte, error) {
	s, err := notificationReason.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *NotificationListNotifications_Reason) UnmarshalText(b []byte) error {
	*v = notificationReason.Decode(string(b))
	return nil
}
