package bsky

import (
	comatproto "github.com/bluesky-social/lexcodec/api/atproto"
	"github.com/bluesky-social/lexcodec/atproto/data"
	"github.com/bluesky-social/lexcodec/atproto/syntax"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: app.bsky.actor.defs

// ActorDefs_ProfileViewBasic is a "profileViewBasic" in the app.bsky.actor.defs schema.
type ActorDefs_ProfileViewBasic struct {
	Avatar      *string                       `json:"avatar,omitempty"`
	CreatedAt   *lexutil.LexDatetime          `json:"createdAt,omitempty"`
	Did         syntax.DID                    `json:"did"`
	DisplayName *string                       `json:"displayName,omitempty"`
	Handle      syntax.Handle                 `json:"handle"`
	Labels      []*comatproto.LabelDefs_Label `json:"labels,omitzero"`
	Viewer      *ActorDefs_ViewerState        `json:"viewer,omitempty"`
	Extra       *data.Object                  `json:"-"`
}

func (t *ActorDefs_ProfileViewBasic) UnmarshalJSON(b []byte) error {
	type alias ActorDefs_ProfileViewBasic
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t ActorDefs_ProfileViewBasic) MarshalJSON() ([]byte, error) {
	type alias ActorDefs_ProfileViewBasic
	return lexutil.MarshalObject(alias(t), t.Extra)
}

// ActorDefs_ProfileView is a "profileView" in the app.bsky.actor.defs schema.
type ActorDefs_ProfileView struct {
	Avatar      *string                       `json:"avatar,omitempty"`
	CreatedAt   *lexutil.LexDatetime          `json:"createdAt,omitempty"`
	Description *string                       `json:"description,omitempty"`
	Did         syntax.DID                    `json:"did"`
	DisplayName *string                       `json:"displayName,omitempty"`
	Handle      syntax.Handle                 `json:"handle"`
	IndexedAt   *lexutil.LexDatetime          `json:"indexedAt,omitempty"`
	Labels      []*comatproto.LabelDefs_Label `json:"labels,omitzero"`
	Viewer      *ActorDefs_ViewerState        `json:"viewer,omitempty"`
	Extra       *data.Object                  `json:"-"`
}

func (t *ActorDefs_ProfileView) UnmarshalJSON(b []byte) error {
	type alias ActorDefs_ProfileView
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t ActorDefs_ProfileView) MarshalJSON() ([]byte, error) {
	type alias ActorDefs_ProfileView
	return lexutil.MarshalObject(alias(t), t.Extra)
}

// ActorDefs_ViewerState is a "viewerState" in the app.bsky.actor.defs schema.
//
// Metadata about the requesting account's relationship with the subject account. Only has meaningful content for authed requests.
type ActorDefs_ViewerState struct {
	BlockedBy  *bool         `json:"blockedBy,omitempty"`
	Blocking   *syntax.ATURI `json:"blocking,omitempty"`
	FollowedBy *syntax.ATURI `json:"followedBy,omitempty"`
	Following  *syntax.ATURI `json:"following,omitempty"`
	Muted      *bool         `json:"muted,omitempty"`
	Extra      *data.Object  `json:"-"`
}

func (t *ActorDefs_ViewerState) UnmarshalJSON(b []byte) error {
	type alias ActorDefs_ViewerState
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t ActorDefs_ViewerState) MarshalJSON() ([]byte, error) {
	type alias ActorDefs_ViewerState
	return lexutil.MarshalObject(alias(t), t.Extra)
}
