package bsky

import (
	"github.com/bluesky-social/lexcodec/atproto/data"
	"github.com/bluesky-social/lexcodec/atproto/syntax"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: app.bsky.feed.threadgate

func init() {
	lexutil.RegisterType("app.bsky.feed.threadgate", &FeedThreadgate{})
}

// FeedThreadgate is a "main" in the app.bsky.feed.threadgate schema.
//
// Record defining interaction gating rules for a thread (aka, reply controls). The record key (rkey) of the threadgate record must match the record key of the thread's root post, and that record must be in the same repository.
//
// RECORDTYPE: FeedThreadgate
type FeedThreadgate struct {
	LexiconTypeID string `json:"$type,const=app.bsky.feed.threadgate,omitempty"`
	// allow: List of rules defining who can reply to this post. If value is an empty array, no one can reply. If value is absent, anybody can reply.
	Allow     []*FeedThreadgate_Allow_Elem `json:"allow,omitzero"`
	CreatedAt lexutil.LexDatetime          `json:"createdAt"`
	// hiddenReplies: List of hidden reply URIs.
	HiddenReplies []syntax.ATURI `json:"hiddenReplies,omitzero"`
	// post: Reference (AT-URI) to the post record.
	Post  syntax.ATURI `json:"post"`
	Extra *data.Object `json:"-"`
}

func (t FeedThreadgate) LexiconType() string {
	return "app.bsky.feed.threadgate"
}

func (t *FeedThreadgate) UnmarshalJSON(b []byte) error {
	type alias FeedThreadgate
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t FeedThreadgate) MarshalJSON() ([]byte, error) {
	type alias FeedThreadgate
	return lexutil.MarshalObject(alias(t), t.Extra)
}

var threadgateRules = lexutil.NewFamily("app.bsky.feed.threadgate#allow").
	Register("app.bsky.feed.threadgate#mentionRule", &FeedThreadgate_MentionRule{}).
	Register("app.bsky.feed.threadgate#followerRule", &FeedThreadgate_FollowerRule{}).
	Register("app.bsky.feed.threadgate#followingRule", &FeedThreadgate_FollowingRule{}).
	Register("app.bsky.feed.threadgate#listRule", &FeedThreadgate_ListRule{})

type FeedThreadgate_Allow_Elem struct {
	Value lexutil.Variant
}

func (t FeedThreadgate_Allow_Elem) MarshalJSON() ([]byte, error) {
	return lexutil.MarshalVariant(t.Value)
}

func (t *FeedThreadgate_Allow_Elem) UnmarshalJSON(b []byte) error {
	return threadgateRules.UnmarshalInto(b, &t.Value)
}

// Allow replies from actors mentioned in your post.
type FeedThreadgate_MentionRule struct {
	LexiconTypeID string       `json:"$type,const=app.bsky.feed.threadgate#mentionRule,omitempty"`
	Extra         *data.Object `json:"-"`
}

func (t FeedThreadgate_MentionRule) LexiconType() string {
	return "app.bsky.feed.threadgate#mentionRule"
}

func (t *FeedThreadgate_MentionRule) UnmarshalJSON(b []byte) error {
	type alias FeedThreadgate_MentionRule
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t FeedThreadgate_MentionRule) MarshalJSON() ([]byte, error) {
	type alias FeedThreadgate_MentionRule
	return lexutil.MarshalObject(alias(t), t.Extra)
}

// Allow replies from actors who follow you.
type FeedThreadgate_FollowerRule struct {
	LexiconTypeID string       `json:"$type,const=app.bsky.feed.threadgate#followerRule,omitempty"`
	Extra         *data.Object `json:"-"`
}

func (t FeedThreadgate_FollowerRule) LexiconType() string {
	return "app.bsky.feed.threadgate#followerRule"
}

func (t *FeedThreadgate_FollowerRule) UnmarshalJSON(b []byte) error {
	type alias FeedThreadgate_FollowerRule
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t FeedThreadgate_FollowerRule) MarshalJSON() ([]byte, error) {
	type alias FeedThreadgate_FollowerRule
	return lexutil.MarshalObject(alias(t), t.Extra)
}

// Allow replies from actors you follow.
type FeedThreadgate_FollowingRule struct {
	LexiconTypeID string       `json:"$type,const=app.bsky.feed.threadgate#followingRule,omitempty"`
	Extra         *data.Object `json:"-"`
}

func (t FeedThreadgate_FollowingRule) LexiconType() string {
	return "app.bsky.feed.threadgate#followingRule"
}

func (t *FeedThreadgate_FollowingRule) UnmarshalJSON(b []byte) error {
	type alias FeedThreadgate_FollowingRule
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t FeedThreadgate_FollowingRule) MarshalJSON() ([]byte, error) {
	type alias FeedThreadgate_FollowingRule
	return lexutil.MarshalObject(alias(t), t.Extra)
}

// Allow replies from actors on a list.
type FeedThreadgate_ListRule struct {
	LexiconTypeID string       `json:"$type,const=app.bsky.feed.threadgate#listRule,omitempty"`
	List          syntax.ATURI `json:"list"`
	Extra         *data.Object `json:"-"`
}

func (t FeedThreadgate_ListRule) LexiconType() string {
	return "app.bsky.feed.threadgate#listRule"
}

func (t *FeedThreadgate_ListRule) UnmarshalJSON(b []byte) error {
	type alias FeedThreadgate_ListRule
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t FeedThreadgate_ListRule) MarshalJSON() ([]byte, error) {
	type alias FeedThreadgate_ListRule
	return lexutil.MarshalObject(alias(t), t.Extra)
}
