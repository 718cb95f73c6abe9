package bsky

import (
	comatproto "github.com/bluesky-social/lexcodec/api/atproto"
	"github.com/bluesky-social/lexcodec/atproto/data"
	"github.com/bluesky-social/lexcodec/atproto/syntax"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: app.bsky.feed.defs

// FeedDefs_PostView is a "postView" in the app.bsky.feed.defs schema.
type FeedDefs_PostView struct {
	LexiconTypeID string                        `json:"$type,const=app.bsky.feed.defs#postView,omitempty"`
	Author        *ActorDefs_ProfileViewBasic   `json:"author"`
	Cid           syntax.CID                    `json:"cid"`
	Embed         *FeedDefs_PostView_Embed      `json:"embed,omitempty"`
	IndexedAt     lexutil.LexDatetime           `json:"indexedAt"`
	Labels        []*comatproto.LabelDefs_Label `json:"labels,omitzero"`
	LikeCount     *int64                        `json:"likeCount,omitempty"`
	QuoteCount    *int64                        `json:"quoteCount,omitempty"`
	Record        *lexutil.LexiconTypeDecoder   `json:"record"`
	ReplyCount    *int64                        `json:"replyCount,omitempty"`
	RepostCount   *int64                        `json:"repostCount,omitempty"`
	Threadgate    *FeedDefs_ThreadgateView      `json:"threadgate,omitempty"`
	Uri           syntax.ATURI                  `json:"uri"`
	Viewer        *FeedDefs_ViewerState         `json:"viewer,omitempty"`
	Extra         *data.Object                  `json:"-"`
}

func (t FeedDefs_PostView) LexiconType() string {
	return "app.bsky.feed.defs#postView"
}

func (t *FeedDefs_PostView) UnmarshalJSON(b []byte) error {
	type alias FeedDefs_PostView
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t FeedDefs_PostView) MarshalJSON() ([]byte, error) {
	type alias FeedDefs_PostView
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type FeedDefs_PostView_Embed struct {
	Value lexutil.Variant
}

func (t FeedDefs_PostView_Embed) MarshalJSON() ([]byte, error) {
	return lexutil.MarshalVariant(t.Value)
}

func (t *FeedDefs_PostView_Embed) UnmarshalJSON(b []byte) error {
	return embedViewFamily.UnmarshalInto(b, &t.Value)
}

// FeedDefs_ViewerState is a "viewerState" in the app.bsky.feed.defs schema.
//
// Metadata about the requesting account's relationship with the subject content. Only has meaningful content for authed requests.
type FeedDefs_ViewerState struct {
	EmbeddingDisabled *bool         `json:"embeddingDisabled,omitempty"`
	Like              *syntax.ATURI `json:"like,omitempty"`
	Pinned            *bool         `json:"pinned,omitempty"`
	ReplyDisabled     *bool         `json:"replyDisabled,omitempty"`
	Repost            *syntax.ATURI `json:"repost,omitempty"`
	ThreadMuted       *bool         `json:"threadMuted,omitempty"`
	Extra             *data.Object  `json:"-"`
}

func (t *FeedDefs_ViewerState) UnmarshalJSON(b []byte) error {
	type alias FeedDefs_ViewerState
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t FeedDefs_ViewerState) MarshalJSON() ([]byte, error) {
	type alias FeedDefs_ViewerState
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type FeedDefs_ThreadgateView struct {
	Cid    *syntax.CID                 `json:"cid,omitempty"`
	Record *lexutil.LexiconTypeDecoder `json:"record,omitempty"`
	Uri    *syntax.ATURI               `json:"uri,omitempty"`
	Extra  *data.Object                `json:"-"`
}

func (t *FeedDefs_ThreadgateView) UnmarshalJSON(b []byte) error {
	type alias FeedDefs_ThreadgateView
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t FeedDefs_ThreadgateView) MarshalJSON() ([]byte, error) {
	type alias FeedDefs_ThreadgateView
	return lexutil.MarshalObject(alias(t), t.Extra)
}

// FeedDefs_FeedViewPost is a "feedViewPost" in the app.bsky.feed.defs schema.
type FeedDefs_FeedViewPost struct {
	// feedContext: Context provided by feed generator that may be passed back alongside interactions.
	FeedContext *string                       `json:"feedContext,omitempty"`
	Post        *FeedDefs_PostView            `json:"post"`
	Reason      *FeedDefs_FeedViewPost_Reason `json:"reason,omitempty"`
	Reply       *FeedDefs_ReplyRef            `json:"reply,omitempty"`
	Extra       *data.Object                  `json:"-"`
}

func (t *FeedDefs_FeedViewPost) UnmarshalJSON(b []byte) error {
	type alias FeedDefs_FeedViewPost
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t FeedDefs_FeedViewPost) MarshalJSON() ([]byte, error) {
	type alias FeedDefs_FeedViewPost
	return lexutil.MarshalObject(alias(t), t.Extra)
}

var feedViewPostReason = lexutil.NewFamily("app.bsky.feed.defs#feedViewPost.reason").
	Register("app.bsky.feed.defs#reasonRepost", &FeedDefs_ReasonRepost{}).
	Register("app.bsky.feed.defs#reasonPin", &FeedDefs_ReasonPin{})

type FeedDefs_FeedViewPost_Reason struct {
	Value lexutil.Variant
}

func (t FeedDefs_FeedViewPost_Reason) MarshalJSON() ([]byte, error) {
	return lexutil.MarshalVariant(t.Value)
}

func (t *FeedDefs_FeedViewPost_Reason) UnmarshalJSON(b []byte) error {
	return feedViewPostReason.UnmarshalInto(b, &t.Value)
}

type FeedDefs_ReasonRepost struct {
	LexiconTypeID string                      `json:"$type,const=app.bsky.feed.defs#reasonRepost,omitempty"`
	By            *ActorDefs_ProfileViewBasic `json:"by"`
	Cid           *syntax.CID                 `json:"cid,omitempty"`
	IndexedAt     lexutil.LexDatetime         `json:"indexedAt"`
	Uri           *syntax.ATURI               `json:"uri,omitempty"`
	Extra         *data.Object                `json:"-"`
}

func (t FeedDefs_ReasonRepost) LexiconType() string {
	return "app.bsky.feed.defs#reasonRepost"
}

func (t *FeedDefs_ReasonRepost) UnmarshalJSON(b []byte) error {
	type alias FeedDefs_ReasonRepost
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t FeedDefs_ReasonRepost) MarshalJSON() ([]byte, error) {
	type alias FeedDefs_ReasonRepost
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type FeedDefs_ReasonPin struct {
	LexiconTypeID string       `json:"$type,const=app.bsky.feed.defs#reasonPin,omitempty"`
	Extra         *data.Object `json:"-"`
}

func (t FeedDefs_ReasonPin) LexiconType() string {
	return "app.bsky.feed.defs#reasonPin"
}

func (t *FeedDefs_ReasonPin) UnmarshalJSON(b []byte) error {
	type alias FeedDefs_ReasonPin
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t FeedDefs_ReasonPin) MarshalJSON() ([]byte, error) {
	type alias FeedDefs_ReasonPin
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type FeedDefs_ReplyRef struct {
	// grandparentAuthor: When parent is a reply to another post, this is the author of that post.
	GrandparentAuthor *ActorDefs_ProfileViewBasic `json:"grandparentAuthor,omitempty"`
	Parent            *FeedDefs_ReplyRef_Parent   `json:"parent"`
	Root              *FeedDefs_ReplyRef_Root     `json:"root"`
	Extra             *data.Object                `json:"-"`
}

func (t *FeedDefs_ReplyRef) UnmarshalJSON(b []byte) error {
	type alias FeedDefs_ReplyRef
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t FeedDefs_ReplyRef) MarshalJSON() ([]byte, error) {
	type alias FeedDefs_ReplyRef
	return lexutil.MarshalObject(alias(t), t.Extra)
}

var feedReplyRefPost = lexutil.NewFamily("app.bsky.feed.defs#replyRef.post").
	Register("app.bsky.feed.defs#postView", &FeedDefs_PostView{}).
	Register("app.bsky.feed.defs#notFoundPost", &FeedDefs_NotFoundPost{}).
	Register("app.bsky.feed.defs#blockedPost", &FeedDefs_BlockedPost{})

type FeedDefs_ReplyRef_Parent struct {
	Value lexutil.Variant
}

func (t FeedDefs_ReplyRef_Parent) MarshalJSON() ([]byte, error) {
	return lexutil.MarshalVariant(t.Value)
}

func (t *FeedDefs_ReplyRef_Parent) UnmarshalJSON(b []byte) error {
	return feedReplyRefPost.UnmarshalInto(b, &t.Value)
}

type FeedDefs_ReplyRef_Root struct {
	Value lexutil.Variant
}

func (t FeedDefs_ReplyRef_Root) MarshalJSON() ([]byte, error) {
	return lexutil.MarshalVariant(t.Value)
}

func (t *FeedDefs_ReplyRef_Root) UnmarshalJSON(b []byte) error {
	return feedReplyRefPost.UnmarshalInto(b, &t.Value)
}

// FeedDefs_ThreadViewPost is a "threadViewPost" in the app.bsky.feed.defs schema.
type FeedDefs_ThreadViewPost struct {
	LexiconTypeID string                                  `json:"$type,const=app.bsky.feed.defs#threadViewPost,omitempty"`
	Parent        *FeedDefs_ThreadViewPost_Parent         `json:"parent,omitempty"`
	Post          *FeedDefs_PostView                      `json:"post"`
	Replies       []*FeedDefs_ThreadViewPost_Replies_Elem `json:"replies,omitzero"`
	Extra         *data.Object                            `json:"-"`
}

func (t FeedDefs_ThreadViewPost) LexiconType() string {
	return "app.bsky.feed.defs#threadViewPost"
}

func (t *FeedDefs_ThreadViewPost) UnmarshalJSON(b []byte) error {
	type alias FeedDefs_ThreadViewPost
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t FeedDefs_ThreadViewPost) MarshalJSON() ([]byte, error) {
	type alias FeedDefs_ThreadViewPost
	return lexutil.MarshalObject(alias(t), t.Extra)
}

var feedThreadPost = lexutil.NewFamily("app.bsky.feed.defs#threadViewPost.post").
	Register("app.bsky.feed.defs#threadViewPost", &FeedDefs_ThreadViewPost{}).
	Register("app.bsky.feed.defs#notFoundPost", &FeedDefs_NotFoundPost{}).
	Register("app.bsky.feed.defs#blockedPost", &FeedDefs_BlockedPost{})

type FeedDefs_ThreadViewPost_Parent struct {
	Value lexutil.Variant
}

func (t FeedDefs_ThreadViewPost_Parent) MarshalJSON() ([]byte, error) {
	return lexutil.MarshalVariant(t.Value)
}

func (t *FeedDefs_ThreadViewPost_Parent) UnmarshalJSON(b []byte) error {
	return feedThreadPost.UnmarshalInto(b, &t.Value)
}

type FeedDefs_ThreadViewPost_Replies_Elem struct {
	Value lexutil.Variant
}

func (t FeedDefs_ThreadViewPost_Replies_Elem) MarshalJSON() ([]byte, error) {
	return lexutil.MarshalVariant(t.Value)
}

func (t *FeedDefs_ThreadViewPost_Replies_Elem) UnmarshalJSON(b []byte) error {
	return feedThreadPost.UnmarshalInto(b, &t.Value)
}

type FeedDefs_NotFoundPost struct {
	LexiconTypeID string       `json:"$type,const=app.bsky.feed.defs#notFoundPost,omitempty"`
	NotFound      bool         `json:"notFound"`
	Uri           syntax.ATURI `json:"uri"`
	Extra         *data.Object `json:"-"`
}

func (t FeedDefs_NotFoundPost) LexiconType() string {
	return "app.bsky.feed.defs#notFoundPost"
}

func (t *FeedDefs_NotFoundPost) UnmarshalJSON(b []byte) error {
	type alias FeedDefs_NotFoundPost
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t FeedDefs_NotFoundPost) MarshalJSON() ([]byte, error) {
	type alias FeedDefs_NotFoundPost
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type FeedDefs_BlockedPost struct {
	LexiconTypeID string                  `json:"$type,const=app.bsky.feed.defs#blockedPost,omitempty"`
	Author        *FeedDefs_BlockedAuthor `json:"author"`
	Blocked       bool                    `json:"blocked"`
	Uri           syntax.ATURI            `json:"uri"`
	Extra         *data.Object            `json:"-"`
}

func (t FeedDefs_BlockedPost) LexiconType() string {
	return "app.bsky.feed.defs#blockedPost"
}

func (t *FeedDefs_BlockedPost) UnmarshalJSON(b []byte) error {
	type alias FeedDefs_BlockedPost
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t FeedDefs_BlockedPost) MarshalJSON() ([]byte, error) {
	type alias FeedDefs_BlockedPost
	return lexutil.MarshalObject(alias(t), t.Extra)
}

type FeedDefs_BlockedAuthor struct {
	Did    syntax.DID             `json:"did"`
	Viewer *ActorDefs_ViewerState `json:"viewer,omitempty"`
	Extra  *data.Object           `json:"-"`
}

func (t *FeedDefs_BlockedAuthor) UnmarshalJSON(b []byte) error {
	type alias FeedDefs_BlockedAuthor
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t FeedDefs_BlockedAuthor) MarshalJSON() ([]byte, error) {
	type alias FeedDefs_BlockedAuthor
	return lexutil.MarshalObject(alias(t), t.Extra)
}
