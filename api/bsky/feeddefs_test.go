package bsky

import (
	"testing"

	lexutil "github.com/bluesky-social/lexcodec/lex/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeline(t *testing.T) {
	assert := assert.New(t)
	raw := readFixture(t, "timeline.json")

	var tl FeedGetTimeline_Output
	require.NoError(t, lexutil.Decode(raw, &tl))
	require.Len(t, tl.Feed, 3)

	// repost of a post with an image embed
	first := tl.Feed[0]
	repost, ok := first.Reason.Value.(*FeedDefs_ReasonRepost)
	require.True(t, ok)
	assert.Equal("bob.example.com", repost.By.Handle.String())
	rec, ok := first.Post.Record.Val.(*FeedPost)
	require.True(t, ok)
	assert.Equal("look at this cat", rec.Text)
	imagesView, ok := first.Post.Embed.Value.(*EmbedImages_View)
	require.True(t, ok)
	assert.Equal("https://cdn.example.com/img/full/cat.jpg", imagesView.Images[0].Fullsize)
	require.Len(t, first.Post.Labels, 1)
	assert.Equal("cute", first.Post.Labels[0].Val)
	assert.Equal(int64(0), *first.Post.QuoteCount)
	assert.NotNil(first.Post.Author.Labels)
	assert.True(first.Post.Author.Extra.Has("associated"))

	// reply with a quote embed
	second := tl.Feed[1]
	root, ok := second.Reply.Root.Value.(*FeedDefs_PostView)
	require.True(t, ok)
	assert.Equal("alice.example.com", root.Author.Handle.String())
	parent, ok := second.Reply.Parent.Value.(*FeedDefs_NotFoundPost)
	require.True(t, ok)
	assert.True(parent.NotFound)
	recordView, ok := second.Post.Embed.Value.(*EmbedRecord_View)
	require.True(t, ok)
	viewRecord, ok := recordView.Record.Value.(*EmbedRecord_ViewRecord)
	require.True(t, ok)
	quoted, ok := viewRecord.Value.Val.(*FeedPost)
	require.True(t, ok)
	assert.Equal("older post", quoted.Text)
	require.Len(t, viewRecord.Embeds, 1)
	assert.IsType(&EmbedExternal_View{}, viewRecord.Embeds[0].Value)
	assert.Equal("t-following", *second.FeedContext)

	// unknown record and embed types
	third := tl.Feed[2]
	unkRecord, ok := third.Post.Record.Val.(*lexutil.UnknownVariant)
	require.True(t, ok)
	assert.Equal("com.example.gallery.item", unkRecord.Type)
	unkEmbed, ok := third.Post.Embed.Value.(*lexutil.UnknownVariant)
	require.True(t, ok)
	assert.Equal("com.example.gallery.defs#view", unkEmbed.Type)
	assert.IsType(&FeedDefs_ReasonPin{}, third.Reason.Value)
	assert.Equal("handle.invalid", third.Post.Author.Handle.String())

	out, err := lexutil.Encode(tl)
	require.NoError(t, err)
	assert.JSONEq(string(raw), string(out))

	var again FeedGetTimeline_Output
	require.NoError(t, lexutil.Decode(out, &again))
	assert.True(lexutil.Equal(tl, again))
}

func TestPostThread(t *testing.T) {
	assert := assert.New(t)
	raw := readFixture(t, "thread.json")

	var resp FeedGetPostThread_Output
	require.NoError(t, lexutil.Decode(raw, &resp))

	thread, ok := resp.Thread.Value.(*FeedDefs_ThreadViewPost)
	require.True(t, ok)
	parent, ok := thread.Parent.Value.(*FeedDefs_ThreadViewPost)
	require.True(t, ok)
	grandparent, ok := parent.Parent.Value.(*FeedDefs_BlockedPost)
	require.True(t, ok)
	assert.True(grandparent.Blocked)
	assert.True(*grandparent.Author.Viewer.BlockedBy)

	require.Len(t, thread.Replies, 3)
	reply, ok := thread.Replies[0].Value.(*FeedDefs_ThreadViewPost)
	require.True(t, ok)
	assert.NotNil(reply.Replies)
	assert.Len(reply.Replies, 0)
	assert.Nil(reply.Parent)
	assert.IsType(&FeedDefs_NotFoundPost{}, thread.Replies[1].Value)
	assert.IsType(&lexutil.UnknownVariant{}, thread.Replies[2].Value)

	gate, ok := resp.Threadgate.Record.Val.(*FeedThreadgate)
	require.True(t, ok)
	assert.IsType(&FeedThreadgate_FollowingRule{}, gate.Allow[0].Value)
	assert.True(resp.Threadgate.Extra.Has("lists"))

	out, err := lexutil.Encode(resp)
	require.NoError(t, err)
	assert.JSONEq(string(raw), string(out))
}
