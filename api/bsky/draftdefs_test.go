package bsky

import (
	"testing"
	"time"

	"github.com/bluesky-social/lexcodec/atproto/syntax"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftThreadgateAllow(t *testing.T) {
	assert := assert.New(t)

	doc := `{"posts":[{"text":"a draft"}],"threadgateAllow":[{"$type":"app.bsky.feed.threadgate#followingRule"}]}`
	var draft DraftDefs_Draft
	require.NoError(t, lexutil.Decode([]byte(doc), &draft))

	require.Len(t, draft.ThreadgateAllow, 1)
	assert.IsType(&FeedThreadgate_FollowingRule{}, draft.ThreadgateAllow[0].Value)
	require.Len(t, draft.Posts, 1)
	assert.Equal("a draft", draft.Posts[0].Text)
	assert.Nil(draft.Langs)

	out, err := lexutil.Encode(draft)
	require.NoError(t, err)
	assert.JSONEq(doc, string(out))

	// publishing the draft carries the rules over to a threadgate record
	post := syntax.ATURI("at://did:plc:ewvi7nxzyoun6zhxrhs64oiz/app.bsky.feed.post/3l7kfbq5hdk2a")
	gate := draft.Threadgate(post, time.Date(2024, 11, 5, 18, 24, 31, 500_000_000, time.UTC))
	require.NotNil(t, gate)
	out, err = lexutil.Encode(gate)
	require.NoError(t, err)
	assert.JSONEq(`{"$type":"app.bsky.feed.threadgate","post":"at://did:plc:ewvi7nxzyoun6zhxrhs64oiz/app.bsky.feed.post/3l7kfbq5hdk2a","createdAt":"2024-11-05T18:24:31.500Z","allow":[{"$type":"app.bsky.feed.threadgate#followingRule"}]}`, string(out))

	var noRules DraftDefs_Draft
	require.NoError(t, lexutil.Decode([]byte(`{"posts":[{"text":"open"}]}`), &noRules))
	assert.Nil(noRules.Threadgate(post, time.Now()))

	var nobody DraftDefs_Draft
	require.NoError(t, lexutil.Decode([]byte(`{"posts":[{"text":"closed"}],"threadgateAllow":[]}`), &nobody))
	gate = nobody.Threadgate(post, time.Now())
	require.NotNil(t, gate)
	assert.False(gate.AllowsAnyone())
}

func TestGetDrafts(t *testing.T) {
	assert := assert.New(t)

	doc := `{
	  "cursor": "abc",
	  "drafts": [
	    {
	      "id": "3l7kfdzz4vs2y",
	      "createdAt": "2024-11-05T18:00:00.000Z",
	      "updatedAt": "2024-11-05T18:05:00.000Z",
	      "draft": {
	        "langs": ["en"],
	        "posts": [
	          {
	            "text": "with images",
	            "labels": {"$type": "com.atproto.label.defs#selfLabels", "values": [{"val": "nudity"}]},
	            "embedImages": [{"localRef": {"path": "file:///photos/1.jpg"}, "alt": "first"}],
	            "embedRecords": [{"record": {"uri": "at://did:plc:44ybard66vv44zksje25o7dz/app.bsky.feed.post/3l7kfcmxzwc2b", "cid": "bafyreigbn6qwkb2oxc4owsmznyvfew7q6ksofjkcdz2btoys7425f7kfhq"}}],
	            "embedVideos": [{"localRef": {"path": "file:///videos/1.mp4"}}]
	          },
	          {"text": "second post in thread", "embedExternals": [{"uri": "https://example.com"}]}
	        ],
	        "threadgateAllow": [
	          {"$type": "app.bsky.feed.threadgate#mentionRule"},
	          {"$type": "app.bsky.feed.threadgate#listRule", "list": "at://did:plc:ewvi7nxzyoun6zhxrhs64oiz/app.bsky.graph.list/3l7kfdzz4vs2y"}
	        ]
	      }
	    }
	  ]
	}`
	var out DraftGetDrafts_Output
	require.NoError(t, lexutil.Decode([]byte(doc), &out))
	require.Len(t, out.Drafts, 1)
	view := out.Drafts[0]
	assert.Equal("3l7kfdzz4vs2y", view.Id.String())
	require.Len(t, view.Draft.Posts, 2)
	first := view.Draft.Posts[0]
	assert.Equal("file:///photos/1.jpg", first.EmbedImages[0].LocalRef.Path)
	assert.True(first.Extra.Has("embedVideos"))
	assert.IsType(&FeedThreadgate_ListRule{}, view.Draft.ThreadgateAllow[1].Value)

	enc, err := lexutil.Encode(out)
	require.NoError(t, err)
	assert.JSONEq(doc, string(enc))
}
