package bsky

import (
	"errors"
	"testing"

	lexutil "github.com/bluesky-social/lexcodec/lex/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreadgateAllowAbsentVersusEmpty(t *testing.T) {
	assert := assert.New(t)

	absentDoc := `{"$type":"app.bsky.feed.threadgate","post":"at://did:plc:ewvi7nxzyoun6zhxrhs64oiz/app.bsky.feed.post/3l7kfbq5hdk2a","createdAt":"2024-11-05T18:24:31.500Z"}`
	emptyDoc := `{"$type":"app.bsky.feed.threadgate","post":"at://did:plc:ewvi7nxzyoun6zhxrhs64oiz/app.bsky.feed.post/3l7kfbq5hdk2a","createdAt":"2024-11-05T18:24:31.500Z","allow":[]}`

	var absent, empty FeedThreadgate
	require.NoError(t, lexutil.Decode([]byte(absentDoc), &absent))
	require.NoError(t, lexutil.Decode([]byte(emptyDoc), &empty))

	assert.Nil(absent.Allow)
	assert.True(absent.AllowsAnyone())
	assert.NotNil(empty.Allow)
	assert.Len(empty.Allow, 0)
	assert.False(empty.AllowsAnyone())
	assert.False(lexutil.Equal(absent, empty))

	out, err := lexutil.Encode(absent)
	require.NoError(t, err)
	assert.JSONEq(absentDoc, string(out))
	out, err = lexutil.Encode(empty)
	require.NoError(t, err)
	assert.JSONEq(emptyDoc, string(out))
}

func TestThreadgateRules(t *testing.T) {
	assert := assert.New(t)

	doc := `{
	  "$type": "app.bsky.feed.threadgate",
	  "post": "at://did:plc:ewvi7nxzyoun6zhxrhs64oiz/app.bsky.feed.post/3l7kfbq5hdk2a",
	  "createdAt": "2024-11-05T18:24:31.500Z",
	  "allow": [
	    {"$type": "app.bsky.feed.threadgate#mentionRule"},
	    {"$type": "app.bsky.feed.threadgate#listRule", "list": "at://did:plc:ewvi7nxzyoun6zhxrhs64oiz/app.bsky.graph.list/3l7kfdzz4vs2y"},
	    {"$type": "app.bsky.feed.threadgate#verifiedRule", "minAge": 30},
	    {"$type": "app.bsky.feed.threadgate#followerRule", "note": "added later"}
	  ],
	  "hiddenReplies": ["at://did:plc:44ybard66vv44zksje25o7dz/app.bsky.feed.post/3l7kfcmxzwc2b"]
	}`
	var gate FeedThreadgate
	require.NoError(t, lexutil.Decode([]byte(doc), &gate))
	require.Len(t, gate.Allow, 4)

	assert.IsType(&FeedThreadgate_MentionRule{}, gate.Allow[0].Value)
	listRule, ok := gate.Allow[1].Value.(*FeedThreadgate_ListRule)
	require.True(t, ok)
	coll, err := listRule.List.Collection()
	require.NoError(t, err)
	assert.Equal("app.bsky.graph.list", coll.String())

	unk, ok := gate.Allow[2].Value.(*lexutil.UnknownVariant)
	require.True(t, ok)
	assert.Equal("app.bsky.feed.threadgate#verifiedRule", unk.LexiconType())

	follower, ok := gate.Allow[3].Value.(*FeedThreadgate_FollowerRule)
	require.True(t, ok)
	assert.True(follower.Extra.Has("note"))
	require.Len(t, gate.HiddenReplies, 1)

	out, err := lexutil.Encode(gate)
	require.NoError(t, err)
	assert.JSONEq(doc, string(out))

	_, err = lexutil.Encode(FeedThreadgate{Allow: []*FeedThreadgate_Allow_Elem{{}}})
	assert.Error(err)
}

func TestThreadgateErrors(t *testing.T) {
	assert := assert.New(t)

	var gate FeedThreadgate
	err := lexutil.Decode([]byte(`{"post":"at://did:plc:ewvi7nxzyoun6zhxrhs64oiz/app.bsky.feed.post/3l7kfbq5hdk2a","createdAt":"2024-11-05T18:24:31.500Z","allow":[{"$type":"app.bsky.feed.threadgate#mentionRule"},{"$type":"app.bsky.feed.threadgate#listRule","list":"not-a-uri"}]}`), &gate)
	var de *lexutil.DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(lexutil.KindMalformedIdentifier, de.Kind)
	assert.Equal("allow[1].list", de.Path)
	assert.Equal("not-a-uri", de.Raw)
	assert.Nil(gate.Allow)

	err = lexutil.Decode([]byte(`{"post":"at://did:plc:ewvi7nxzyoun6zhxrhs64oiz/app.bsky.feed.post/3l7kfbq5hdk2a","createdAt":"2024-11-05T18:24:31.500Z","allow":[{"list":"at://did:plc:ewvi7nxzyoun6zhxrhs64oiz/app.bsky.graph.list/3l7kfdzz4vs2y"}]}`), &gate)
	require.True(t, errors.As(err, &de))
	assert.Equal(lexutil.KindMissingRequiredField, de.Kind)
	assert.Equal("allow[0].$type", de.Path)
}

func TestThreadgateNulls(t *testing.T) {
	assert := assert.New(t)

	const post = `"post":"at://did:plc:ewvi7nxzyoun6zhxrhs64oiz/app.bsky.feed.post/3l7kfbq5hdk2a"`
	cases := map[string]string{
		"createdAt": `{` + post + `,"createdAt":null}`,
		"post":      `{"post":null,"createdAt":"2024-11-05T18:24:31.500Z"}`,
		"allow[1]":  `{` + post + `,"createdAt":"2024-11-05T18:24:31.500Z","allow":[{"$type":"app.bsky.feed.threadgate#followingRule"},null]}`,
	}
	for path, doc := range cases {
		var gate FeedThreadgate
		err := lexutil.Decode([]byte(doc), &gate)
		var de *lexutil.DecodeError
		require.True(t, errors.As(err, &de), path)
		assert.Equal(lexutil.KindTypeMismatch, de.Kind, path)
		assert.Equal(path, de.Path)
		assert.Nil(gate.Allow)
	}

	// a null allow list is the same as leaving it out
	var gate FeedThreadgate
	require.NoError(t, lexutil.Decode([]byte(`{`+post+`,"createdAt":"2024-11-05T18:24:31.500Z","allow":null}`), &gate))
	assert.True(gate.AllowsAnyone())
}
