package atproto

import (
	"testing"

	lexutil "github.com/bluesky-social/lexcodec/lex/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelJSON(t *testing.T) {
	assert := assert.New(t)

	doc := `{
	  "ver": 1,
	  "src": "did:plc:ar7c4by46qjdydhdevvrndac",
	  "uri": "at://did:plc:ewvi7nxzyoun6zhxrhs64oiz/app.bsky.feed.post/3l7kfbq5hdk2a",
	  "val": "porn",
	  "neg": true,
	  "cts": "2024-11-05T18:24:40.000Z",
	  "exp": "2025-11-05T18:24:40.000Z",
	  "sig": {"$bytes": "c2lnbmF0dXJl"}
	}`
	var l LabelDefs_Label
	require.NoError(t, lexutil.Decode([]byte(doc), &l))
	assert.Equal("porn", l.Val)
	assert.True(*l.Neg)
	assert.Equal([]byte("signature"), []byte(l.Sig))
	assert.Nil(l.Cid)
	assert.True(l.Exp.After(l.Cts.Time))

	out, err := lexutil.Encode(l)
	require.NoError(t, err)
	assert.JSONEq(doc, string(out))

	// label subjects may be bare DIDs
	require.NoError(t, lexutil.Decode([]byte(`{"src":"did:plc:ar7c4by46qjdydhdevvrndac","uri":"did:plc:ewvi7nxzyoun6zhxrhs64oiz","val":"spam","cts":"2024-11-05T18:24:40Z"}`), &l))
	assert.Equal("did:plc:ewvi7nxzyoun6zhxrhs64oiz", l.Uri)
	assert.Equal("2024-11-05T18:24:40.000Z", l.Cts.String())
}

func TestSelfLabels(t *testing.T) {
	assert := assert.New(t)

	var sl LabelDefs_SelfLabels
	require.NoError(t, lexutil.Decode([]byte(`{"values":[{"val":"nudity"},{"val":"graphic-media","extra":1}]}`), &sl))
	require.Len(t, sl.Values, 2)
	assert.True(sl.Values[1].Extra.Has("extra"))

	var derr *lexutil.DecodeError
	err := lexutil.Decode([]byte(`{"values":[{"val":"nudity"},{}]}`), &sl)
	require.ErrorAs(t, err, &derr)
	assert.Equal(lexutil.KindMissingRequiredField, derr.Kind)
	assert.Equal("values[1].val", derr.Path)
}
