package bsky

import (
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	comatproto "github.com/bluesky-social/lexcodec/api/atproto"
	"github.com/bluesky-social/lexcodec/atproto/data"
	"github.com/bluesky-social/lexcodec/atproto/syntax"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) []byte {
	b, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return b
}

func TestFeedPostFull(t *testing.T) {
	assert := assert.New(t)
	raw := readFixture(t, "feedpost_full.json")

	var post FeedPost
	require.NoError(t, lexutil.Decode(raw, &post))

	assert.Equal("2024-11-05T18:24:31.123Z", post.CreatedAt.String())
	assert.Equal([]syntax.Language{"en", "pt-BR"}, post.Langs)
	assert.Equal([]string{"cats"}, post.Tags)

	require.Len(t, post.Facets, 3)
	mention, ok := post.Facets[0].Features[0].Value.(*RichtextFacet_Mention)
	require.True(t, ok)
	assert.Equal(syntax.DID("did:plc:ewvi7nxzyoun6zhxrhs64oiz"), mention.Did)
	assert.Equal(int64(6), post.Facets[0].Index.ByteStart)
	link, ok := post.Facets[1].Features[0].Value.(*RichtextFacet_Link)
	require.True(t, ok)
	assert.Equal("https://example.com", link.Uri)
	require.Len(t, post.Facets[2].Features, 2)
	assert.IsType(&RichtextFacet_Tag{}, post.Facets[2].Features[0].Value)
	unk, ok := post.Facets[2].Features[1].Value.(*lexutil.UnknownVariant)
	require.True(t, ok)
	assert.Equal("app.bsky.richtext.facet#highlight", unk.Type)

	require.NotNil(t, post.Reply)
	assert.Equal("bafyreiamthap7f5ltwiyaonpd44qochkdyfdf7xnlrbunezi7yvvlhesma", post.Reply.Root.Cid.String())
	rkey, err := post.Reply.Parent.Uri.RecordKey()
	require.NoError(t, err)
	assert.Equal("3l7kfcmxzwc2b", rkey.String())

	require.NotNil(t, post.Embed)
	rwm, ok := post.Embed.Value.(*EmbedRecordWithMedia)
	require.True(t, ok)
	assert.Equal("at://did:plc:44ybard66vv44zksje25o7dz/app.bsky.feed.post/3l7jzmkf4dc2c", rwm.Record.Record.Uri.String())
	images, ok := rwm.Media.Value.(*EmbedImages)
	require.True(t, ok)
	require.Len(t, images.Images, 1)
	assert.Equal("a cat", images.Images[0].Alt)
	assert.Equal("image/jpeg", images.Images[0].Image.MimeType)
	assert.Equal(int64(123456), images.Images[0].Image.Size)
	assert.Equal(int64(1200), images.Images[0].AspectRatio.Width)

	require.NotNil(t, post.Labels)
	selfLabels, ok := post.Labels.Value.(*comatproto.LabelDefs_SelfLabels)
	require.True(t, ok)
	assert.Equal("graphic-media", selfLabels.Values[0].Val)

	via, ok := post.Extra.GetString("via")
	assert.True(ok)
	assert.Equal("com.example.client", via)

	out, err := lexutil.Encode(post)
	require.NoError(t, err)
	assert.JSONEq(string(raw), string(out))

	var again FeedPost
	require.NoError(t, lexutil.Decode(out, &again))
	assert.True(lexutil.Equal(post, again))

	rec, err := lexutil.DecodeRecord(raw)
	require.NoError(t, err)
	assert.IsType(&FeedPost{}, rec)
	assert.True(lexutil.Equal(rec, post))
}

// an unknown top-level property must survive decode and encode
func TestFeedPostUnknownProperty(t *testing.T) {
	assert := assert.New(t)

	raw := []byte(`{"$type":"app.bsky.feed.post","text":"hi","createdAt":"2024-11-05T18:24:31.123Z","bridgyOriginalUrl":"https://example.social/@bob/123","score":{"a":[1,2,3]}}`)
	var post FeedPost
	require.NoError(t, lexutil.Decode(raw, &post))
	assert.Equal([]string{"bridgyOriginalUrl", "score"}, post.Extra.Keys())

	out, err := lexutil.Encode(post)
	require.NoError(t, err)
	obj, err := data.ParseObject(out)
	require.NoError(t, err)
	assert.True(obj.Has("bridgyOriginalUrl"))
	assert.True(obj.Has("score"))
	assert.JSONEq(string(raw), string(out))

	// the same post without the unknown properties is not equal
	plain := post
	plain.Extra = nil
	assert.False(lexutil.Equal(post, plain))

	// changing a known field keeps the unknown ones
	edited := post
	edited.Text = "edited"
	out, err = lexutil.Encode(edited)
	require.NoError(t, err)
	assert.JSONEq(`{"$type":"app.bsky.feed.post","text":"edited","createdAt":"2024-11-05T18:24:31.123Z","bridgyOriginalUrl":"https://example.social/@bob/123","score":{"a":[1,2,3]}}`, string(out))
}

func TestFeedPostDatetime(t *testing.T) {
	assert := assert.New(t)

	var a, b FeedPost
	require.NoError(t, json.Unmarshal([]byte(`{"text":"hi","createdAt":"2024-11-05T18:24:31.123456Z"}`), &a))
	require.NoError(t, json.Unmarshal([]byte(`{"text":"hi","createdAt":"2024-11-05T13:24:31.123-05:00"}`), &b))
	assert.True(lexutil.Equal(a, b))

	out, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(`{"text":"hi","createdAt":"2024-11-05T18:24:31.123Z"}`, string(out))
}

func TestFeedPostErrors(t *testing.T) {
	assert := assert.New(t)

	testCases := []struct {
		doc  string
		kind lexutil.DecodeErrorKind
		path string
	}{
		{`{"text":"hi"}`, lexutil.KindMissingRequiredField, "createdAt"},
		{`{"text":"hi","createdAt":"2024-11-05T18:24:31.123Z","langs":["en","english!"]}`, lexutil.KindMalformedIdentifier, "langs[1]"},
		{`{"text":"hi","createdAt":"2024-11-05T18:24:31.123Z","reply":{"root":{"uri":"at://did:plc:abc/app.bsky.feed.post/3l7kfbq5hdk2a","cid":"bafyreiamthap7f5ltwiyaonpd44qochkdyfdf7xnlrbunezi7yvvlhesma"}}}`, lexutil.KindMissingRequiredField, "reply.parent"},
		{`{"text":"hi","createdAt":"2024-11-05T18:24:31.123Z","facets":[{"index":{"byteStart":0,"byteEnd":3},"features":[{"$type":"app.bsky.richtext.facet#mention","did":"alice"}]}]}`, lexutil.KindMalformedIdentifier, "facets[0].features[0].did"},
		{`{"text":"hi","createdAt":"2024-11-05T18:24:31.123Z","embed":{"$type":"app.bsky.embed.images","images":[{"alt":"x","image":{"$type":"blob","ref":{"$link":"bafkreieludigxrnirftld5ub3hflfbyjpannprcqqawq4r3rglmjdhqmx4"},"mimeType":"image/png","size":"big"}}]}}`, lexutil.KindTypeMismatch, "embed.images[0].image.size"},
		{`{"text":"hi","createdAt":"2024-11-05T18:24:31.123Z","embed":{"$type":"app.bsky.embed.record","record":{"uri":"https://example.com","cid":"bafyreiamthap7f5ltwiyaonpd44qochkdyfdf7xnlrbunezi7yvvlhesma"}}}`, lexutil.KindMalformedIdentifier, "embed.record.uri"},
		{`{"text":42,"createdAt":"2024-11-05T18:24:31.123Z"}`, lexutil.KindTypeMismatch, "text"},
	}
	for _, tc := range testCases {
		var post FeedPost
		err := lexutil.Decode([]byte(tc.doc), &post)
		var de *lexutil.DecodeError
		if !assert.True(errors.As(err, &de), tc.doc) {
			continue
		}
		assert.Equal(tc.kind, de.Kind, tc.doc)
		assert.Equal(tc.path, de.Path, tc.doc)
	}
}

func TestFeedPostRecordCID(t *testing.T) {
	assert := assert.New(t)

	created, err := lexutil.ParseLexDatetime("2023-03-29T20:59:19.417Z")
	require.NoError(t, err)
	post := FeedPost{
		Text:      "hello",
		CreatedAt: created,
	}
	c, err := lexutil.RecordCID(post)
	require.NoError(t, err)
	assert.Equal("bafyreigc34lougzxmif27qkgujovfwlvfyd5lpfrhnmpawxwv6fpnu2cqy", c.String())

	uri := syntax.ATURI("at://did:plc:ewvi7nxzyoun6zhxrhs64oiz/app.bsky.feed.post/3l7kfbq5hdk2a")
	ref, err := comatproto.NewRepoStrongRefForRecord(uri, &post)
	require.NoError(t, err)
	assert.Equal(c, ref.Cid)
	assert.Equal(uri, ref.Uri)

	// a like of that exact version of the post
	like := FeedLike{
		Subject:   ref,
		CreatedAt: lexutil.NewLexDatetime(time.Date(2023, 3, 30, 0, 0, 0, 0, time.UTC)),
	}
	out, err := lexutil.Encode(like)
	require.NoError(t, err)
	assert.JSONEq(`{"$type":"app.bsky.feed.like","createdAt":"2023-03-30T00:00:00.000Z","subject":{"uri":"at://did:plc:ewvi7nxzyoun6zhxrhs64oiz/app.bsky.feed.post/3l7kfbq5hdk2a","cid":"bafyreigc34lougzxmif27qkgujovfwlvfyd5lpfrhnmpawxwv6fpnu2cqy"}}`, string(out))
}
