package util

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bluesky-social/lexcodec/atproto/data"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPostDoc = `{
  "$type": "com.example.test.post",
  "text": "hello world",
  "createdAt": "2023-03-29T20:59:19.417Z",
  "status": "published",
  "embed": {"$type": "com.example.test.embed#image", "alt": "a cat", "tags": [], "aspectRatio": {"width": 4, "height": 3}},
  "links": [
    {"$type": "com.example.test.embed#link", "uri": "at://did:plc:abc123/app.bsky.feed.post/3jzfcijpj2z2a"},
    {"$type": "com.example.test.embed#link", "uri": "at://alice.example.com"}
  ],
  "images": [{"alt": "first"}, {"alt": "second", "note": "n"}],
  "subject": {"$type": "com.example.other.record", "nested": {"$type": "whatever", "x": [1, 2]}},
  "via": "import",
  "score": 12
}`

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	var post testPost
	require.NoError(t, Decode([]byte(testPostDoc), &post))
	assert.Equal("hello world", post.Text)
	require.NotNil(t, post.Status)
	assert.Equal(testStatusPublished, *post.Status)
	require.NotNil(t, post.Embed)
	img, ok := post.Embed.Value.(*testImage)
	require.True(t, ok)
	assert.Equal("a cat", img.Alt)
	assert.NotNil(img.Tags)
	assert.True(img.Extra.Has("aspectRatio"))
	require.Len(t, post.Links, 2)
	assert.IsType(&testLink{}, post.Links[0].Value)
	assert.IsType(&testLink{}, post.Links[1].Value)
	require.Len(t, post.Images, 2)
	require.NotNil(t, post.Subject)
	assert.IsType(&UnknownVariant{}, post.Subject.Val)
	assert.Equal([]string{"via", "score"}, post.Extra.Keys())

	out, err := Encode(post)
	require.NoError(t, err)
	assert.JSONEq(testPostDoc, string(out))

	var again testPost
	require.NoError(t, Decode(out, &again))
	assert.True(Equal(post, again))
	assert.True(Equal(&post, again))

	// "mutation" by copying and replacing a field keeps unknown data
	edited := post
	edited.Text = "edited"
	out, err = Encode(edited)
	require.NoError(t, err)
	var generic, orig *data.Object
	generic, err = data.ParseObject(out)
	require.NoError(t, err)
	orig, err = data.ParseObject([]byte(testPostDoc))
	require.NoError(t, err)
	assert.ElementsMatch(orig.Keys(), generic.Keys())
	text, _ := generic.GetString("text")
	assert.Equal("edited", text)
	assert.False(Equal(post, edited))
}

func TestEncodeAddsRecordType(t *testing.T) {
	assert := assert.New(t)

	post := testPost{Text: "hi", CreatedAt: NewLexDatetime(mustTime(t, "2023-03-29T20:59:19.417Z"))}
	out, err := Encode(post)
	require.NoError(t, err)
	assert.JSONEq(`{"$type":"com.example.test.post","text":"hi","createdAt":"2023-03-29T20:59:19.417Z"}`, string(out))

	out, err = Encode(testPost{LexiconTypeID: "com.example.test.post", Text: "hi", CreatedAt: post.CreatedAt})
	require.NoError(t, err)
	assert.JSONEq(`{"$type":"com.example.test.post","text":"hi","createdAt":"2023-03-29T20:59:19.417Z"}`, string(out))
}

func TestEqualUnencodable(t *testing.T) {
	assert := assert.New(t)

	var empty LexBlob
	_, err := Encode(empty)
	require.Error(t, err)
	assert.True(Equal(empty, empty))
	assert.False(Equal(empty, LexBlob{MimeType: "image/png"}))

	bogus := testStatus(99)
	post := testPost{Text: "hi", CreatedAt: LexDatetime{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}, Status: &bogus}
	_, err = Encode(post)
	require.Error(t, err)
	assert.True(Equal(post, post))

	other := post
	other.Text = "bye"
	assert.False(Equal(post, other))
}

func TestDecodeRecord(t *testing.T) {
	assert := assert.New(t)

	rec, err := DecodeRecord([]byte(testPostDoc))
	require.NoError(t, err)
	post, ok := rec.(*testPost)
	require.True(t, ok)
	assert.Equal("hello world", post.Text)

	rec, err = DecodeRecord([]byte(`{"$type":"com.example.test.unknown","a":1}`))
	require.NoError(t, err)
	assert.IsType(&UnknownVariant{}, rec)

	_, err = DecodeRecord([]byte(`{"a":1}`))
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(KindMissingRequiredField, de.Kind)

	_, err = DecodeRecord([]byte(`null`))
	assert.Error(err)

	_, err = DecodeRecord([]byte(`{"$type":"com.example.test.post","text":"hi"}`))
	require.True(t, errors.As(err, &de))
	assert.Equal("createdAt", de.Path)

	assert.Error(Decode([]byte(`{}`), testPost{}))
	var nilPost *testPost
	assert.Error(Decode([]byte(`{}`), nilPost))
}

func TestRecordCID(t *testing.T) {
	assert := assert.New(t)

	var post testPost
	require.NoError(t, Decode([]byte(testPostDoc), &post))
	c1, err := RecordCID(post)
	require.NoError(t, err)
	assert.Equal("bafyrei", c1.String()[:7])

	// property order and datetime spelling do not affect the CID
	var reordered testPost
	require.NoError(t, Decode([]byte(`{"score":12,"via":"import","createdAt":"2023-03-29T22:59:19.417+02:00","text":"hello world","status":"published",
		"embed":{"aspectRatio":{"height":3,"width":4},"tags":[],"alt":"a cat","$type":"com.example.test.embed#image"},
		"links":[{"$type":"com.example.test.embed#link","uri":"at://did:plc:abc123/app.bsky.feed.post/3jzfcijpj2z2a"},{"$type":"com.example.test.embed#link","uri":"at://alice.example.com"}],
		"images":[{"alt":"first"},{"alt":"second","note":"n"}],
		"subject":{"nested":{"$type":"whatever","x":[1,2]},"$type":"com.example.other.record"},"$type":"com.example.test.post"}`), &reordered))
	c2, err := RecordCID(reordered)
	require.NoError(t, err)
	assert.Equal(c1, c2)

	post.Text = "changed"
	c3, err := RecordCID(post)
	require.NoError(t, err)
	assert.NotEqual(c1, c3)
}

func TestConcurrentDecode(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var post testPost
			if err := Decode([]byte(testPostDoc), &post); err != nil {
				errs <- err
				return
			}
			if _, err := Encode(post); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}

func mustTime(t *testing.T, s string) time.Time {
	ts, err := time.Parse(time.RFC3339Nano, s)
	require.NoError(t, err)
	return ts
}
