package util

import (
	"github.com/bluesky-social/lexcodec/atproto/data"
	"github.com/bluesky-social/lexcodec/atproto/syntax"
)

// minimal lexicon types, shaped like the generated api packages

type testImage struct {
	LexiconTypeID string       `json:"$type,const=com.example.test.embed#image,omitempty"`
	Alt           string       `json:"alt"`
	Tags          []string     `json:"tags,omitzero"`
	Note          *string      `json:"note,omitempty"`
	Extra         *data.Object `json:"-"`
}

func (t testImage) LexiconType() string { return "com.example.test.embed#image" }

func (t *testImage) UnmarshalJSON(b []byte) error {
	type alias testImage
	return UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t testImage) MarshalJSON() ([]byte, error) {
	type alias testImage
	return MarshalObject(alias(t), t.Extra)
}

type testLink struct {
	LexiconTypeID string       `json:"$type,const=com.example.test.embed#link,omitempty"`
	Uri           syntax.ATURI `json:"uri"`
	Extra         *data.Object `json:"-"`
}

func (t testLink) LexiconType() string { return "com.example.test.embed#link" }

func (t *testLink) UnmarshalJSON(b []byte) error {
	type alias testLink
	return UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t testLink) MarshalJSON() ([]byte, error) {
	type alias testLink
	return MarshalObject(alias(t), t.Extra)
}

var testEmbedFamily = NewFamily("com.example.test.post#embed").
	Register("com.example.test.embed#image", testImage{}).
	Register("com.example.test.embed#link", testLink{})

// defaults to link when $type is absent
var testLinkFamily = NewFamily("com.example.test.post#links").
	Register("com.example.test.embed#link", testLink{}).
	WithDefault("com.example.test.embed#link")

type testEmbed struct {
	Value Variant
}

func (t testEmbed) MarshalJSON() ([]byte, error) {
	return MarshalVariant(t.Value)
}

func (t *testEmbed) UnmarshalJSON(b []byte) error {
	return testEmbedFamily.UnmarshalInto(b, &t.Value)
}

type testLinkElem struct {
	Value Variant
}

func (t testLinkElem) MarshalJSON() ([]byte, error) {
	return MarshalVariant(t.Value)
}

func (t *testLinkElem) UnmarshalJSON(b []byte) error {
	return testLinkFamily.UnmarshalInto(b, &t.Value)
}

type testStatus int

const (
	testStatusOther testStatus = iota
	testStatusDraft
	testStatusPublished
)

var testStatusEnum = NewEnum("com.example.test.post#status", testStatusOther, map[testStatus]string{
	testStatusOther:     "other",
	testStatusDraft:     "draft",
	testStatusPublished: "published",
})

func (s testStatus) MarshalText() ([]byte, error) {
	w, err := testStatusEnum.Encode(s)
	return []byte(w), err
}

func (s *testStatus) UnmarshalText(b []byte) error {
	*s = testStatusEnum.Decode(string(b))
	return nil
}

type testPost struct {
	LexiconTypeID string              `json:"$type,const=com.example.test.post,omitempty"`
	Text          string              `json:"text"`
	CreatedAt     LexDatetime         `json:"createdAt"`
	Status        *testStatus         `json:"status,omitempty"`
	Embed         *testEmbed          `json:"embed,omitempty"`
	Links         []testLinkElem      `json:"links,omitzero"`
	Images        []*testImage        `json:"images,omitzero"`
	Subject       *LexiconTypeDecoder `json:"subject,omitempty"`
	Extra         *data.Object        `json:"-"`
}

func (t testPost) LexiconType() string { return "com.example.test.post" }

func (t *testPost) UnmarshalJSON(b []byte) error {
	type alias testPost
	return UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t testPost) MarshalJSON() ([]byte, error) {
	type alias testPost
	return MarshalObject(alias(t), t.Extra)
}

func init() {
	RegisterType("com.example.test.post", testPost{})
}
