package util

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnum(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(testStatusDraft, testStatusEnum.Decode("draft"))
	assert.Equal(testStatusPublished, testStatusEnum.Decode("published"))
	assert.Equal(testStatusOther, testStatusEnum.Decode("other"))

	// unrecognized strings never fail, and all map to the same value
	a := testStatusEnum.Decode("archived")
	b := testStatusEnum.Decode("DRAFT")
	assert.Equal(testStatusOther, a)
	assert.Equal(a, b)
	assert.Equal(testStatusOther, testStatusEnum.Decode(""))

	_, ok := testStatusEnum.Lookup("archived")
	assert.False(ok)
	val, ok := testStatusEnum.Lookup("draft")
	assert.True(ok)
	assert.Equal(testStatusDraft, val)

	wire, err := testStatusEnum.Encode(testStatusPublished)
	assert.NoError(err)
	assert.Equal("published", wire)
	// the fallback encodes to its own wire string
	wire, err = testStatusEnum.Encode(a)
	assert.NoError(err)
	assert.Equal("other", wire)

	_, err = testStatusEnum.Encode(testStatus(99))
	assert.Error(err)

	assert.Equal([]string{"draft", "other", "published"}, testStatusEnum.Values())
	assert.Equal(testStatusOther, testStatusEnum.Fallback())
	assert.Equal("com.example.test.post#status", testStatusEnum.Name())
}

func TestEnumPanics(t *testing.T) {
	assert := assert.New(t)

	assert.Panics(func() {
		NewEnum("dupe", 0, map[int]string{0: "a", 1: "a"})
	})
	assert.Panics(func() {
		NewEnum("nofallback", 2, map[int]string{0: "a", 1: "b"})
	})
	assert.Panics(func() {
		NewEnum("empty", 0, map[int]string{0: "a", 1: ""})
	})
	assert.NotPanics(func() {
		NewEnum("ok", "x", map[string]string{"x": "ex", "y": "why"})
	})
}

func TestEnumField(t *testing.T) {
	assert := assert.New(t)

	var known, unknownA, unknownB testPost
	require.NoError(t, json.Unmarshal([]byte(`{"text":"hi","createdAt":"2023-03-29T20:59:19.417Z","status":"draft"}`), &known))
	require.NoError(t, json.Unmarshal([]byte(`{"text":"hi","createdAt":"2023-03-29T20:59:19.417Z","status":"archived"}`), &unknownA))
	require.NoError(t, json.Unmarshal([]byte(`{"text":"hi","createdAt":"2023-03-29T20:59:19.417Z","status":"deleted"}`), &unknownB))

	require.NotNil(t, known.Status)
	assert.Equal(testStatusDraft, *known.Status)
	require.NotNil(t, unknownA.Status)
	assert.Equal(testStatusOther, *unknownA.Status)

	assert.True(Equal(unknownA, unknownB))
	assert.False(Equal(known, unknownA))

	// not the original wire string
	out, err := json.Marshal(unknownA)
	require.NoError(t, err)
	assert.JSONEq(`{"text":"hi","createdAt":"2023-03-29T20:59:19.417Z","status":"other"}`, string(out))

	// wrong JSON kind is still an error
	var bad testPost
	assert.Error(json.Unmarshal([]byte(`{"text":"hi","createdAt":"2023-03-29T20:59:19.417Z","status":3}`), &bad))
}
