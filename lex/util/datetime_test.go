package util

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexDatetime(t *testing.T) {
	assert := assert.New(t)

	spellings := []string{
		"1985-04-12T23:20:50.123Z",
		"1985-04-12T23:20:50.123000Z",
		"1985-04-12T23:20:50.123456789Z",
		"1985-04-12T23:20:50.123+00:00",
		"1985-04-12T19:20:50.123-04:00",
		"1985-04-13T01:20:50.123+02:00",
	}
	for _, s := range spellings {
		d, err := ParseLexDatetime(s)
		require.NoError(t, err, s)
		assert.Equal("1985-04-12T23:20:50.123Z", d.String(), s)
		assert.Equal(time.UTC, d.Location())

		out, err := json.Marshal(d)
		assert.NoError(err)
		assert.Equal(`"1985-04-12T23:20:50.123Z"`, string(out))
	}

	d, err := ParseLexDatetime("1985-04-12T23:20:50Z")
	require.NoError(t, err)
	assert.Equal("1985-04-12T23:20:50.000Z", d.String())
	assert.Equal("1985-04-12T23:20:50.000Z", d.Datetime().String())

	// lenient: no timezone is taken as UTC
	d, err = ParseLexDatetime("1985-04-12 23:20:50.123")
	require.NoError(t, err)
	assert.Equal("1985-04-12T23:20:50.123Z", d.String())

	for _, bad := range []string{"", "yesterday", "1985-04-12", "1985-13-12T23:20:50.123Z"} {
		_, err := ParseLexDatetime(bad)
		assert.Error(err, bad)
	}
}

func TestLexDatetimeJSON(t *testing.T) {
	assert := assert.New(t)

	var a, b LexDatetime
	require.NoError(t, json.Unmarshal([]byte(`"2023-03-29T20:59:19.417Z"`), &a))
	require.NoError(t, json.Unmarshal([]byte(`"2023-03-29T22:59:19.417+02:00"`), &b))
	assert.True(a.Equal(b))
	assert.Equal(a, b)
	assert.True(Equal(a, b))

	assert.Error(json.Unmarshal([]byte(`1680123559`), &a))

	now := NewLexDatetime(time.Now())
	assert.Equal(0, now.Nanosecond()%int(time.Millisecond))
	text, err := now.MarshalText()
	assert.NoError(err)
	var parsed LexDatetime
	assert.NoError(parsed.UnmarshalText(text))
	assert.Equal(now, parsed)
}
