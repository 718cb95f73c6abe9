package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestJSONToYAML(t *testing.T) {
	assert := assert.New(t)

	out, err := jsonToYAML([]byte(`{"text":"true","$type":"app.bsky.feed.post","langs":["en",null],"n":{"size":12,"ratio":1.5,"ok":false}}`))
	require.NoError(t, err)

	s := string(out)
	assert.Less(strings.Index(s, "text:"), strings.Index(s, "$type:"))
	assert.Less(strings.Index(s, "$type:"), strings.Index(s, "langs:"))

	var back map[string]any
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal("true", back["text"])
	assert.Equal([]any{"en", nil}, back["langs"])
	assert.Equal(map[string]any{"size": 12, "ratio": 1.5, "ok": false}, back["n"])

	_, err = jsonToYAML([]byte(`{"a":`))
	assert.Error(err)
}
