package data

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectOrderPreserved(t *testing.T) {
	assert := assert.New(t)

	obj, err := ParseObject([]byte(`{"zeta": 1, "alpha": {"b": 2, "a": [1, 2.50, "x"]}, "mid": null}`))
	require.NoError(t, err)
	assert.Equal([]string{"zeta", "alpha", "mid"}, obj.Keys())
	assert.Equal(3, obj.Len())

	raw, ok := obj.Get("alpha")
	assert.True(ok)
	// whitespace compacted, literals untouched
	assert.Equal(`{"b":2,"a":[1,2.50,"x"]}`, string(raw))

	out, err := json.Marshal(obj)
	assert.NoError(err)
	assert.Equal(`{"zeta":1,"alpha":{"b":2,"a":[1,2.50,"x"]},"mid":null}`, string(out))
}

func TestObjectParseErrors(t *testing.T) {
	assert := assert.New(t)

	for _, bad := range []string{
		``,
		`[]`,
		`"str"`,
		`{"a": 1, "a": 2}`,
		`{"a": 1} {}`,
		`{"a": }`,
		`{"a": 1`,
	} {
		_, err := ParseObject([]byte(bad))
		assert.Error(err, bad)
	}
}

func TestObjectEqual(t *testing.T) {
	assert := assert.New(t)

	a, err := ParseObject([]byte(`{"x": {"p": 1, "q": [true]}, "y": "s"}`))
	require.NoError(t, err)
	b, err := ParseObject([]byte(`{"y": "s", "x": {"q": [true], "p": 1}}`))
	require.NoError(t, err)
	c, err := ParseObject([]byte(`{"y": "s", "x": {"q": [true], "p": 1}, "z": 0}`))
	require.NoError(t, err)
	d, err := ParseObject([]byte(`{"y": "s", "x": {"q": [false], "p": 1}}`))
	require.NoError(t, err)

	assert.True(a.Equal(b))
	assert.True(b.Equal(a))
	assert.False(a.Equal(c))
	assert.False(c.Equal(a))
	assert.False(a.Equal(d))

	// absent and empty are the same thing
	var none *Object
	assert.True(none.Equal(NewObject()))
	assert.True(NewObject().Equal(none))
	assert.False(none.Equal(a))
}

func TestObjectCopies(t *testing.T) {
	assert := assert.New(t)

	orig, err := ParseObject([]byte(`{"$type": "com.example.thing", "a": 1, "b": 2}`))
	require.NoError(t, err)

	typ, ok := orig.GetString("$type")
	assert.True(ok)
	assert.Equal("com.example.thing", typ)
	_, ok = orig.GetString("a")
	assert.False(ok)

	without := orig.Without("$type", "b")
	assert.Equal([]string{"a"}, without.Keys())
	assert.Equal(3, orig.Len())

	clone := orig.Clone()
	assert.NoError(clone.SetValue("c", []int{1, 2}))
	assert.Equal(3, orig.Len())
	assert.Equal(4, clone.Len())

	assert.Error(clone.Set("bad", json.RawMessage(`{`)))

	var zero Object
	assert.NoError(zero.Set("k", json.RawMessage(`"v"`)))
	assert.Equal(1, zero.Len())
}
