package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNSIDParts(t *testing.T) {
	assert := assert.New(t)

	nsid, err := ParseNSID("com.Example.fooBar")
	assert.NoError(err)
	assert.Equal("example.com", nsid.Authority())
	assert.Equal("fooBar", nsid.Name())
	assert.Equal("com.example.fooBar", nsid.Normalize().String())
	assert.Equal("com.Example.fooBar", nsid.String())
}

func TestNSIDNoPanic(t *testing.T) {
	for _, s := range []string{"", ".", ".."} {
		bad := NSID(s)
		_ = bad.Authority()
		_ = bad.Name()
		_ = bad.Normalize()
	}
}

func TestRecordKeyNoPanic(t *testing.T) {
	for _, s := range []string{"", ".", ".."} {
		_, err := ParseRecordKey(s)
		assert.Error(t, err)
	}
}
