package bsky

import (
	"testing"

	lexutil "github.com/bluesky-social/lexcodec/lex/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoJobState(t *testing.T) {
	assert := assert.New(t)

	var created VideoDefs_JobStatus
	require.NoError(t, lexutil.Decode([]byte(`{"did":"did:plc:abc","jobId":"j1","state":"JOB_STATE_CREATED"}`), &created))
	assert.Equal(VideoJobStateCreated, created.State)
	assert.Equal("j1", created.JobId)
	assert.False(created.Done())

	var undocumented VideoDefs_JobStatus
	require.NoError(t, lexutil.Decode([]byte(`{"did":"did:plc:abc","jobId":"j1","state":"JOB_STATE_UNDOCUMENTED"}`), &undocumented))
	assert.Equal(VideoJobStateInProgress, undocumented.State)

	// different unrecognized states are indistinguishable
	var other VideoDefs_JobStatus
	require.NoError(t, lexutil.Decode([]byte(`{"did":"did:plc:abc","jobId":"j1","state":"JOB_STATE_SCANNING"}`), &other))
	assert.Equal(undocumented.State, other.State)
	assert.True(lexutil.Equal(undocumented, other))
	assert.False(lexutil.Equal(created, other))

	out, err := lexutil.Encode(undocumented)
	require.NoError(t, err)
	assert.JSONEq(`{"did":"did:plc:abc","jobId":"j1","state":"JOB_STATE_IN_PROGRESS"}`, string(out))
	assert.Equal("JOB_STATE_CREATED", created.State.String())
}

func TestVideoJobStatusNulls(t *testing.T) {
	assert := assert.New(t)

	cases := map[string]string{
		"did":   `{"did":null,"jobId":"j1","state":"JOB_STATE_CREATED"}`,
		"state": `{"did":"did:plc:abc","jobId":"j1","state":null}`,
		"jobId": `{"did":"did:plc:abc","jobId":null,"state":"JOB_STATE_CREATED"}`,
	}
	for path, doc := range cases {
		var status VideoDefs_JobStatus
		err := lexutil.Decode([]byte(doc), &status)
		var de *lexutil.DecodeError
		require.ErrorAs(t, err, &de, path)
		assert.Equal(lexutil.KindTypeMismatch, de.Kind, path)
		assert.Equal(path, de.Path)
		assert.Equal("", status.Did.String())
	}

	// optional properties may be null, and are dropped on encode
	var status VideoDefs_JobStatus
	require.NoError(t, lexutil.Decode([]byte(`{"did":"did:plc:abc","jobId":"j1","state":"JOB_STATE_CREATED","progress":null,"blob":null}`), &status))
	assert.Nil(status.Progress)
	assert.Nil(status.Blob)
	out, err := lexutil.Encode(status)
	require.NoError(t, err)
	assert.JSONEq(`{"did":"did:plc:abc","jobId":"j1","state":"JOB_STATE_CREATED"}`, string(out))

	var again VideoDefs_JobStatus
	require.NoError(t, lexutil.Decode(out, &again))
	assert.True(lexutil.Equal(status, again))
}

func TestVideoGetJobStatus(t *testing.T) {
	assert := assert.New(t)

	doc := `{"jobStatus":{"$type":"app.bsky.video.defs#jobStatus","did":"did:plc:ewvi7nxzyoun6zhxrhs64oiz","jobId":"b7b2e1f0","state":"JOB_STATE_COMPLETED","progress":100,"blob":{"$type":"blob","ref":{"$link":"bafkreictjuczkm6mniu3b2duom2mnlyimgnrwwpgoj7vbkajjsipmojsqi"},"mimeType":"video/mp4","size":4096000}}}`
	var out VideoGetJobStatus_Output
	require.NoError(t, lexutil.Decode([]byte(doc), &out))
	assert.True(out.JobStatus.Done())
	require.NotNil(t, out.JobStatus.Progress)
	assert.Equal(int64(100), *out.JobStatus.Progress)
	assert.Equal("video/mp4", out.JobStatus.Blob.MimeType)

	enc, err := lexutil.Encode(out)
	require.NoError(t, err)
	assert.JSONEq(doc, string(enc))

	var failed VideoDefs_JobStatus
	require.NoError(t, lexutil.Decode([]byte(`{"did":"did:plc:abc","jobId":"j2","state":"JOB_STATE_FAILED","error":"unsupported codec"}`), &failed))
	assert.True(failed.Done())
	assert.Equal("unsupported codec", *failed.Error)
}
