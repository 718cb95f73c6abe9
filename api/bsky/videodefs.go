package bsky

import (
	"github.com/bluesky-social/lexcodec/atproto/data"
	"github.com/bluesky-social/lexcodec/atproto/syntax"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: app.bsky.video.defs

// VideoDefs_JobStatus is a "jobStatus" in the app.bsky.video.defs schema.
type VideoDefs_JobStatus struct {
	Blob    *lexutil.LexBlob `json:"blob,omitempty"`
	Did     syntax.DID       `json:"did"`
	Error   *string          `json:"error,omitempty"`
	JobId   string           `json:"jobId"`
	Message *string          `json:"message,omitempty"`
	// progress: Progress within the current processing state.
	Progress *int64 `json:"progress,omitempty"`
	// state: The state of the video processing job. All values not listed as a known value indicate that the job is in process.
	State VideoDefs_JobStatus_State `json:"state"`
	Extra *data.Object              `json:"-"`
}

func (t *VideoDefs_JobStatus) UnmarshalJSON(b []byte) error {
	type alias VideoDefs_JobStatus
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t VideoDefs_JobStatus) MarshalJSON() ([]byte, error) {
	type alias VideoDefs_JobStatus
	return lexutil.MarshalObject(alias(t), t.Extra)
}

// Any state not listed here is reported by the service while the job is still running, and decodes as VideoJobStateInProgress.
type VideoDefs_JobStatus_State int

const (
	VideoJobStateInProgress VideoDefs_JobStatus_State = iota
	VideoJobStateCreated
	VideoJobStateEncoding
	VideoJobStateCompleted
	VideoJobStateFailed
)

var videoJobState = lexutil.NewEnum("app.bsky.video.defs#jobStatus.state", VideoJobStateInProgress, map[VideoDefs_JobStatus_State]string{
	VideoJobStateInProgress: "JOB_STATE_IN_PROGRESS",
	VideoJobStateCreated:    "JOB_STATE_CREATED",
	VideoJobStateEncoding:   "JOB_STATE_ENCODING",
	VideoJobStateCompleted:  "JOB_STATE_COMPLETED",
	VideoJobStateFailed:     "JOB_STATE_FAILED",
})

func (v VideoDefs_JobStatus_State) String() string {
	s, _ := videoJobState.Encode(v)
	return s
}

func (v VideoDefs_JobStatus_State) MarshalText() ([]byte, error) {
	s, err := videoJobState.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (v *VideoDefs_JobStatus_State) UnmarshalText(b []byte) error {
	*v = videoJobState.Decode(string(b))
	return nil
}

// Reports whether the job has reached a final state.
func (t *VideoDefs_JobStatus) Done() bool {
	return t.State == VideoJobStateCompleted || t.State == VideoJobStateFailed
}
