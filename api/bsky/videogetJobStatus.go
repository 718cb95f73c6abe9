package bsky

import (
	"github.com/bluesky-social/lexcodec/atproto/data"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: app.bsky.video.getJobStatus

// VideoGetJobStatus_Output is the output of a app.bsky.video.getJobStatus call.
type VideoGetJobStatus_Output struct {
	JobStatus *VideoDefs_JobStatus `json:"jobStatus"`
	Extra     *data.Object         `json:"-"`
}

func (t *VideoGetJobStatus_Output) UnmarshalJSON(b []byte) error {
	type alias VideoGetJobStatus_Output
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t VideoGetJobStatus_Output) MarshalJSON() ([]byte, error) {
	type alias VideoGetJobStatus_Output
	return lexutil.MarshalObject(alias(t), t.Extra)
}
