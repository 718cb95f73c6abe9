package bsky

import (
	comatproto "github.com/bluesky-social/lexcodec/api/atproto"
	"github.com/bluesky-social/lexcodec/atproto/data"
	"github.com/bluesky-social/lexcodec/atproto/syntax"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: app.bsky.graph.follow

func init() {
	lexutil.RegisterType("app.bsky.graph.follow", &GraphFollow{})
}

// GraphFollow is a "main" in the app.bsky.graph.follow schema.
//
// Record declaring a social 'follow' relationship of another account.
//
// RECORDTYPE: GraphFollow
type GraphFollow struct {
	LexiconTypeID string                    `json:"$type,const=app.bsky.graph.follow,omitempty"`
	CreatedAt     lexutil.LexDatetime       `json:"createdAt"`
	Subject       syntax.DID                `json:"subject"`
	Via           *comatproto.RepoStrongRef `json:"via,omitempty"`
	Extra         *data.Object              `json:"-"`
}

func (t GraphFollow) LexiconType() string {
	return "app.bsky.graph.follow"
}

func (t *GraphFollow) UnmarshalJSON(b []byte) error {
	type alias GraphFollow
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t GraphFollow) MarshalJSON() ([]byte, error) {
	type alias GraphFollow
	return lexutil.MarshalObject(alias(t), t.Extra)
}
