package bsky

import (
	comatproto "github.com/bluesky-social/lexcodec/api/atproto"
	"github.com/bluesky-social/lexcodec/atproto/data"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// schema: app.bsky.actor.profile

func init() {
	lexutil.RegisterType("app.bsky.actor.profile", &ActorProfile{})
}

// ActorProfile is a "main" in the app.bsky.actor.profile schema.
//
// RECORDTYPE: ActorProfile
type ActorProfile struct {
	LexiconTypeID string `json:"$type,const=app.bsky.actor.profile,omitempty"`
	// avatar: Small image to be displayed next to posts from account. AKA, 'profile picture'
	Avatar *lexutil.LexBlob `json:"avatar,omitempty"`
	// banner: Larger horizontal image to display behind profile view.
	Banner    *lexutil.LexBlob     `json:"banner,omitempty"`
	CreatedAt *lexutil.LexDatetime `json:"createdAt,omitempty"`
	// description: Free-form profile description text.
	Description          *string                   `json:"description,omitempty"`
	DisplayName          *string                   `json:"displayName,omitempty"`
	JoinedViaStarterPack *comatproto.RepoStrongRef `json:"joinedViaStarterPack,omitempty"`
	// labels: Self-label values, specific to the Bluesky application, on the overall account.
	Labels     *ActorProfile_Labels      `json:"labels,omitempty"`
	PinnedPost *comatproto.RepoStrongRef `json:"pinnedPost,omitempty"`
	Extra      *data.Object              `json:"-"`
}

func (t ActorProfile) LexiconType() string {
	return "app.bsky.actor.profile"
}

func (t *ActorProfile) UnmarshalJSON(b []byte) error {
	type alias ActorProfile
	return lexutil.UnmarshalObject(b, (*alias)(t), &t.Extra)
}

func (t ActorProfile) MarshalJSON() ([]byte, error) {
	type alias ActorProfile
	return lexutil.MarshalObject(alias(t), t.Extra)
}

var actorProfileLabels = lexutil.NewFamily("app.bsky.actor.profile#labels").
	Register("com.atproto.label.defs#selfLabels", &comatproto.LabelDefs_SelfLabels{})

type ActorProfile_Labels struct {
	Value lexutil.Variant
}

func (t ActorProfile_Labels) MarshalJSON() ([]byte, error) {
	return lexutil.MarshalVariant(t.Value)
}

func (t *ActorProfile_Labels) UnmarshalJSON(b []byte) error {
	return actorProfileLabels.UnmarshalInto(b, &t.Value)
}
