package bsky

import (
	"time"

	"github.com/bluesky-social/lexcodec/atproto/syntax"
	lexutil "github.com/bluesky-social/lexcodec/lex/util"
)

// Builds the threadgate record to publish with the first post of the draft, using the draft's reply rules. Returns nil if the draft has no reply rules (anybody can reply). Rules of unrecognized types are carried over as-is.
func (t *DraftDefs_Draft) Threadgate(post syntax.ATURI, createdAt time.Time) *FeedThreadgate {
	if t.ThreadgateAllow == nil {
		return nil
	}
	allow := make([]*FeedThreadgate_Allow_Elem, 0, len(t.ThreadgateAllow))
	for _, rule := range t.ThreadgateAllow {
		if rule == nil || rule.Value == nil {
			continue
		}
		allow = append(allow, &FeedThreadgate_Allow_Elem{Value: rule.Value})
	}
	return &FeedThreadgate{
		LexiconTypeID: "app.bsky.feed.threadgate",
		Allow:         allow,
		CreatedAt:     lexutil.NewLexDatetime(createdAt),
		Post:          post,
	}
}
