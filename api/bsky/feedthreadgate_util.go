package bsky

// Reports whether anybody may reply to the gated thread. This is the case only when the allow list is absent: a present but empty list means nobody can reply.
func (t *FeedThreadgate) AllowsAnyone() bool {
	return t.Allow == nil
}
