package session

// Event is an outbound notification from a session to its host.
type Event interface {
	event()
}

// SetMetadata is emitted whenever session metadata changes.
type SetMetadata struct {
	Metadata Metadata
}

// PlaybackStateChanged is emitted when the declared playback state is
// set.
type PlaybackStateChanged struct {
	State PlaybackState
}

func (SetMetadata) event()          {}
func (PlaybackStateChanged) event() {}

// Host is the embedding environment presenting platform media controls
// for a session. Notify is fire-and-forget; events arrive in the order
// the mutating session calls occurred.
type Host interface {
	Notify(e Event)
}
