package session

// PlaybackState is the playback state a page declares for its session.
type PlaybackState int

const (
	StateNone PlaybackState = iota
	StatePlaying
	StatePaused
)

// String returns the state name.
func (s PlaybackState) String() string {
	switch s {
	case StateNone:
		return "None"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if the session declared active playback.
func (s PlaybackState) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}
