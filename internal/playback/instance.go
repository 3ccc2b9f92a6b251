// Package playback defines the contract between a media session and
// the playback instance it controls.
package playback

// Instance is the media element under session control: the authority
// for play/pause, duration, playback rate and current position.
// Implementations live outside the session, which keeps a non-owning
// reference to at most one of them.
type Instance interface {
	Play()
	Pause()
	// ResetPositionTracking clears any position state previously
	// pushed by the session.
	ResetPositionTracking()
	SetDuration(seconds float64)
	// SetPlaybackRate may reject the requested rate.
	SetPlaybackRate(rate float64) error
	SetCurrentTime(seconds float64)
}
