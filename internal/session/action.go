package session

// Action identifies a user-initiated media control intent forwarded by
// the session host.
type Action int

const (
	ActionPlay Action = iota
	ActionPause
	ActionSeekBackward
	ActionSeekForward
	ActionPreviousTrack
	ActionNextTrack
	ActionSkipAd
	ActionStop
	ActionSeekTo
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionPlay:
		return "Play"
	case ActionPause:
		return "Pause"
	case ActionSeekBackward:
		return "SeekBackward"
	case ActionSeekForward:
		return "SeekForward"
	case ActionPreviousTrack:
		return "PreviousTrack"
	case ActionNextTrack:
		return "NextTrack"
	case ActionSkipAd:
		return "SkipAd"
	case ActionStop:
		return "Stop"
	case ActionSeekTo:
		return "SeekTo"
	default:
		return "Unknown"
	}
}

// Handler intercepts a session action in place of the built-in default
// behavior for that action.
type Handler interface {
	Handle(action Action) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(action Action) error

// Handle calls f.
func (f HandlerFunc) Handle(action Action) error {
	return f(action)
}
