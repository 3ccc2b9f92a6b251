package session

// PositionState is a candidate position state supplied by the page:
// duration and position in seconds, all fields optional on input.
type PositionState struct {
	Duration     *float64
	Position     *float64
	PlaybackRate *float64
}

// isEmpty reports whether all three fields are absent, which requests
// clearing the position state.
func (ps PositionState) isEmpty() bool {
	return ps.Duration == nil && ps.Position == nil && ps.PlaybackRate == nil
}

// validate runs the ordered checks on a non-empty candidate. The first
// failing check determines the error.
func (ps PositionState) validate() error {
	if ps.Duration == nil {
		return &StateError{Reason: "duration is not present or its value is null"}
	}
	if *ps.Duration < 0 {
		return &StateError{Reason: "duration is negative"}
	}
	if ps.Position != nil {
		if *ps.Position < 0 {
			return &StateError{Reason: "position is negative"}
		}
		if *ps.Position > *ps.Duration {
			return &StateError{Reason: "position is greater than duration"}
		}
	}
	if ps.PlaybackRate != nil && *ps.PlaybackRate <= 0 {
		return &StateError{Reason: "playbackRate is zero"}
	}
	return nil
}
