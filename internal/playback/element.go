package playback

import (
	"fmt"
	"sync"
)

// Element is an in-memory playback instance. It stands in for a real
// media pipeline: it keeps the state the session pushes into it and
// exposes a snapshot for host front-ends to report.
type Element struct {
	mu       sync.Mutex
	playing  bool
	duration float64
	rate     float64
	position float64
}

// Snapshot is a point-in-time copy of element state.
type Snapshot struct {
	Playing  bool
	Duration float64
	Rate     float64
	Position float64
}

// NewElement creates a paused element with the default playback rate.
func NewElement() *Element {
	return &Element{rate: 1.0}
}

func (e *Element) Play() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.playing = true
}

func (e *Element) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.playing = false
}

// ResetPositionTracking restores duration, rate and position to their
// initial values.
func (e *Element) ResetPositionTracking() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.duration = 0
	e.rate = 1.0
	e.position = 0
}

func (e *Element) SetDuration(seconds float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.duration = seconds
}

// SetPlaybackRate rejects rates that cannot drive playback.
func (e *Element) SetPlaybackRate(rate float64) error {
	if rate <= 0 {
		return fmt.Errorf("unsupported playback rate %v", rate)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rate = rate
	return nil
}

func (e *Element) SetCurrentTime(seconds float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.position = seconds
}

// Snapshot returns a copy of the current element state.
func (e *Element) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{
		Playing:  e.playing,
		Duration: e.duration,
		Rate:     e.rate,
		Position: e.position,
	}
}

// Verify Element implements Instance at compile time.
var _ Instance = (*Element)(nil)
