package session

import "sync"

// Recorder is a Host test double that records events in delivery
// order.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Notify(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of all recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// LastMetadata returns the metadata of the most recent SetMetadata
// event, or nil if none was delivered.
func (r *Recorder) LastMetadata() *Metadata {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if e, ok := r.events[i].(SetMetadata); ok {
			md := e.Metadata
			return &md
		}
	}
	return nil
}

// Verify Recorder implements Host at compile time.
var _ Host = (*Recorder)(nil)
