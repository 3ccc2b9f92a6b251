// Package session models a per-page media session: playback metadata,
// a declared playback state, custom action handlers and the position
// state pushed to the controlled playback instance.
package session

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/llehouerou/mediasession/internal/playback"
)

// Session mediates between a session host presenting platform media
// controls and a single controlled playback instance. Methods are safe
// for concurrent use; custom handlers may re-enter the session.
type Session struct {
	host      Host
	log       zerolog.Logger
	sourceURL string

	mu       sync.RWMutex
	metadata metadataStore
	state    PlaybackState
	handlers handlerRegistry
	instance playback.Instance
}

// New creates a session notifying host. sourceURL is the address of
// the owning page and serves as the fallback metadata title.
func New(h Host, sourceURL string, log zerolog.Logger) *Session {
	return &Session{
		host:      h,
		log:       log,
		sourceURL: sourceURL,
		handlers:  make(handlerRegistry),
	}
}

// RegisterInstance binds the playback instance under session control.
// At most one instance is bound at a time; a later registration
// replaces the earlier one. Passing nil unbinds. The session never
// owns the instance: all instance-affecting operations are no-ops
// while nothing is bound.
func (s *Session) RegisterInstance(inst playback.Instance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instance = inst
}

// Metadata returns a snapshot of the current metadata, or nil if none
// was ever set.
func (s *Session) Metadata() *Metadata {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.metadata.snapshot()
}

// SetMetadata stores md unconditionally, emitting a SetMetadata event.
// A nil md or an empty title falls back to the source URL.
func (s *Session) SetMetadata(md *Metadata) {
	s.mu.Lock()
	stored := s.metadata.set(md, s.sourceURL)
	s.mu.Unlock()
	s.notify(SetMetadata{Metadata: stored})
}

// UpdateTitle applies a title reported by the playback instance. It
// never overwrites an existing non-empty title.
func (s *Session) UpdateTitle(title string) {
	s.mu.Lock()
	md, changed := s.metadata.updateTitleFromPlayer(title)
	s.mu.Unlock()
	if !changed {
		return
	}
	s.notify(SetMetadata{Metadata: md})
}

// PlaybackState returns the declared playback state.
func (s *Session) PlaybackState() PlaybackState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetPlaybackState sets the declared playback state. Any transition is
// allowed.
func (s *Session) SetPlaybackState(state PlaybackState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	s.notify(PlaybackStateChanged{State: state})
}

// SetActionHandler installs handler for action. A nil handler removes
// the current one; removing an absent handler is not an error.
func (s *Session) SetActionHandler(action Action, handler Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers.set(action, handler)
}

// HasActionHandler reports whether a custom handler is registered for
// action.
func (s *Session) HasActionHandler(action Action) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.handlers.resolve(action) != nil
}

// HandleAction is the inbound entry point for host-delivered actions.
// A registered custom handler wins over the default behavior; a
// handler error is logged and swallowed, never falling through to the
// default. The handler is invoked with no session lock held, so it may
// call back into the session.
func (s *Session) HandleAction(action Action) {
	s.log.Debug().Stringer("action", action).Msg("handle media session action")

	s.mu.RLock()
	handler := s.handlers.resolve(action)
	inst := s.instance
	s.mu.RUnlock()

	if handler != nil {
		if err := handler.Handle(action); err != nil {
			s.log.Warn().Err(err).Stringer("action", action).
				Msg("media session action handler failed")
		}
		return
	}

	if inst == nil {
		return
	}

	// Default action.
	switch action {
	case ActionPlay:
		inst.Play()
	case ActionPause:
		inst.Pause()
	case ActionSeekBackward, ActionSeekForward, ActionPreviousTrack,
		ActionNextTrack, ActionSkipAd, ActionStop, ActionSeekTo:
		// No default behavior.
	}
}

// SetPositionState validates state and, when an instance is bound,
// pushes it into the instance. An empty candidate clears the position
// state instead. Validation runs identically without an instance; only
// the instance mutation is skipped.
func (s *Session) SetPositionState(state PositionState) error {
	s.mu.RLock()
	inst := s.instance
	s.mu.RUnlock()

	if state.isEmpty() {
		if inst != nil {
			inst.ResetPositionTracking()
		}
		return nil
	}

	if err := state.validate(); err != nil {
		return err
	}

	if inst == nil {
		return nil
	}

	inst.SetDuration(*state.Duration)

	// Rate defaults to 1.0 when absent; the instance may still reject
	// it, and that error propagates.
	rate := 1.0
	if state.PlaybackRate != nil {
		rate = *state.PlaybackRate
	}
	if err := inst.SetPlaybackRate(rate); err != nil {
		return err
	}

	// Position defaults to zero when absent.
	pos := 0.0
	if state.Position != nil {
		pos = *state.Position
	}
	inst.SetCurrentTime(pos)

	return nil
}

func (s *Session) notify(e Event) {
	if s.host == nil {
		return
	}
	s.host.Notify(e)
}
