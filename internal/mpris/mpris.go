//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/events"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/mediasession/internal/playback"
	"github.com/llehouerou/mediasession/internal/session"
)

// Options configures the MPRIS front-end.
type Options struct {
	Name     string // D-Bus name suffix (org.mpris.MediaPlayer2.<Name>)
	Identity string // player name shown by desktop controllers
}

// Adapter exposes a media session over MPRIS and feeds controller
// actions back into it. It implements session.Host so session changes
// surface as D-Bus property updates.
type Adapter struct {
	server *server.Server
	events *events.EventHandler

	mu      sync.RWMutex
	session *session.Session
	element *playback.Element
}

// New creates an MPRIS adapter. Attach must be called before Start.
func New(opts Options) (*Adapter, error) {
	a := &Adapter{}

	rootAdapter := &rootAdapter{identity: opts.Identity}
	playerAdapter := &playerAdapter{adapter: a}

	a.server = server.NewServer(opts.Name, rootAdapter, playerAdapter)
	a.events = events.NewEventHandler(a.server)
	return a, nil
}

// Attach binds the session and element the adapter reports on. A later
// call replaces the earlier binding.
func (a *Adapter) Attach(sess *session.Session, elem *playback.Element) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = sess
	a.element = elem
}

// Start serves the MPRIS interfaces in the background.
func (a *Adapter) Start() {
	go func() {
		_ = a.server.Listen()
	}()
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// Notify implements session.Host.
func (a *Adapter) Notify(e session.Event) {
	if a.events == nil {
		return
	}
	switch e.(type) {
	case session.SetMetadata:
		_ = a.events.Player.OnTitle()
	case session.PlaybackStateChanged:
		_ = a.events.Player.OnPlayback()
	}
}

func (a *Adapter) current() (*session.Session, *playback.Element) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session, a.element
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct {
	identity string
}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - the embedding page owns the lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return r.identity, nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"http", "https", "file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "video/mp4"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter by routing
// controller intents through the session's action dispatch.
type playerAdapter struct {
	adapter *Adapter
}

func (p *playerAdapter) handle(action session.Action) error {
	sess, _ := p.adapter.current()
	if sess == nil {
		return nil
	}
	sess.HandleAction(action)
	return nil
}

func (p *playerAdapter) Next() error {
	return p.handle(session.ActionNextTrack)
}

func (p *playerAdapter) Previous() error {
	return p.handle(session.ActionPreviousTrack)
}

func (p *playerAdapter) Pause() error {
	return p.handle(session.ActionPause)
}

func (p *playerAdapter) PlayPause() error {
	_, elem := p.adapter.current()
	if elem != nil && elem.Snapshot().Playing {
		return p.handle(session.ActionPause)
	}
	return p.handle(session.ActionPlay)
}

func (p *playerAdapter) Stop() error {
	return p.handle(session.ActionStop)
}

func (p *playerAdapter) Play() error {
	return p.handle(session.ActionPlay)
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	if offset < 0 {
		return p.handle(session.ActionSeekBackward)
	}
	return p.handle(session.ActionSeekForward)
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	sess, elem := p.adapter.current()
	if sess == nil || elem == nil {
		return nil
	}
	duration := elem.Snapshot().Duration
	pos := float64(position) / 1e6
	return sess.SetPositionState(session.PositionState{
		Duration: &duration,
		Position: &pos,
	})
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	sess, _ := p.adapter.current()
	if sess == nil {
		return types.PlaybackStatusStopped, nil
	}
	switch sess.PlaybackState() {
	case session.StatePlaying:
		return types.PlaybackStatusPlaying, nil
	case session.StatePaused:
		return types.PlaybackStatusPaused, nil
	case session.StateNone:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	_, elem := p.adapter.current()
	if elem == nil {
		return 1.0, nil
	}
	return elem.Snapshot().Rate, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Rate changes go through the position state
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	sess, elem := p.adapter.current()
	if sess == nil {
		return types.Metadata{}, nil
	}
	md := sess.Metadata()
	if md == nil {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(md.Title, md.Artist)),
		Title:   md.Title,
		Artist:  []string{md.Artist},
		Album:   md.Album,
	}
	if elem != nil {
		meta.Length = types.Microseconds(elem.Snapshot().Duration * 1e6)
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil // Volume control not exposed by the session
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	_, elem := p.adapter.current()
	if elem == nil {
		return 0, nil
	}
	return int64(elem.Snapshot().Position * 1e6), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	sess, _ := p.adapter.current()
	return sess != nil && sess.HasActionHandler(session.ActionNextTrack), nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	sess, _ := p.adapter.current()
	return sess != nil && sess.HasActionHandler(session.ActionPreviousTrack), nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(title, artist string) string {
	h := fnv.New64a()
	h.Write([]byte(title))
	h.Write([]byte{0})
	h.Write([]byte(artist))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
