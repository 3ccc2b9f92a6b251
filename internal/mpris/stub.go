//go:build !linux

package mpris

import (
	"github.com/llehouerou/mediasession/internal/playback"
	"github.com/llehouerou/mediasession/internal/session"
)

// Options configures the MPRIS front-end.
type Options struct {
	Name     string
	Identity string
}

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ Options) (*Adapter, error) {
	return &Adapter{}, nil
}

// Attach is a no-op on non-Linux platforms.
func (a *Adapter) Attach(_ *session.Session, _ *playback.Element) {}

// Start is a no-op on non-Linux platforms.
func (a *Adapter) Start() {}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}

// Notify is a no-op on non-Linux platforms.
func (a *Adapter) Notify(_ session.Event) {}
