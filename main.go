// mediasessiond bridges a media session to the platform media controls
// over MPRIS: desktop controllers see the session metadata and playback
// state, and their actions are dispatched through the session back to
// the controlled playback instance.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/llehouerou/mediasession/internal/config"
	"github.com/llehouerou/mediasession/internal/mpris"
	"github.com/llehouerou/mediasession/internal/playback"
	"github.com/llehouerou/mediasession/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", cfg.LogLevel, err)
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)

	adapter, err := mpris.New(mpris.Options{
		Name:     "mediasessiond",
		Identity: cfg.Identity,
	})
	if err != nil {
		return fmt.Errorf("create mpris adapter: %w", err)
	}

	sess := session.New(adapter, cfg.SourceURL, logger)
	elem := playback.NewElement()
	sess.RegisterInstance(elem)

	if cfg.HasMetadata() {
		sess.SetMetadata(&session.Metadata{
			Title:  cfg.Metadata.Title,
			Artist: cfg.Metadata.Artist,
			Album:  cfg.Metadata.Album,
		})
	}

	adapter.Attach(sess, elem)
	adapter.Start()
	defer adapter.Close()

	logger.Info().Str("identity", cfg.Identity).Msg("media session ready")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	return nil
}
