package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := parse(koanf.New("."))
	if err != nil {
		t.Fatalf("parse() error = %v", err)
	}

	if cfg.Identity != "mediasessiond" {
		t.Errorf("Identity = %q, want %q", cfg.Identity, "mediasessiond")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.SourceURL != "" {
		t.Errorf("SourceURL = %q, want empty", cfg.SourceURL)
	}
	if cfg.HasMetadata() {
		t.Error("HasMetadata() = true for empty config")
	}
}

func TestParse_FromTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
identity = "My Player"
source_url = "https://example.com/live"
log_level = "debug"

[metadata]
title = "Morning Show"
artist = "Station One"
album = "Live"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg, err := parse(k)
	if err != nil {
		t.Fatalf("parse() error = %v", err)
	}

	if cfg.Identity != "My Player" {
		t.Errorf("Identity = %q, want %q", cfg.Identity, "My Player")
	}
	if cfg.SourceURL != "https://example.com/live" {
		t.Errorf("SourceURL = %q", cfg.SourceURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if !cfg.HasMetadata() {
		t.Fatal("HasMetadata() = false")
	}
	if cfg.Metadata.Title != "Morning Show" || cfg.Metadata.Artist != "Station One" || cfg.Metadata.Album != "Live" {
		t.Errorf("Metadata = %+v", cfg.Metadata)
	}
}

func TestHasMetadata(t *testing.T) {
	tests := []struct {
		name string
		md   MetadataConfig
		want bool
	}{
		{"empty", MetadataConfig{}, false},
		{"title only", MetadataConfig{Title: "x"}, true},
		{"artist only", MetadataConfig{Artist: "x"}, true},
		{"album only", MetadataConfig{Album: "x"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Metadata: tt.md}
			if got := cfg.HasMetadata(); got != tt.want {
				t.Errorf("HasMetadata() = %v, want %v", got, tt.want)
			}
		})
	}
}
