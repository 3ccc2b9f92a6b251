package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Identity  string `koanf:"identity"`   // name shown by platform media controls
	SourceURL string `koanf:"source_url"` // address of the embedding page, fallback metadata title
	LogLevel  string `koanf:"log_level"`  // zerolog level name (default: "info")

	// Metadata optionally seeds the session metadata at startup.
	Metadata MetadataConfig `koanf:"metadata"`
}

// MetadataConfig holds the initial session metadata.
type MetadataConfig struct {
	Title  string `koanf:"title"`
	Artist string `koanf:"artist"`
	Album  string `koanf:"album"`
}

// Load reads configuration files in priority order (last wins).
func Load() (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	return parse(k)
}

func parse(k *koanf.Koanf) (*Config, error) {
	cfg := &Config{
		Identity: "mediasessiond",
		LogLevel: "info",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/mediasessiond/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, "mediasessiond", "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

// HasMetadata returns true if a metadata seed is configured.
func (c *Config) HasMetadata() bool {
	return c.Metadata.Title != "" || c.Metadata.Artist != "" || c.Metadata.Album != ""
}
