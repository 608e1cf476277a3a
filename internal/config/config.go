package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds application configuration.
type Config struct {
	// ServerURL is the base URL of the media server.
	ServerURL string `toml:"server_url"`
	// Token authenticates API requests.
	Token string `toml:"token"`
	// Layout selects the card layout mode: "grid" or "list".
	Layout string `toml:"layout"`
	// Debug enables logging to a file next to the config.
	Debug bool `toml:"debug"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		ServerURL: "http://localhost:8096",
		Layout:    "grid",
	}
}

// Load reads config from the TOML file. Missing files yield defaults;
// missing fields are filled from defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}

	defaults := Default()
	if cfg.ServerURL == "" {
		cfg.ServerURL = defaults.ServerURL
	}
	if cfg.Layout != "grid" && cfg.Layout != "list" {
		cfg.Layout = defaults.Layout
	}

	return cfg, nil
}

// DefaultPath returns the default config path: ~/.config/lanes/config.toml
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "lanes", "config.toml"), nil
}
