// Package config loads keyhold's configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Backend selects where secrets and their index are persisted.
type Backend string

const (
	// BackendKeyring stores secrets in the system keychain,
	// falling back to a plain-text file on platforms without one.
	// This is the default.
	BackendKeyring Backend = "keyring"

	// BackendFile stores secrets in a plain-text file,
	// with the index in a JSON file next to it.
	BackendFile Backend = "file"
)

// Config holds keyhold's configuration.
//
// Zero values mean defaults, so a missing or partial file is fine.
type Config struct {
	// SetEnvVars exports tracked secrets into the environment
	// of commands started with 'keyhold run' by default.
	SetEnvVars bool `yaml:"setEnvVars"`

	// Backend selects the secret storage backend.
	Backend Backend `yaml:"backend"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{Backend: BackendKeyring}
}

// Load reads the configuration file at path.
// A missing file yields the default configuration;
// a malformed file is an error.
func Load(path string) (*Config, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read %v: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(bs, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal %v: %w", path, err)
	}

	switch cfg.Backend {
	case "", BackendKeyring, BackendFile:
		if cfg.Backend == "" {
			cfg.Backend = BackendKeyring
		}
	default:
		return nil, fmt.Errorf("%v: unknown backend %q", path, cfg.Backend)
	}

	return cfg, nil
}

// DefaultPath returns the default location of the configuration file:
// $XDG_CONFIG_HOME/keyhold/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("determine config directory: %w", err)
	}
	return filepath.Join(dir, "keyhold", "config.yaml"), nil
}

// DataDir returns the directory where keyhold keeps local state:
// $XDG_DATA_HOME/keyhold, or ~/.local/share/keyhold if unset.
func DataDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "keyhold"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "keyhold"), nil
}
