// Package config resolves where the activity database lives and the few
// presentation defaults the CLI honors. Configuration comes from an optional
// YAML file; flags override it, and everything has a working default, so a
// fresh installation needs no setup at all.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const appName = "virtue"

// Config holds the resolved application configuration.
type Config struct {
	// Database is the SQLite file path.
	Database string `yaml:"database"`
	// ListLimit caps how many activities `virtue list` prints by default.
	// Zero means unlimited.
	ListLimit int `yaml:"list_limit"`
}

// Default returns the built-in configuration: a database under the user's
// local data directory and no list cap.
func Default() Config {
	return Config{Database: defaultDatabasePath()}
}

// DefaultPath returns the standard config file location,
// ~/.config/virtue/config.yaml.
func DefaultPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// Load reads the config file at path, falling back to defaults for absent
// fields. A missing file is not an error — it simply yields Default().
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Database == "" {
		cfg.Database = defaultDatabasePath()
	}
	if cfg.ListLimit < 0 {
		return Config{}, fmt.Errorf("parse config %s: list_limit must not be negative", path)
	}
	return cfg, nil
}

func defaultDatabasePath() string {
	return filepath.Join(homeDir(), ".local", "share", appName, appName+".db")
}

func configDir() string {
	return filepath.Join(homeDir(), ".config", appName)
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	if home == "" {
		home = "."
	}
	return home
}
