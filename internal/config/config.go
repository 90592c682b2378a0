// Package config handles global fsq configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the global fsq configuration.
type Config struct {
	// QueriesFile overrides where saved queries live. Defaults to
	// queries.yaml next to the config file.
	QueriesFile string `toml:"queries_file"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`

	// History controls the query history database.
	History HistoryConfig `toml:"history"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown
	// rendering. Supported values are ANSI color codes ("0" to "255")
	// or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme used for rendered
	// markdown code blocks. Example values: "monokai", "dracula",
	// "github", "nord".
	CodeTheme string `toml:"code_theme"`
}

// HistoryConfig controls query history recording.
type HistoryConfig struct {
	// Disabled turns off history recording entirely.
	Disabled bool `toml:"disabled"`

	// File overrides the history database path. Defaults to
	// history.db under the user state directory.
	File string `toml:"file"`
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom loads the configuration from a specific path.
// Returns a default config if the file doesn't exist.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// ResolvePath resolves the effective config path from an optional
// --config override.
func ResolvePath(explicit string) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	return DefaultPath()
}

// DefaultPath returns the default config file path.
// Checks ~/.config/fsq/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "fsq", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "fsq", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// QueriesPath returns the saved-queries file path for a loaded config.
func (c *Config) QueriesPath(configPath string) string {
	if strings.TrimSpace(c.QueriesFile) != "" {
		return c.QueriesFile
	}
	return filepath.Join(filepath.Dir(ResolvePath(configPath)), "queries.yaml")
}

// HistoryPath returns the history database path for a loaded config.
func (c *Config) HistoryPath() string {
	if strings.TrimSpace(c.History.File) != "" {
		return c.History.File
	}
	return filepath.Join(stateDir(), "history.db")
}

// stateDir resolves the machine-local state directory, XDG style:
// $XDG_STATE_HOME/fsq, falling back to ~/.local/state/fsq.
func stateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "fsq")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", "fsq")
	}
	return filepath.Join(".", ".fsq-state")
}
