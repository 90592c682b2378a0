package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.UI.Accent != "" || cfg.History.Disabled {
		t.Errorf("missing file should yield zero config, got %+v", cfg)
	}
}

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
queries_file = "/srv/fsq/queries.yaml"

[ui]
accent = "#7aa2f7"
code_theme = "dracula"

[history]
disabled = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.UI.Accent != "#7aa2f7" || cfg.UI.CodeTheme != "dracula" {
		t.Errorf("ui: got %+v", cfg.UI)
	}
	if !cfg.History.Disabled {
		t.Error("history.disabled not parsed")
	}
	if cfg.QueriesFile != "/srv/fsq/queries.yaml" {
		t.Errorf("queries_file: got %q", cfg.QueriesFile)
	}
}

func TestLoadFromInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("invalid toml should fail")
	}
}

func TestQueriesPathDefaultsNextToConfig(t *testing.T) {
	cfg := &Config{}
	got := cfg.QueriesPath("/etc/fsq/config.toml")
	if got != filepath.Join("/etc/fsq", "queries.yaml") {
		t.Errorf("got %q", got)
	}

	cfg.QueriesFile = "/elsewhere/q.yaml"
	if got := cfg.QueriesPath("/etc/fsq/config.toml"); got != "/elsewhere/q.yaml" {
		t.Errorf("override ignored: %q", got)
	}
}

func TestHistoryPathHonorsXDGState(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/xdg-state")
	cfg := &Config{}
	want := filepath.Join("/tmp/xdg-state", "fsq", "history.db")
	if got := cfg.HistoryPath(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	cfg.History.File = "/custom/h.db"
	if got := cfg.HistoryPath(); got != "/custom/h.db" {
		t.Errorf("override ignored: %q", got)
	}
}
