package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aidanlsb/fsq/internal/history"
)

func TestRunStatementRecordsOnlySuccessfulRuns(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// A failed run must not be persisted.
	missing := filepath.Join(dir, "missing")
	if err := runStatement("SELECT * FROM " + missing); err == nil {
		t.Fatal("expected error for missing root")
	}

	store, err := history.Open(getConfig().HistoryPath())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := store.Last(); !errors.Is(err, history.ErrNoHistory) {
		t.Errorf("after failed run: got %v, want ErrNoHistory", err)
	}
	store.Close()

	// A successful run is recorded with its match count.
	statement := "SELECT * FROM " + dir
	captureStdout(t, func() {
		if err := runStatement(statement); err != nil {
			t.Errorf("runStatement: %v", err)
		}
	})

	store, err = history.Open(getConfig().HistoryPath())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()
	last, err := store.Last()
	if err != nil {
		t.Fatalf("Last: %v", err)
	}
	if last.Query != statement {
		t.Errorf("query: got %q, want %q", last.Query, statement)
	}
	if last.Matches != 1 {
		t.Errorf("matches: got %d, want 1", last.Matches)
	}
	if last.DurationMs < 0 {
		t.Errorf("duration_ms: got %d", last.DurationMs)
	}
	if last.StartedAt.IsZero() {
		t.Error("started_at is zero")
	}
}
