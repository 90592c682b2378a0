package history

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state", "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openStore(t)

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	queries := []string{
		"SELECT * FROM /tmp",
		"SELECT * FROM /var/log WHERE extension = 'log'",
		"UPDATE /tmp/scripts SET permissions = '755'",
	}
	for i, q := range queries {
		started := base.Add(time.Duration(i) * time.Minute)
		if err := s.Record(q, i, started, time.Duration(i)*time.Millisecond); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := s.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	// Newest first.
	if entries[0].Query != queries[2] || entries[1].Query != queries[1] {
		t.Errorf("unexpected order: %+v", entries)
	}
	if entries[0].Matches != 2 {
		t.Errorf("matches: got %d, want 2", entries[0].Matches)
	}
	if entries[0].DurationMs != 2 {
		t.Errorf("duration_ms: got %d, want 2", entries[0].DurationMs)
	}
	if !entries[0].StartedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("started_at: got %v", entries[0].StartedAt)
	}
}

func TestLast(t *testing.T) {
	s := openStore(t)

	if _, err := s.Last(); !errors.Is(err, ErrNoHistory) {
		t.Errorf("empty store: got %v, want ErrNoHistory", err)
	}

	if err := s.Record("SELECT * FROM /tmp", 4, time.Now(), 12*time.Millisecond); err != nil {
		t.Fatalf("Record: %v", err)
	}
	last, err := s.Last()
	if err != nil {
		t.Fatalf("Last: %v", err)
	}
	if last.Query != "SELECT * FROM /tmp" || last.Matches != 4 {
		t.Errorf("got %+v", last)
	}
}

func TestClear(t *testing.T) {
	s := openStore(t)
	if err := s.Record("SELECT * FROM /tmp", 0, time.Now(), 0); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := s.Last(); !errors.Is(err, ErrNoHistory) {
		t.Errorf("after clear: got %v, want ErrNoHistory", err)
	}
}
