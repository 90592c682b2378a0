// Package history handles the SQLite query history database.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/aidanlsb/fsq/internal/sqlutil"
)

// Store is the SQLite history database handle.
type Store struct {
	db *sql.DB
}

// ErrNoHistory indicates the history database holds no entries yet.
var ErrNoHistory = errors.New("no query history")

// Entry is one recorded query run. Only successful runs are recorded.
type Entry struct {
	ID         int64     `json:"id"`
	Query      string    `json:"query"`
	Matches    int       `json:"matches"`
	StartedAt  time.Time `json:"started_at"`
	DurationMs int64     `json:"duration_ms"`
}

const schema = `
CREATE TABLE IF NOT EXISTS history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	query TEXT NOT NULL,
	started_at TEXT NOT NULL,
	duration_ms INTEGER NOT NULL,
	matches INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_history_started_at ON history(started_at);
`

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends a successful query run.
func (s *Store) Record(query string, matches int, startedAt time.Time, duration time.Duration) error {
	_, err := s.db.Exec(
		"INSERT INTO history (query, started_at, duration_ms, matches) VALUES (?, ?, ?, ?)",
		query, startedAt.UTC().Format(time.RFC3339), duration.Milliseconds(), matches,
	)
	if err != nil {
		return fmt.Errorf("failed to record query: %w", err)
	}
	return nil
}

// Recent returns the most recent entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		"SELECT id, query, started_at, duration_ms, matches FROM history ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	return sqlutil.ScanRows(rows, func(rows *sql.Rows) (Entry, error) {
		var e Entry
		var startedAt string
		if err := rows.Scan(&e.ID, &e.Query, &startedAt, &e.DurationMs, &e.Matches); err != nil {
			return Entry{}, fmt.Errorf("failed to scan history row: %w", err)
		}
		if t, perr := time.Parse(time.RFC3339, startedAt); perr == nil {
			e.StartedAt = t
		}
		return e, nil
	})
}

// Last returns the most recent entry.
func (s *Store) Last() (Entry, error) {
	entries, err := s.Recent(1)
	if err != nil {
		return Entry{}, err
	}
	if len(entries) == 0 {
		return Entry{}, ErrNoHistory
	}
	return entries[0], nil
}

// Clear removes all recorded entries.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM history"); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
