package config

import (
	"path/filepath"
	"testing"
)

func TestSavedQueriesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fsq", "queries.yaml")

	queries, err := LoadQueries(path)
	if err != nil {
		t.Fatalf("LoadQueries on missing file: %v", err)
	}
	if len(queries) != 0 {
		t.Fatalf("missing file should be empty, got %v", queries)
	}

	queries, err = AddQuery(queries, SavedQuery{
		Name:        "big-logs",
		Query:       "WITH RECURSIVE SELECT * FROM /var/log WHERE size > 1000000",
		Description: "log files over a megabyte",
	})
	if err != nil {
		t.Fatalf("AddQuery: %v", err)
	}
	queries, err = AddQuery(queries, SavedQuery{Name: "all-tmp", Query: "SELECT * FROM /tmp"})
	if err != nil {
		t.Fatalf("AddQuery: %v", err)
	}

	if err := SaveQueries(path, queries); err != nil {
		t.Fatalf("SaveQueries: %v", err)
	}

	loaded, err := LoadQueries(path)
	if err != nil {
		t.Fatalf("LoadQueries: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("got %d queries, want 2", len(loaded))
	}
	// Stored sorted by name.
	if loaded[0].Name != "all-tmp" || loaded[1].Name != "big-logs" {
		t.Errorf("order: got %v", loaded)
	}
	if q, ok := FindQuery(loaded, "big-logs"); !ok || q.Description == "" {
		t.Errorf("FindQuery: got %+v, %v", q, ok)
	}
}

func TestAddQueryValidation(t *testing.T) {
	queries := []SavedQuery{{Name: "dup", Query: "SELECT * FROM /tmp"}}

	if _, err := AddQuery(queries, SavedQuery{Name: "dup", Query: "SELECT * FROM /x"}); err == nil {
		t.Error("duplicate name accepted")
	}
	if _, err := AddQuery(queries, SavedQuery{Name: "", Query: "SELECT * FROM /x"}); err == nil {
		t.Error("empty name accepted")
	}
	if _, err := AddQuery(queries, SavedQuery{Name: "x", Query: " "}); err == nil {
		t.Error("empty query accepted")
	}
}

func TestRemoveQuery(t *testing.T) {
	queries := []SavedQuery{
		{Name: "a", Query: "SELECT * FROM /a"},
		{Name: "b", Query: "SELECT * FROM /b"},
	}

	rest, err := RemoveQuery(queries, "a")
	if err != nil {
		t.Fatalf("RemoveQuery: %v", err)
	}
	if len(rest) != 1 || rest[0].Name != "b" {
		t.Errorf("got %v", rest)
	}

	if _, err := RemoveQuery(rest, "nope"); err == nil {
		t.Error("removing unknown query should fail")
	}
}
