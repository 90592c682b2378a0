package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/fsq/internal/atomicfile"
)

// SavedQuery is a named query stored in queries.yaml.
type SavedQuery struct {
	Name        string `yaml:"name" json:"name"`
	Query       string `yaml:"query" json:"query"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

type queriesFile struct {
	Queries []SavedQuery `yaml:"queries"`
}

// LoadQueries reads saved queries from path. A missing file is an
// empty set, not an error.
func LoadQueries(path string) ([]SavedQuery, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read saved queries %s: %w", path, err)
	}

	var file queriesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse saved queries %s: %w", path, err)
	}
	return file.Queries, nil
}

// SaveQueries writes saved queries to path atomically, sorted by name.
func SaveQueries(path string, queries []SavedQuery) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("saved queries path is required")
	}

	sorted := make([]SavedQuery, len(queries))
	copy(sorted, queries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	data, err := yaml.Marshal(queriesFile{Queries: sorted})
	if err != nil {
		return fmt.Errorf("failed to encode saved queries: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := atomicfile.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write saved queries %s: %w", path, err)
	}
	return nil
}

// FindQuery looks a saved query up by name.
func FindQuery(queries []SavedQuery, name string) (SavedQuery, bool) {
	for _, q := range queries {
		if q.Name == name {
			return q, true
		}
	}
	return SavedQuery{}, false
}

// AddQuery appends a saved query, rejecting duplicate names.
func AddQuery(queries []SavedQuery, q SavedQuery) ([]SavedQuery, error) {
	if strings.TrimSpace(q.Name) == "" {
		return nil, fmt.Errorf("saved query name is required")
	}
	if strings.TrimSpace(q.Query) == "" {
		return nil, fmt.Errorf("saved query text is required")
	}
	if _, exists := FindQuery(queries, q.Name); exists {
		return nil, fmt.Errorf("saved query %q already exists", q.Name)
	}
	return append(queries, q), nil
}

// RemoveQuery removes a saved query by name.
func RemoveQuery(queries []SavedQuery, name string) ([]SavedQuery, error) {
	for i, q := range queries {
		if q.Name == name {
			return append(queries[:i:i], queries[i+1:]...), nil
		}
	}
	return nil, fmt.Errorf("saved query %q not found", name)
}
