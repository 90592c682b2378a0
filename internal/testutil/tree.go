// Package testutil provides reusable test utilities for fsq tests.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestTree builds a temporary directory tree for traversal tests.
// Call Build() to materialize it under t.TempDir().
type TestTree struct {
	Path     string
	t        *testing.T
	files    map[string]treeFile
	dirs     []string
	symlinks map[string]string
}

type treeFile struct {
	content string
	mode    fs.FileMode
	modTime time.Time
}

// NewTestTree creates a new tree builder.
func NewTestTree(t *testing.T) *TestTree {
	t.Helper()
	return &TestTree{
		t:        t,
		files:    make(map[string]treeFile),
		symlinks: make(map[string]string),
	}
}

// WithFile adds a regular file with mode 0644.
func (tr *TestTree) WithFile(path, content string) *TestTree {
	return tr.WithFileMode(path, content, 0o644)
}

// WithFileMode adds a regular file with an explicit mode.
func (tr *TestTree) WithFileMode(path, content string, mode fs.FileMode) *TestTree {
	tr.files[path] = treeFile{content: content, mode: mode}
	return tr
}

// WithFileTime adds a regular file with an explicit modification time.
func (tr *TestTree) WithFileTime(path, content string, modTime time.Time) *TestTree {
	tr.files[path] = treeFile{content: content, mode: 0o644, modTime: modTime}
	return tr
}

// WithDir adds an empty directory.
func (tr *TestTree) WithDir(path string) *TestTree {
	tr.dirs = append(tr.dirs, path)
	return tr
}

// WithSymlink adds a symlink at path pointing at target. Target is
// relative to the tree root.
func (tr *TestTree) WithSymlink(path, target string) *TestTree {
	tr.symlinks[path] = target
	return tr
}

// Build creates the tree under a fresh temp directory and returns the
// builder for chaining.
func (tr *TestTree) Build() *TestTree {
	tr.t.Helper()
	tr.Path = tr.t.TempDir()

	for _, dir := range tr.dirs {
		if err := os.MkdirAll(filepath.Join(tr.Path, dir), 0o755); err != nil {
			tr.t.Fatalf("failed to create directory %s: %v", dir, err)
		}
	}
	for path, f := range tr.files {
		tr.writeFile(path, f)
	}
	for path, target := range tr.symlinks {
		full := filepath.Join(tr.Path, path)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			tr.t.Fatalf("failed to create directory for %s: %v", path, err)
		}
		if err := os.Symlink(filepath.Join(tr.Path, target), full); err != nil {
			tr.t.Fatalf("failed to create symlink %s: %v", path, err)
		}
	}
	return tr
}

// Join resolves a path relative to the tree root.
func (tr *TestTree) Join(rel string) string {
	return filepath.Join(tr.Path, rel)
}

// Mode returns the permission bits of an entry.
func (tr *TestTree) Mode(rel string) fs.FileMode {
	tr.t.Helper()
	info, err := os.Lstat(tr.Join(rel))
	if err != nil {
		tr.t.Fatalf("failed to stat %s: %v", rel, err)
	}
	return info.Mode().Perm()
}

func (tr *TestTree) writeFile(relPath string, f treeFile) {
	tr.t.Helper()
	fullPath := filepath.Join(tr.Path, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		tr.t.Fatalf("failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(f.content), f.mode); err != nil {
		tr.t.Fatalf("failed to write file %s: %v", relPath, err)
	}
	// WriteFile's mode is masked by umask; chmod to the exact bits.
	if err := os.Chmod(fullPath, f.mode); err != nil {
		tr.t.Fatalf("failed to chmod %s: %v", relPath, err)
	}
	if !f.modTime.IsZero() {
		if err := os.Chtimes(fullPath, f.modTime, f.modTime); err != nil {
			tr.t.Fatalf("failed to set times on %s: %v", relPath, err)
		}
	}
}
