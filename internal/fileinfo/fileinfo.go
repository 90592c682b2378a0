// Package fileinfo builds metadata snapshots of filesystem entries.
// A snapshot captures everything the query engine and listing mode can
// ask about, taken once per entry so a query sees a consistent view.
package fileinfo

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileInfo is a point-in-time metadata snapshot of one filesystem entry.
// Created, Accessed and Owner are nil/empty on platforms that do not
// report them; queries treat the missing fields as null.
type FileInfo struct {
	Path        string     `json:"path"`
	Name        string     `json:"name"`
	Size        int64      `json:"size"`
	Extension   string     `json:"extension,omitempty"`
	Permissions uint32     `json:"permissions"`
	Modified    time.Time  `json:"modified"`
	Created     *time.Time `json:"created,omitempty"`
	Accessed    *time.Time `json:"accessed,omitempty"`
	Owner       string     `json:"owner,omitempty"`
	IsDir       bool       `json:"is_directory"`
	IsSymlink   bool       `json:"is_symlink"`
}

// FromPath snapshots the entry at path without following symlinks.
func FromPath(path string) (*FileInfo, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	return FromStat(path, info), nil
}

// FromStat builds a snapshot from an already-collected os.FileInfo.
func FromStat(path string, info os.FileInfo) *FileInfo {
	fi := &FileInfo{
		Path:        path,
		Name:        info.Name(),
		Size:        info.Size(),
		Permissions: uint32(info.Mode().Perm()),
		Modified:    info.ModTime(),
		IsDir:       info.IsDir(),
		IsSymlink:   info.Mode()&fs.ModeSymlink != 0,
	}
	// Dotfiles like .bashrc are names, not extensions.
	if ext := filepath.Ext(fi.Name); !fi.IsDir && ext != fi.Name {
		fi.Extension = strings.TrimPrefix(ext, ".")
	}
	fi.Created, fi.Accessed, fi.Owner = statExtra(info)
	return fi
}

// IsExecutable reports whether the entry is a file with any execute bit
// set. Directories are searchable rather than executable and report false.
func (fi *FileInfo) IsExecutable() bool {
	return !fi.IsDir && fi.Permissions&0o111 != 0
}

// Mode returns the permission bits as an fs.FileMode.
func (fi *FileInfo) Mode() fs.FileMode {
	return fs.FileMode(fi.Permissions)
}
