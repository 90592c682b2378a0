// Package listing implements the plain directory listing mode: a
// flag-driven walk with hidden-entry filtering, name patterns, sorting
// and grouping, without going through the query language.
package listing

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aidanlsb/fsq/internal/fileinfo"
)

// Sort orders for listings.
type Sort string

const (
	SortName     Sort = "name"     // ascending
	SortSize     Sort = "size"     // largest first
	SortModified Sort = "modified" // newest first
	SortType     Sort = "type"     // by extension, ascending
)

// Group orders for listings.
type Group string

const (
	GroupNone      Group = "none"
	GroupFolder    Group = "folder"    // directories first
	GroupExtension Group = "extension" // clustered by extension
)

// Options controls a listing.
type Options struct {
	Recursive bool
	All       bool   // include hidden entries
	Pattern   string // doublestar glob matched against entry names
	SortBy    Sort
	GroupBy   Group
}

// ParseSort validates a --sort flag value.
func ParseSort(s string) (Sort, error) {
	switch Sort(strings.ToLower(s)) {
	case SortName, SortSize, SortModified, SortType:
		return Sort(strings.ToLower(s)), nil
	default:
		return "", fmt.Errorf("invalid sort %q: expected name, size, modified or type", s)
	}
}

// ParseGroup validates a --group-by flag value.
func ParseGroup(s string) (Group, error) {
	switch Group(strings.ToLower(s)) {
	case GroupNone, GroupFolder, GroupExtension:
		return Group(strings.ToLower(s)), nil
	default:
		return "", fmt.Errorf("invalid group %q: expected none, folder or extension", s)
	}
}

// List enumerates the entries under root per opts. The root itself is
// not included. Unreadable sub-entries are skipped; a bad root fails.
func List(root string, opts Options) ([]*fileinfo.FileInfo, error) {
	if opts.Pattern != "" && !doublestar.ValidatePattern(opts.Pattern) {
		return nil, fmt.Errorf("invalid pattern %q", opts.Pattern)
	}

	var results []*fileinfo.FileInfo
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("cannot list %s: %w", root, err)
			}
			return nil
		}
		if path == root {
			return nil
		}

		hidden := strings.HasPrefix(d.Name(), ".")
		if hidden && !opts.All {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		keep := true
		if opts.Pattern != "" {
			ok, merr := doublestar.Match(opts.Pattern, d.Name())
			if merr != nil {
				return fmt.Errorf("invalid pattern %q: %w", opts.Pattern, merr)
			}
			keep = ok
		}
		if keep {
			info, ierr := d.Info()
			if ierr == nil {
				results = append(results, fileinfo.FromStat(path, info))
			}
		}

		if !opts.Recursive && d.IsDir() {
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortEntries(results, opts.SortBy)
	groupEntries(results, opts.GroupBy)
	return results, nil
}

// TotalSize sums the sizes of regular entries in a listing.
func TotalSize(entries []*fileinfo.FileInfo) int64 {
	var total int64
	for _, fi := range entries {
		if !fi.IsDir {
			total += fi.Size
		}
	}
	return total
}

func sortEntries(entries []*fileinfo.FileInfo, by Sort) {
	switch by {
	case SortSize:
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Size > entries[j].Size })
	case SortModified:
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Modified.After(entries[j].Modified) })
	case SortType:
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Extension < entries[j].Extension })
	default:
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	}
}

// groupEntries re-sorts stably so the sort order survives within each
// group.
func groupEntries(entries []*fileinfo.FileInfo, by Group) {
	switch by {
	case GroupFolder:
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].IsDir && !entries[j].IsDir })
	case GroupExtension:
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Extension < entries[j].Extension })
	}
}
