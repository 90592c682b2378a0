package listing

import (
	"testing"
	"time"

	"github.com/aidanlsb/fsq/internal/testutil"
)

func listNames(t *testing.T, root string, opts Options) []string {
	t.Helper()
	entries, err := List(root, opts)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	names := make([]string, len(entries))
	for i, fi := range entries {
		names[i] = fi.Name
	}
	return names
}

func TestListHiddenFiltering(t *testing.T) {
	tree := testutil.NewTestTree(t).
		WithFile("visible.txt", "x").
		WithFile(".hidden", "x").
		WithFile(".git/config", "x").
		WithFile("sub/nested.txt", "x").
		Build()

	names := listNames(t, tree.Path, Options{Recursive: true})
	for _, n := range names {
		if n == ".hidden" || n == "config" || n == ".git" {
			t.Errorf("hidden entry %s listed without --all", n)
		}
	}

	names = listNames(t, tree.Path, Options{Recursive: true, All: true})
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	if !seen[".hidden"] || !seen[".git"] || !seen["config"] {
		t.Errorf("hidden entries missing with --all: %v", names)
	}
}

func TestListPattern(t *testing.T) {
	tree := testutil.NewTestTree(t).
		WithFile("a.txt", "x").
		WithFile("b.txt", "x").
		WithFile("c.log", "x").
		Build()

	names := listNames(t, tree.Path, Options{Pattern: "*.txt"})
	if len(names) != 2 {
		t.Fatalf("got %v, want two txt files", names)
	}

	if _, err := List(tree.Path, Options{Pattern: "[bad"}); err == nil {
		t.Error("invalid pattern should fail")
	}
}

func TestListSorting(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tree := testutil.NewTestTree(t).
		WithFileTime("small.log", "x", base.AddDate(0, 2, 0)).
		WithFileTime("medium.txt", "xxxxx", base.AddDate(0, 1, 0)).
		WithFileTime("large.dat", "xxxxxxxxxx", base).
		Build()

	tests := []struct {
		sort Sort
		want []string
	}{
		{SortName, []string{"large.dat", "medium.txt", "small.log"}},
		{SortSize, []string{"large.dat", "medium.txt", "small.log"}},
		{SortModified, []string{"small.log", "medium.txt", "large.dat"}},
		{SortType, []string{"large.dat", "small.log", "medium.txt"}},
	}
	for _, tt := range tests {
		got := listNames(t, tree.Path, Options{SortBy: tt.sort})
		if len(got) != len(tt.want) {
			t.Fatalf("%s: got %v", tt.sort, got)
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("%s: got %v, want %v", tt.sort, got, tt.want)
				break
			}
		}
	}
}

func TestListGroupFolderKeepsSortWithinGroups(t *testing.T) {
	tree := testutil.NewTestTree(t).
		WithFile("b.txt", "x").
		WithFile("a.txt", "x").
		WithDir("zdir").
		WithDir("adir").
		Build()

	got := listNames(t, tree.Path, Options{SortBy: SortName, GroupBy: GroupFolder})
	want := []string{"adir", "zdir", "a.txt", "b.txt"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestListTotalSize(t *testing.T) {
	tree := testutil.NewTestTree(t).
		WithFile("a", "12345").
		WithFile("sub/b", "12345").
		Build()

	entries, err := List(tree.Path, Options{Recursive: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	// Directories do not count toward the total.
	if got := TotalSize(entries); got != 10 {
		t.Errorf("TotalSize = %d, want 10", got)
	}
}

func TestParseFlags(t *testing.T) {
	if _, err := ParseSort("SIZE"); err != nil {
		t.Errorf("sort is case-insensitive: %v", err)
	}
	if _, err := ParseSort("bogus"); err == nil {
		t.Error("invalid sort accepted")
	}
	if _, err := ParseGroup("folder"); err != nil {
		t.Errorf("ParseGroup: %v", err)
	}
	if _, err := ParseGroup("bogus"); err == nil {
		t.Error("invalid group accepted")
	}
}
