package ui

import (
	"io/fs"
	"testing"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
	}
	for _, tt := range tests {
		if got := FormatSize(tt.size); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestFormatMode(t *testing.T) {
	tests := []struct {
		mode  uint32
		isDir bool
		want  string
	}{
		{0o755, false, "-rwxr-xr-x"},
		{0o644, false, "-rw-r--r--"},
		{0o600, false, "-rw-------"},
		{0o755, true, "drwxr-xr-x"},
	}
	for _, tt := range tests {
		if got := FormatMode(fs.FileMode(tt.mode), tt.isDir); got != tt.want {
			t.Errorf("FormatMode(%o, %v) = %q, want %q", tt.mode, tt.isDir, got, tt.want)
		}
	}
}

func TestTableAlignment(t *testing.T) {
	tbl := NewTable(3)
	tbl.SetHeader("NAME", "SIZE", "MODIFIED")
	tbl.AddRow("a.txt", "512 B", "2025-01-01 10:00")
	tbl.AddRow("longer-name.log", "2.0 KB", "2025-01-02 11:00")

	out := tbl.String()
	if out == "" {
		t.Fatal("empty render")
	}
	if tbl.Len() != 2 {
		t.Errorf("Len = %d, want 2", tbl.Len())
	}
}
