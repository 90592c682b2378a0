package ui

import (
	"fmt"
	"io/fs"
	"strings"
	"time"
)

// Unicode symbols for status indicators
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
)

// Success returns a success message with checkmark symbol.
func Success(msg string) string {
	return fmt.Sprintf("%s %s", SymbolSuccess, msg)
}

// Successf returns a formatted success message with checkmark symbol.
func Successf(format string, args ...any) string {
	return Success(fmt.Sprintf(format, args...))
}

// Error returns an error message with X symbol.
func Error(msg string) string {
	return fmt.Sprintf("%s %s", SymbolError, msg)
}

// Warningf returns a formatted warning message with warning symbol.
func Warningf(format string, args ...any) string {
	return fmt.Sprintf("%s %s", SymbolWarning, fmt.Sprintf(format, args...))
}

// FilePath returns an accent-styled file path.
func FilePath(path string) string {
	return Accent.Render(path)
}

// Hint returns muted hint text.
func Hint(msg string) string {
	return Muted.Render(msg)
}

// FormatSize renders a byte count in a compact human form: 512 B,
// 2.0 KB, 1.5 MB.
func FormatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

// FormatMode renders permission bits the way ls does: rwxr-xr-x.
func FormatMode(mode fs.FileMode, isDir bool) string {
	var sb strings.Builder
	if isDir {
		sb.WriteByte('d')
	} else {
		sb.WriteByte('-')
	}
	letters := "rwxrwxrwx"
	for i := 0; i < 9; i++ {
		if mode&(1<<uint(8-i)) != 0 {
			sb.WriteByte(letters[i])
		} else {
			sb.WriteByte('-')
		}
	}
	return sb.String()
}

// FormatTime renders a timestamp for table output.
func FormatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}
