// Package dates provides canonical date/datetime parsing.
//
// This package exists to avoid duplicating date parsing logic across:
// - query temporal literals (modified/created/accessed comparisons)
// - listing filters and CLI date args
// - history timestamps
package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDate checks if a string is a valid YYYY-MM-DD date.
func IsValidDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD date as UTC midnight of that day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !IsValidDate(s) {
		return time.Time{}, fmt.Errorf("invalid date: %q", s)
	}
	return time.Parse("2006-01-02", s)
}

// ParseDatetime parses a datetime.
//
// Accepted formats:
// - RFC3339 (e.g. 2025-01-01T10:30:00Z, 2025-06-15T14:00:00+05:00)
// - YYYY-MM-DDTHH:MM
// - YYYY-MM-DDTHH:MM:SS
// - "YYYY-MM-DD HH:MM:SS" (space separator, as rendered in table output)
func ParseDatetime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("invalid datetime: empty")
	}

	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime: %q", s)
}

// ParseTemporal parses any temporal literal a query can carry: a
// relative day keyword (today, yesterday, tomorrow, resolved against
// the local midnight), a plain date, or a datetime.
func ParseTemporal(s string) (time.Time, error) {
	return parseTemporalAt(s, time.Now())
}

func parseTemporalAt(s string, now time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	if t, ok := resolveRelativeDay(trimmed, now); ok {
		return t, nil
	}
	if IsValidDate(trimmed) {
		return ParseDate(trimmed)
	}
	return ParseDatetime(trimmed)
}

// resolveRelativeDay resolves today/yesterday/tomorrow to the midnight
// starting that day in now's location.
func resolveRelativeDay(s string, now time.Time) (time.Time, bool) {
	anchor := startOfDay(now)
	switch strings.ToLower(s) {
	case "today":
		return anchor, true
	case "yesterday":
		return anchor.AddDate(0, 0, -1), true
	case "tomorrow":
		return anchor.AddDate(0, 0, 1), true
	default:
		return time.Time{}, false
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
