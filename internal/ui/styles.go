package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
// - Default (white/black): Primary text
// - Accent (soft purple #A78BFA): Highlights, paths, interactive elements
// - Muted (gray): Secondary info, hints
// - No colored success/error/warning - use unicode symbols only

const defaultAccent = "#A78BFA"

var (
	// Accent style for file paths and highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info and hints
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	// Header style for table headers
	Header = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")).Bold(true)

	accentColor = defaultAccent
	codeTheme   string
)

// ConfigureTheme applies the configured accent color to the shared
// styles. Values like "none" or "off" disable the accent entirely.
func ConfigureTheme(accent string) {
	if strings.TrimSpace(accent) == "" {
		return
	}
	color, ok := normalizeAccentColor(accent)
	if !ok {
		Accent = lipgloss.NewStyle()
		accentColor = ""
		return
	}
	accentColor = color
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// ConfigureMarkdownCodeTheme sets the Chroma theme used for rendered
// markdown code blocks.
func ConfigureMarkdownCodeTheme(theme string) {
	codeTheme = strings.TrimSpace(theme)
}

// AccentColor returns the active accent color, if any.
func AccentColor() (string, bool) {
	if accentColor == "" {
		return "", false
	}
	return accentColor, true
}

// DisableStyling strips all colors and emphasis, for --no-color and
// non-TTY output.
func DisableStyling() {
	Accent = lipgloss.NewStyle()
	Muted = lipgloss.NewStyle()
	Bold = lipgloss.NewStyle()
	Header = lipgloss.NewStyle()
	accentColor = ""
}

// normalizeAccentColor validates an accent setting: an ANSI color code
// ("0" to "255") or a hex color ("#RGB" or "#RRGGBB"). Values like
// "none", "off" and "default" disable the accent.
func normalizeAccentColor(value string) (string, bool) {
	v := strings.TrimSpace(strings.ToLower(value))
	switch v {
	case "", "none", "off", "default":
		return "", false
	}

	if strings.HasPrefix(v, "#") {
		hex := v[1:]
		if !isHex(hex) {
			return "", false
		}
		switch len(hex) {
		case 3:
			// Expand #abc to #aabbcc.
			var sb strings.Builder
			sb.WriteByte('#')
			for i := 0; i < 3; i++ {
				sb.WriteByte(hex[i])
				sb.WriteByte(hex[i])
			}
			return sb.String(), true
		case 6:
			return v, true
		default:
			return "", false
		}
	}

	if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 255 {
		return strconv.Itoa(n), true
	}
	return "", false
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
