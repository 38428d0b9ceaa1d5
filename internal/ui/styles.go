// Package ui provides terminal output styling for the Arcana CLI.
package ui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// defaultAccent is the fallback accent color (soft purple).
const defaultAccent = "#A78BFA"

// Color palette
// - Default (white/black): Primary text
// - Accent (soft purple, configurable): Highlights, slugs, interactive elements
// - Muted (gray): Secondary info, positions
// - No colored success/error/warning - use unicode symbols only

var (
	// Accent style for slugs, shortcodes, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info, hints, byte positions
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentBold combines accent color with bold
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent)).Bold(true)
)

var accentOverride string

var validAccent = regexp.MustCompile(`^(#[0-9a-fA-F]{6}|\d{1,3})$`)

// ConfigureTheme applies the user's accent color from config. Invalid
// values are ignored and the default palette stays in place.
func ConfigureTheme(accent string) {
	accent = strings.TrimSpace(accent)
	if accent == "" || !validAccent.MatchString(accent) {
		return
	}
	accentOverride = accent
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(accent))
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true)
}

// AccentColor returns the configured accent color, if any.
func AccentColor() (string, bool) {
	if accentOverride != "" {
		return accentOverride, true
	}
	return defaultAccent, true
}
