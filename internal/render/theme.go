// Package render produces the terminal output for plans: styled day
// tables and per-subject summaries.
package render

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, readable on dark terminals
var (
	primary   = lipgloss.Color("#8B5CF6") // Purple
	secondary = lipgloss.Color("#14B8A6") // Teal
	accent    = lipgloss.Color("#F97316") // Orange
	success   = lipgloss.Color("#22C55E") // Green
	danger    = lipgloss.Color("#F43F5E") // Rose
	text      = lipgloss.Color("#F8FAFC") // White
	textDim   = lipgloss.Color("#94A3B8") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	dayHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(secondary)

	dimStyle = lipgloss.NewStyle().
			Foreground(textDim)

	bodyStyle = lipgloss.NewStyle().
			Foreground(text)

	doneStyle = lipgloss.NewStyle().
			Foreground(success)

	missedStyle = lipgloss.NewStyle().
			Foreground(danger)

	revisionStyle = lipgloss.NewStyle().
			Foreground(accent)
)

// kindBadge renders the fixed-width slot kind label.
var kindBadge = map[string]string{
	"study":    bodyStyle.Render("study   "),
	"revision": revisionStyle.Render("revision"),
	"break":    dimStyle.Render("break   "),
	"rest":     dimStyle.Render("rest    "),
}
