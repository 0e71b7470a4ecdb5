// Package tui provides the terminal user interface for ctt.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the tracker.
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#10B981") // Green
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorWarning   = lipgloss.Color("#F59E0B") // Yellow
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorSuccess   = lipgloss.Color("#10B981") // Green
	ColorActive    = lipgloss.Color("#3B82F6") // Blue
	ColorBorder    = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles for the TUI.
var (
	// StyleTitle is used for the header.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// StyleSubtitle is used for section headings and secondary information.
	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleCompany is used for company names.
	StyleCompany = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleFavorite is used for the favorite star.
	StyleFavorite = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleDuration is used for elapsed time values.
	StyleDuration = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorActive)

	// StyleNote is used for note text.
	StyleNote = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E5E7EB"})

	// StyleActive is used for the running company.
	StyleActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	// StyleInactive is used for paused status.
	StyleInactive = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleCursor marks the highlighted row.
	StyleCursor = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorActive)

	// StyleWarning is used for transient messages.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleError is used for error messages.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleHelp is used for help text at the bottom.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	// StyleHelpKey is used for keyboard shortcut keys.
	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	// StyleHelpDesc is used for keyboard shortcut descriptions.
	StyleHelpDesc = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Box styles for different sections.
var (
	// StyleStatusBox is used for the status section while paused.
	StyleStatusBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2).
			MarginBottom(1)

	// StyleActiveStatusBox is used while a company is tracking.
	StyleActiveStatusBox = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorSuccess).
				Padding(1, 2).
				MarginBottom(1)

	// StyleListBox is used for the company lists and the notes section.
	StyleListBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginBottom(1)

	// StyleFocusedBox is used for the pane that has keyboard focus.
	StyleFocusedBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1).
			MarginBottom(1)

	// StyleAlertBox is used for the blocking alert modal.
	StyleAlertBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorWarning).
			Padding(1, 3)
)

// FormatCompany renders a company name with its favorite star.
func FormatCompany(name string, favorite bool) string {
	if favorite {
		return StyleFavorite.Render("★") + " " + StyleCompany.Render(name)
	}
	return "  " + StyleCompany.Render(name)
}

// boxFor picks the focused or plain list box.
func boxFor(focused bool) lipgloss.Style {
	if focused {
		return StyleFocusedBox
	}
	return StyleListBox
}
