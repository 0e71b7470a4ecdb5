package timer

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Styles for the live counter.
var (
	counterStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")) // Purple

	runningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981")) // Green

	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F59E0B")) // Yellow

	hintStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#6B7280")) // Gray
)

// FormatElapsed formats a second count as HH:MM:SS. Hours are not capped.
func FormatElapsed(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// Display renders the one-line live counter used by `ctt track`.
type Display struct {
	Writer   io.Writer
	UseColor bool
}

// NewDisplay creates a display writing to stdout with color.
func NewDisplay() *Display {
	return &Display{
		Writer:   os.Stdout,
		UseColor: true,
	}
}

func (d *Display) style(s lipgloss.Style, text string) string {
	if d.UseColor {
		return s.Render(text)
	}
	return text
}

// Render returns the counter line for a company.
func (d *Display) Render(name string, seconds int64, running bool) string {
	var state, hint string
	if running {
		state = d.style(runningStyle, "TRACKING")
		hint = "SPACE pause, Q quit"
	} else {
		state = d.style(pausedStyle, "PAUSED")
		hint = "SPACE resume, Q quit"
	}

	return fmt.Sprintf("%s %s  %s  %s",
		state,
		name,
		d.style(counterStyle, FormatElapsed(seconds)),
		d.style(hintStyle, hint))
}

// Redraw overwrites the current terminal line with line.
func (d *Display) Redraw(line string) {
	fmt.Fprint(d.Writer, "\r\033[K"+line)
}

// Finish ends the counter line.
func (d *Display) Finish() {
	fmt.Fprint(d.Writer, "\r\n")
}
