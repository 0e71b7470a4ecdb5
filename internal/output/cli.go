package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/manav03panchal/ctt/internal/model"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleCompany = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleFavorite = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleDuration = lipgloss.NewStyle().
			Bold(true)

	styleNote = lipgloss.NewStyle().
			Italic(true).
			Foreground(colorMuted)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) render(style lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return style.Render(text)
	}
	return text
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.render(styleTitle, text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.render(styleSuccess, "✓ "+text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.render(styleWarning, "⚠ "+text))
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.Println(c.render(styleError, "✗ "+text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.render(styleMuted, text))
}

// CompanyName formats a company name.
func (c *CLIFormatter) CompanyName(name string) string {
	return c.render(styleCompany, name)
}

// Duration formats an elapsed-time string.
func (c *CLIFormatter) Duration(text string) string {
	return c.render(styleDuration, text)
}

// Note formats a note.
func (c *CLIFormatter) Note(text string) string {
	return c.render(styleNote, text)
}

// Star returns the favorite marker.
func (c *CLIFormatter) Star(favorite bool) string {
	if !favorite {
		return " "
	}
	return c.render(styleFavorite, "★")
}

// PrintStatus prints the active company, or a hint when paused.
func (c *CLIFormatter) PrintStatus(active *model.Company, seconds int64) {
	if active == nil {
		c.Muted("No company is being tracked.")
		c.Muted("Use 'ctt track <id>' or run 'ctt' to pick one.")
		return
	}

	c.Printf("Currently tracking: %s\n", c.CompanyName(active.Name))
	c.Printf("  Elapsed: %s\n", c.Duration(FormatElapsed(seconds)))
}

// PrintCompanies prints the registry as a table.
func (c *CLIFormatter) PrintCompanies(companies []model.Company, timeLog model.TimeLog) {
	if len(companies) == 0 {
		c.Muted("No companies found.")
		return
	}

	rows := make([]TableRow, len(companies))
	for i, company := range companies {
		lastUsed := "-"
		if company.HasBeenUsed() {
			lastUsed = FormatCommentTime(company.LastUsedTime())
		}
		rows[i] = TableRow{Columns: []string{
			c.Star(company.IsFavorite),
			strconv.FormatInt(company.ID, 10),
			company.Name,
			FormatElapsed(timeLog.Seconds(company.ID)),
			lastUsed,
		}}
	}
	c.PrintTable([]string{"", "ID", "NAME", "ELAPSED", "LAST USED"}, rows)
}

// PrintCompanyAdded prints confirmation for a new company.
func (c *CLIFormatter) PrintCompanyAdded(company model.Company) {
	c.Success(fmt.Sprintf("Added %s (id %d)", c.CompanyName(company.Name), company.ID))
}

// PrintComments prints notes grouped under their company names.
func (c *CLIFormatter) PrintComments(comments []model.Comment, names map[int64]string) {
	if len(comments) == 0 {
		c.Muted("No notes yet.")
		return
	}

	for _, comment := range comments {
		name := names[comment.CompanyID]
		if name == "" {
			name = fmt.Sprintf("#%d", comment.CompanyID)
		}
		c.Printf("%s  %s  %s\n",
			c.render(styleMuted, FormatCommentTime(comment.Time())),
			c.CompanyName(name),
			c.render(styleMuted, fmt.Sprintf("(id %d)", comment.ID)))
		for _, line := range strings.Split(comment.Text, "\n") {
			c.Printf("  %s\n", c.Note(line))
		}
	}
}

// TableRow is one line of a table.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table. Widths are measured in terminal cells so
// styled and wide characters line up.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if w := lipgloss.Width(col); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}

	pad := func(s string, width int) string {
		return s + strings.Repeat(" ", width-lipgloss.Width(s)) + "  "
	}

	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(pad(h, widths[i]))
	}
	c.Println(c.render(styleBold, strings.TrimRight(headerLine.String(), " ")))

	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(strings.TrimRight(sep.String(), " "))

	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				rowLine.WriteString(pad(col, widths[i]))
			}
		}
		c.Println(strings.TrimRight(rowLine.String(), " "))
	}
}
