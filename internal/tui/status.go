package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/manav03panchal/ctt/internal/model"
	"github.com/manav03panchal/ctt/internal/output"
	"github.com/manav03panchal/ctt/internal/validate"
)

// StatusComponent displays the active company and its elapsed time.
type StatusComponent struct {
	Company *model.Company
	Seconds int64
	Width   int
}

// NewStatusComponent creates a new status component.
func NewStatusComponent(company *model.Company, seconds int64, width int) *StatusComponent {
	return &StatusComponent{
		Company: company,
		Seconds: seconds,
		Width:   width,
	}
}

// View renders the status component.
func (sc *StatusComponent) View() string {
	var content strings.Builder

	if sc.Company == nil {
		content.WriteString(StyleInactive.Render("Paused"))
		content.WriteString("\n\n")
		content.WriteString(StyleSubtitle.Render("Select a company to start tracking"))

		box := StyleStatusBox.Width(boxWidth(sc.Width))
		return box.Render(content.String())
	}

	content.WriteString(StyleActive.Render("● TRACKING"))
	content.WriteString("\n\n")
	content.WriteString(FormatCompany(sc.Company.Name, sc.Company.IsFavorite))
	content.WriteString("\n\n")
	content.WriteString(StyleDuration.Render(output.FormatElapsed(sc.Seconds)))

	box := StyleActiveStatusBox.Width(boxWidth(sc.Width))
	return box.Render(content.String())
}

// CompanyListComponent displays a titled list of companies with their totals.
type CompanyListComponent struct {
	Title     string
	Empty     string
	Companies []model.Company
	TimeLog   model.TimeLog
	ActiveID  int64
	Cursor    int // -1 when the list has no highlighted row
	Focused   bool
	Width     int
}

// View renders the company list.
func (cl *CompanyListComponent) View() string {
	var content strings.Builder

	content.WriteString(StyleSubtitle.Render(cl.Title))
	content.WriteString("\n")

	if len(cl.Companies) == 0 {
		content.WriteString(StyleMuted.Render(cl.Empty))
	}
	for i, c := range cl.Companies {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(cl.renderRow(i, c))
	}

	return boxFor(cl.Focused).Width(boxWidth(cl.Width)).Render(content.String())
}

func (cl *CompanyListComponent) renderRow(i int, c model.Company) string {
	prefix := "  "
	if cl.Focused && i == cl.Cursor {
		prefix = StyleCursor.Render("> ")
	}

	name := validate.TruncateString(c.Name, max(10, boxWidth(cl.Width)-24))
	row := prefix + FormatCompany(name, c.IsFavorite) + "  " +
		StyleDuration.Render(output.FormatElapsed(cl.TimeLog.Seconds(c.ID)))
	if c.ID == cl.ActiveID {
		row += "  " + StyleActive.Render("●")
	}
	return row
}

// NotesComponent displays the notes of the active company, newest first.
type NotesComponent struct {
	Notes    []model.Comment
	Cursor   int
	Focused  bool
	Width    int
	EditID   int64  // note being edited, 0 for none
	EditView string // rendered edit input
}

// View renders the notes list.
func (nc *NotesComponent) View() string {
	var content strings.Builder

	content.WriteString(StyleSubtitle.Render("Notes"))
	content.WriteString("\n")

	if len(nc.Notes) == 0 {
		content.WriteString(StyleMuted.Render("No notes yet"))
	}

	wrap := boxWidth(nc.Width) - 6
	if wrap < 20 {
		wrap = 20
	}
	for i, n := range nc.Notes {
		if i > 0 {
			content.WriteString("\n")
		}
		prefix := "  "
		if nc.Focused && i == nc.Cursor {
			prefix = StyleCursor.Render("> ")
		}
		content.WriteString(prefix)
		content.WriteString(StyleSubtitle.Render(output.FormatCommentTime(n.Time())))
		content.WriteString("\n")

		if n.ID == nc.EditID {
			content.WriteString("  " + nc.EditView)
			continue
		}
		wrapped := wordwrap.String(n.Text, wrap)
		for _, line := range strings.Split(wrapped, "\n") {
			content.WriteString("  " + StyleNote.Render(line) + "\n")
		}
	}

	return boxFor(nc.Focused).Width(boxWidth(nc.Width)).Render(strings.TrimRight(content.String(), "\n"))
}

// StyleMuted is used for muted text (alias for convenience).
var StyleMuted = StyleSubtitle

// helpKey is one entry in the help bar.
type helpKey struct {
	key  string
	desc string
}

var (
	browseKeys = []helpKey{
		{"↑/↓", "move"},
		{"enter", "select"},
		{"tab", "notes"},
		{"a", "add"},
		{"/", "search"},
		{"f", "favorite"},
		{"n", "note"},
		{"x", "export"},
		{"i", "import"},
		{"q", "quit"},
	}
	notesKeys = []helpKey{
		{"↑/↓", "move"},
		{"e", "edit"},
		{"n", "note"},
		{"tab", "companies"},
		{"q", "quit"},
	}
	inputKeys = []helpKey{
		{"enter", "save"},
		{"esc", "cancel"},
	}
	searchKeys = []helpKey{
		{"↑/↓", "move"},
		{"enter", "select"},
		{"esc", "cancel"},
	}
)

// HelpBar renders the help bar at the bottom.
func HelpBar(keys []helpKey) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, StyleHelpKey.Render(k.key)+" "+StyleHelpDesc.Render(k.desc))
	}
	return StyleHelp.Render(strings.Join(parts, "  •  "))
}

// AlertView renders a blocking message box.
func AlertView(message string, width int) string {
	body := wordwrap.String(message, max(20, boxWidth(width)-8))
	return StyleAlertBox.Render(fmt.Sprintf("%s\n\n%s", body, StyleHelpDesc.Render("press enter to continue")))
}

func boxWidth(width int) int {
	if width < 24 {
		return 20
	}
	return width - 4
}
