package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/ctt/internal/logging"
	"github.com/manav03panchal/ctt/internal/model"
	"github.com/manav03panchal/ctt/internal/tracker"
	"github.com/manav03panchal/ctt/internal/validate"
)

// tickMsg is sent when the redraw timer ticks.
type tickMsg time.Time

// changedMsg is sent when the tracker reports a state change.
type changedMsg struct{}

// mode is the current input mode of the dashboard.
type mode int

const (
	modeBrowse mode = iota
	modeNotes
	modeAddCompany
	modeSearch
	modeAddNote
	modeEditNote
	modeImport
)

// DashboardModel is the main bubbletea model for the tracker.
type DashboardModel struct {
	tracker *tracker.Tracker

	// Inputs
	addInput    textinput.Model
	searchInput textinput.Model
	noteInput   textinput.Model
	editInput   textinput.Model
	importInput textinput.Model

	// UI state
	mode       mode
	cursor     int
	noteCursor int
	results    []model.Company
	editID     int64
	alert      string
	width      int
	height     int
	message    string
	messageExp time.Time

	// Configuration
	exportDir       string
	refreshInterval time.Duration
	messageTimeout  time.Duration
	now             func() time.Time

	// Tracker changes, coalesced. Listeners run on whatever goroutine
	// mutated the tracker, often Update itself, so they must never block.
	changes chan struct{}
	done    chan struct{}
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	Tracker         *tracker.Tracker
	ExportDir       string
	RefreshInterval time.Duration
	MessageTimeout  time.Duration
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	if config.RefreshInterval == 0 {
		config.RefreshInterval = time.Second
	}
	if config.MessageTimeout == 0 {
		config.MessageTimeout = 3 * time.Second
	}
	if config.ExportDir == "" {
		config.ExportDir = "."
	}

	return &DashboardModel{
		tracker:         config.Tracker,
		addInput:        newInput("Company name", validate.MaxCompanyNameLength),
		searchInput:     newInput("Search companies", validate.MaxCompanyNameLength),
		noteInput:       newInput("Add a note", validate.MaxCommentLength),
		editInput:       newInput("", validate.MaxCommentLength),
		importInput:     newInput("Path to backup file", 0),
		exportDir:       config.ExportDir,
		refreshInterval: config.RefreshInterval,
		messageTimeout:  config.MessageTimeout,
		now:             time.Now,
		changes:         make(chan struct{}, 1),
		done:            make(chan struct{}),
	}
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = "> "
	return ti
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), m.waitForChange())
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.alert != "" {
			return m.handleAlertKey(msg)
		}
		switch m.mode {
		case modeBrowse:
			return m.handleBrowseKey(msg)
		case modeNotes:
			return m.handleNotesKey(msg)
		case modeSearch:
			return m.handleSearchKey(msg)
		default:
			return m.handleInputKey(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Clear expired messages
		if !m.messageExp.IsZero() && m.now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		return m, m.tickCmd()

	case changedMsg:
		m.clampCursors()
		return m, m.waitForChange()
	}

	return m, nil
}

// handleAlertKey dismisses the alert; every other key is swallowed.
func (m *DashboardModel) handleAlertKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", " ":
		m.alert = ""
	}
	return m, nil
}

// handleBrowseKey handles keys while the company lists have focus.
func (m *DashboardModel) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.pickerRows()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(rows)-1 {
			m.cursor++
		}

	case "enter", " ":
		if m.cursor < len(rows) {
			m.tracker.Select(rows[m.cursor].ID)
			m.clampCursors()
		}

	case "p":
		if !m.tracker.Pause() {
			m.setMessage("Nothing is being tracked")
		}

	case "f":
		if m.cursor < len(rows) {
			m.tracker.ToggleFavorite(rows[m.cursor].ID)
			m.clampCursors()
		}

	case "tab":
		m.mode = modeNotes
		m.noteCursor = 0

	case "a":
		return m, m.enter(modeAddCompany, &m.addInput)

	case "/":
		m.results = nil
		return m, m.enter(modeSearch, &m.searchInput)

	case "n":
		return m.startNote()

	case "x":
		m.export()

	case "i":
		return m, m.enter(modeImport, &m.importInput)
	}

	return m, nil
}

// handleNotesKey handles keys while the notes list has focus.
func (m *DashboardModel) handleNotesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	notes := m.tracker.ActiveComments()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "tab", "esc":
		m.mode = modeBrowse

	case "up", "k":
		if m.noteCursor > 0 {
			m.noteCursor--
		}

	case "down", "j":
		if m.noteCursor < len(notes)-1 {
			m.noteCursor++
		}

	case "e", "enter":
		if m.noteCursor < len(notes) {
			note := notes[m.noteCursor]
			m.editID = note.ID
			cmd := m.enter(modeEditNote, &m.editInput)
			m.editInput.SetValue(note.Text)
			m.editInput.CursorEnd()
			return m, cmd
		}

	case "n":
		return m.startNote()
	}

	return m, nil
}

// handleSearchKey filters the registry as the query changes.
func (m *DashboardModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.leave(&m.searchInput, modeBrowse)
		m.results = nil
		return m, nil

	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down":
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		if m.cursor < len(m.results) {
			m.tracker.Select(m.results[m.cursor].ID)
		}
		m.leave(&m.searchInput, modeBrowse)
		m.results = nil
		m.clampCursors()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.results = m.tracker.Search(m.searchInput.Value())
	m.cursor = 0
	return m, cmd
}

// handleInputKey handles the single-line inputs: add company, add note,
// edit note and import path.
func (m *DashboardModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	input := m.activeInput()

	switch msg.String() {
	case "esc":
		m.cancelInput()
		return m, nil

	case "enter":
		m.commitInput()
		return m, nil

	case "tab":
		// Leaving the edit field commits it.
		if m.mode == modeEditNote {
			m.commitInput()
			return m, nil
		}
	}

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	return m, cmd
}

// commitInput applies the current input and returns to the owning pane.
func (m *DashboardModel) commitInput() {
	switch m.mode {
	case modeAddCompany:
		if c, ok := m.tracker.AddCompany(m.addInput.Value()); ok {
			m.setMessage(fmt.Sprintf("Tracking %s", c.Name))
		}
		m.leave(&m.addInput, modeBrowse)
		m.clampCursors()

	case modeAddNote:
		m.tracker.AddComment(m.noteInput.Value())
		m.leave(&m.noteInput, modeNotes)
		m.noteCursor = 0

	case modeEditNote:
		m.tracker.EditComment(m.editID, m.editInput.Value())
		m.editID = 0
		m.leave(&m.editInput, modeNotes)

	case modeImport:
		path := m.importInput.Value()
		m.leave(&m.importInput, modeBrowse)
		if path == "" {
			return
		}
		if err := m.tracker.ImportFile(path); err != nil {
			m.alert = tracker.ImportFailed
		} else {
			m.alert = tracker.ImportSucceeded
		}
		m.cursor = 0
		m.noteCursor = 0
	}
}

// cancelInput discards the current input.
func (m *DashboardModel) cancelInput() {
	switch m.mode {
	case modeAddCompany:
		m.leave(&m.addInput, modeBrowse)
	case modeAddNote:
		m.leave(&m.noteInput, modeNotes)
	case modeEditNote:
		m.editID = 0
		m.leave(&m.editInput, modeNotes)
	case modeImport:
		m.leave(&m.importInput, modeBrowse)
	}
}

func (m *DashboardModel) activeInput() *textinput.Model {
	switch m.mode {
	case modeAddCompany:
		return &m.addInput
	case modeAddNote:
		return &m.noteInput
	case modeEditNote:
		return &m.editInput
	case modeImport:
		return &m.importInput
	default:
		return &m.searchInput
	}
}

func (m *DashboardModel) startNote() (tea.Model, tea.Cmd) {
	if _, ok := m.tracker.Active(); !ok {
		m.setMessage("Select a company before adding notes")
		return m, nil
	}
	return m, m.enter(modeAddNote, &m.noteInput)
}

func (m *DashboardModel) enter(next mode, input *textinput.Model) tea.Cmd {
	m.mode = next
	input.Reset()
	return input.Focus()
}

func (m *DashboardModel) leave(input *textinput.Model, next mode) {
	input.Blur()
	input.Reset()
	m.mode = next
}

func (m *DashboardModel) export() {
	path, err := m.tracker.ExportToDir(m.exportDir)
	if err != nil {
		logging.Warn("export failed", logging.KeyError, err)
		m.alert = fmt.Sprintf("Export failed: %v", err)
		return
	}
	m.setMessage(fmt.Sprintf("Exported to %s", path))
}

// pickerRows is the favorites list followed by the recents list.
func (m *DashboardModel) pickerRows() []model.Company {
	rows := m.tracker.Favorites()
	return append(rows, m.tracker.Recents()...)
}

func (m *DashboardModel) clampCursors() {
	if n := len(m.pickerRows()); m.mode == modeBrowse && m.cursor >= n {
		m.cursor = max(0, n-1)
	}
	if n := len(m.tracker.ActiveComments()); m.noteCursor >= n {
		m.noteCursor = max(0, n-1)
	}
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.alert != "" {
		return lipgloss.Place(m.width, max(m.height, 1), lipgloss.Center, lipgloss.Center, AlertView(m.alert, m.width))
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}
	if err := m.tracker.StorageErr(); err != nil {
		sections = append(sections, StyleError.Render("Not saved: changes are kept for this session only"))
	}

	var active *model.Company
	if c, ok := m.tracker.Active(); ok {
		active = &c
	}
	var activeID int64
	var seconds int64
	if active != nil {
		activeID = active.ID
		seconds = m.tracker.Elapsed(activeID)
	}
	sections = append(sections, NewStatusComponent(active, seconds, m.width).View())

	timeLog := m.tracker.TimeLog()
	switch m.mode {
	case modeSearch:
		sections = append(sections, m.searchInput.View())
		sections = append(sections, (&CompanyListComponent{
			Title:     "Results",
			Empty:     "No matching companies",
			Companies: m.results,
			TimeLog:   timeLog,
			ActiveID:  activeID,
			Cursor:    m.cursor,
			Focused:   true,
			Width:     m.width,
		}).View())

	default:
		favorites := m.tracker.Favorites()
		browsing := m.mode == modeBrowse
		sections = append(sections, (&CompanyListComponent{
			Title:     "Favorites",
			Empty:     "No favorites",
			Companies: favorites,
			TimeLog:   timeLog,
			ActiveID:  activeID,
			Cursor:    m.cursor,
			Focused:   browsing && m.cursor < len(favorites),
			Width:     m.width,
		}).View())
		sections = append(sections, (&CompanyListComponent{
			Title:     "Recent",
			Empty:     "No recent companies",
			Companies: m.tracker.Recents(),
			TimeLog:   timeLog,
			ActiveID:  activeID,
			Cursor:    m.cursor - len(favorites),
			Focused:   browsing && m.cursor >= len(favorites),
			Width:     m.width,
		}).View())
		if m.mode == modeAddCompany {
			sections = append(sections, m.addInput.View())
		}
		if m.mode == modeImport {
			sections = append(sections, m.importInput.View())
		}
	}

	if active != nil {
		sections = append(sections, (&NotesComponent{
			Notes:    m.tracker.ActiveComments(),
			Cursor:   m.noteCursor,
			Focused:  m.mode == modeNotes || m.mode == modeEditNote,
			Width:    m.width,
			EditID:   m.editID,
			EditView: m.editInput.View(),
		}).View())
		if m.mode == modeAddNote {
			sections = append(sections, m.noteInput.View())
		}
	}

	sections = append(sections, HelpBar(m.helpKeys()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *DashboardModel) helpKeys() []helpKey {
	switch m.mode {
	case modeBrowse:
		return browseKeys
	case modeNotes:
		return notesKeys
	case modeSearch:
		return searchKeys
	default:
		return inputKeys
	}
}

// renderHeader renders the dashboard header.
func (m *DashboardModel) renderHeader() string {
	title := StyleTitle.Render("Company Time Tracker")
	now := m.now().Format("Mon Jan 2, 15:04:05")
	timeStr := StyleSubtitle.Render(now)

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", timeStr) + "\n"
}

// setMessage sets a temporary message.
func (m *DashboardModel) setMessage(msg string) {
	m.message = msg
	m.messageExp = m.now().Add(m.messageTimeout)
}

// tickCmd returns a command that sends a tick message.
func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// notifyChanged records a tracker change without blocking.
func (m *DashboardModel) notifyChanged() {
	select {
	case m.changes <- struct{}{}:
	default:
	}
}

// waitForChange returns a command that delivers the next tracker change.
func (m *DashboardModel) waitForChange() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.changes:
			return changedMsg{}
		case <-m.done:
			return nil
		}
	}
}

// Run starts the tracker TUI and blocks until the user quits.
func Run(config DashboardConfig) error {
	// Log lines would corrupt the alt screen.
	logging.Discard()

	return runProgram(config, tea.WithAltScreen())
}

func runProgram(config DashboardConfig, opts ...tea.ProgramOption) error {
	m := NewDashboardModel(config)
	defer close(m.done)

	unsubscribe := config.Tracker.OnChange(m.notifyChanged)
	defer unsubscribe()

	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
