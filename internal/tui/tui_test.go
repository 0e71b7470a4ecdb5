package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/ctt/internal/model"
	"github.com/manav03panchal/ctt/internal/timer"
	"github.com/manav03panchal/ctt/internal/tracker"
)

var fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) (*DashboardModel, *tracker.Tracker, *timer.ManualScheduler) {
	t.Helper()
	sched := timer.NewManualScheduler()
	tr := tracker.New(tracker.Options{
		Scheduler: sched,
		Clock:     func() time.Time { return fixedNow },
	})
	t.Cleanup(tr.Close)

	m := NewDashboardModel(DashboardConfig{Tracker: tr, ExportDir: t.TempDir()})
	m.now = func() time.Time { return fixedNow }
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return m, tr, sched
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *DashboardModel, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(key(k))
	}
	return cmd
}

func typeText(m *DashboardModel, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// =============================================================================
// Dashboard Tests
// =============================================================================

func TestNewDashboardModelDefaults(t *testing.T) {
	m := NewDashboardModel(DashboardConfig{})
	assert.Equal(t, time.Second, m.refreshInterval)
	assert.Equal(t, 3*time.Second, m.messageTimeout)
	assert.Equal(t, ".", m.exportDir)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "Loading...", m.View())
	assert.NotNil(t, m.Init())
}

func TestSelectAndPause(t *testing.T) {
	m, tr, sched := newTestModel(t)

	press(m, "enter")
	active, ok := tr.Active()
	require.True(t, ok)
	assert.Equal(t, "Google", active.Name)
	assert.Equal(t, 1, sched.Armed())

	sched.AdvanceN(3)
	view := m.View()
	assert.Contains(t, view, "TRACKING")
	assert.Contains(t, view, "00:00:03")

	press(m, "enter")
	_, ok = tr.Active()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "Paused")
}

func TestCursorMovement(t *testing.T) {
	m, tr, _ := newTestModel(t)

	press(m, "down", "down", "enter")
	active, ok := tr.Active()
	require.True(t, ok)
	assert.Equal(t, "Amazon", active.Name)

	press(m, "up", "up", "up", "up")
	assert.Equal(t, 0, m.cursor)

	press(m, "p")
	_, ok = tr.Active()
	assert.False(t, ok)
}

func TestToggleFavoriteKey(t *testing.T) {
	m, tr, _ := newTestModel(t)

	press(m, "f")
	c, ok := tr.Company(1)
	require.True(t, ok)
	assert.False(t, c.IsFavorite)
	assert.Len(t, tr.Favorites(), 4)
}

func TestAddCompany(t *testing.T) {
	m, tr, _ := newTestModel(t)

	press(m, "a")
	assert.Equal(t, modeAddCompany, m.mode)
	typeText(m, "Initech")
	press(m, "enter")

	assert.Equal(t, modeBrowse, m.mode)
	active, ok := tr.Active()
	require.True(t, ok)
	assert.Equal(t, "Initech", active.Name)
	assert.Contains(t, m.message, "Initech")
	assert.Contains(t, m.View(), "Initech")
}

func TestAddCompanyBlankIsNoop(t *testing.T) {
	m, tr, _ := newTestModel(t)

	press(m, "a")
	typeText(m, "   ")
	press(m, "enter")

	assert.Len(t, tr.Companies(), 7)
	_, ok := tr.Active()
	assert.False(t, ok)
}

func TestAddCompanyEscCancels(t *testing.T) {
	m, tr, _ := newTestModel(t)

	press(m, "a")
	typeText(m, "Hooli")
	press(m, "esc")

	assert.Equal(t, modeBrowse, m.mode)
	assert.Len(t, tr.Companies(), 7)
	assert.Empty(t, m.addInput.Value())
}

func TestQuitIgnoredWhileTyping(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(m, "a", "q")
	assert.Equal(t, modeAddCompany, m.mode)
	assert.Equal(t, "q", m.addInput.Value())

	assert.True(t, isQuit(press(m, "ctrl+c")))
}

func TestSearch(t *testing.T) {
	m, tr, _ := newTestModel(t)

	press(m, "/")
	typeText(m, "TES")
	require.Len(t, m.results, 1)
	assert.Equal(t, "Tesla", m.results[0].Name)
	assert.Contains(t, m.View(), "Results")

	press(m, "enter")
	active, ok := tr.Active()
	require.True(t, ok)
	assert.Equal(t, "Tesla", active.Name)
	assert.Equal(t, modeBrowse, m.mode)

	// Tesla now shows up under recents.
	assert.Contains(t, m.View(), "Recent")
	require.Len(t, tr.Recents(), 1)
}

func TestSearchEscCancels(t *testing.T) {
	m, tr, _ := newTestModel(t)

	press(m, "/")
	typeText(m, "a")
	assert.NotEmpty(t, m.results)
	press(m, "esc")

	assert.Equal(t, modeBrowse, m.mode)
	assert.Nil(t, m.results)
	_, ok := tr.Active()
	assert.False(t, ok)
}

func TestNoteRequiresActiveCompany(t *testing.T) {
	m, tr, _ := newTestModel(t)

	press(m, "n")
	assert.Equal(t, modeBrowse, m.mode)
	assert.Contains(t, m.message, "Select a company")
	assert.Empty(t, tr.Comments())
}

func TestAddAndEditNote(t *testing.T) {
	m, tr, _ := newTestModel(t)
	press(m, "enter")

	press(m, "n")
	typeText(m, "kickoff call")
	press(m, "enter")
	assert.Equal(t, modeNotes, m.mode)

	notes := tr.ActiveComments()
	require.Len(t, notes, 1)
	assert.Equal(t, "kickoff call", notes[0].Text)
	assert.Contains(t, m.View(), "kickoff call")

	t.Run("tab_commits_edit", func(t *testing.T) {
		press(m, "e")
		assert.Equal(t, modeEditNote, m.mode)
		typeText(m, "!")
		press(m, "tab")

		assert.Equal(t, modeNotes, m.mode)
		assert.Equal(t, "kickoff call!", tr.ActiveComments()[0].Text)
	})

	t.Run("esc_cancels_edit", func(t *testing.T) {
		press(m, "e")
		typeText(m, " ignored")
		press(m, "esc")

		assert.Equal(t, "kickoff call!", tr.ActiveComments()[0].Text)
		assert.Zero(t, m.editID)
	})

	t.Run("blank_edit_is_noop", func(t *testing.T) {
		press(m, "e")
		m.editInput.SetValue("  ")
		press(m, "enter")

		assert.Equal(t, "kickoff call!", tr.ActiveComments()[0].Text)
	})

	press(m, "tab")
	assert.Equal(t, modeBrowse, m.mode)
}

func TestExportKey(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(m, "x")
	path := filepath.Join(m.exportDir, tracker.BackupFileName(fixedNow))
	assert.FileExists(t, path)
	assert.Contains(t, m.message, path)
}

func TestImportKey(t *testing.T) {
	dir := t.TempDir()

	t.Run("invalid_file", func(t *testing.T) {
		m, tr, _ := newTestModel(t)
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"entities": []}`), 0o644))

		press(m, "i")
		typeText(m, path)
		press(m, "enter")

		assert.Equal(t, tracker.ImportFailed, m.alert)
		assert.Contains(t, m.View(), tracker.ImportFailed)
		assert.Len(t, tr.Companies(), 7)

		// The alert blocks every other key until it is dismissed.
		assert.False(t, isQuit(press(m, "q")))
		press(m, "a")
		assert.Equal(t, modeBrowse, m.mode)

		press(m, "enter")
		assert.Empty(t, m.alert)
	})

	t.Run("valid_file", func(t *testing.T) {
		m, tr, _ := newTestModel(t)
		press(m, "enter")

		path := filepath.Join(dir, "good.json")
		doc := `{"entities":[{"id":9,"name":"Globex","isFavorite":true,"lastUsed":null}],` +
			`"elapsedTimeMap":{"9":42},"notes":[]}`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

		press(m, "i")
		typeText(m, path)
		press(m, "enter")

		assert.Equal(t, tracker.ImportSucceeded, m.alert)
		press(m, "esc")

		companies := tr.Companies()
		require.Len(t, companies, 1)
		assert.Equal(t, "Globex", companies[0].Name)
		_, ok := tr.Active()
		assert.False(t, ok)
		assert.Contains(t, m.View(), "00:00:42")
	})

	t.Run("empty_path_cancels", func(t *testing.T) {
		m, _, _ := newTestModel(t)
		press(m, "i", "enter")
		assert.Empty(t, m.alert)
		assert.Equal(t, modeBrowse, m.mode)
	})
}

func TestMessageExpires(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.setMessage("hello")
	m.Update(tickMsg(fixedNow))
	assert.Equal(t, "hello", m.message)

	m.now = func() time.Time { return fixedNow.Add(4 * time.Second) }
	_, cmd := m.Update(tickMsg(fixedNow))
	assert.Empty(t, m.message)
	assert.NotNil(t, cmd)
}

func TestChangedMsgClampsCursor(t *testing.T) {
	m, tr, _ := newTestModel(t)

	press(m, "down", "down", "down", "down")
	assert.Equal(t, 4, m.cursor)

	for _, c := range tr.Favorites() {
		tr.ToggleFavorite(c.ID)
	}
	m.Update(changedMsg{})
	assert.Equal(t, 0, m.cursor)
}

// =============================================================================
// Component Tests
// =============================================================================

func TestStatusComponent(t *testing.T) {
	t.Run("paused", func(t *testing.T) {
		view := NewStatusComponent(nil, 0, 80).View()
		assert.Contains(t, view, "Paused")
	})

	t.Run("tracking", func(t *testing.T) {
		c := model.Company{ID: 1, Name: "Acme", IsFavorite: true}
		view := NewStatusComponent(&c, 3725, 80).View()
		assert.Contains(t, view, "TRACKING")
		assert.Contains(t, view, "Acme")
		assert.Contains(t, view, "01:02:05")
	})
}

func TestCompanyListComponent(t *testing.T) {
	cl := &CompanyListComponent{
		Title: "Favorites",
		Empty: "No favorites",
		Companies: []model.Company{
			{ID: 1, Name: "Acme", IsFavorite: true},
			{ID: 2, Name: "Initech"},
		},
		TimeLog:  model.TimeLog{1: 61},
		ActiveID: 1,
		Cursor:   1,
		Focused:  true,
		Width:    60,
	}
	view := cl.View()
	assert.Contains(t, view, "Acme")
	assert.Contains(t, view, "00:01:01")
	assert.Contains(t, view, "> ")
	assert.Contains(t, view, "★")

	empty := &CompanyListComponent{Title: "Recent", Empty: "No recent companies", Width: 60}
	assert.Contains(t, empty.View(), "No recent companies")
}

func TestNotesComponentWraps(t *testing.T) {
	long := strings.Repeat("word ", 40)
	nc := &NotesComponent{
		Notes: []model.Comment{{ID: 1, CompanyID: 1, Text: long, Timestamp: fixedNow.UnixMilli()}},
		Width: 40,
	}
	view := nc.View()
	assert.Greater(t, strings.Count(view, "word"), 30)
	assert.Greater(t, strings.Count(view, "\n"), 5)

	assert.Contains(t, (&NotesComponent{Width: 40}).View(), "No notes yet")
}

func TestHelpBar(t *testing.T) {
	bar := HelpBar(browseKeys)
	assert.Contains(t, bar, "quit")
	assert.Contains(t, bar, "search")
	assert.Contains(t, HelpBar(inputKeys), "cancel")
}

func TestFormatCompany(t *testing.T) {
	assert.Contains(t, FormatCompany("Acme", true), "★")
	assert.NotContains(t, FormatCompany("Acme", false), "★")
}

func TestAlertView(t *testing.T) {
	view := AlertView(tracker.ImportSucceeded, 80)
	assert.Contains(t, view, "restored")
	assert.Contains(t, view, "press enter")
}
