package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/ctt/internal/timer"
	"github.com/manav03panchal/ctt/internal/tracker"
)

func TestNotifyChangedNeverBlocks(t *testing.T) {
	m := NewDashboardModel(DashboardConfig{})

	m.notifyChanged()
	m.notifyChanged()
	m.notifyChanged()

	assert.Equal(t, changedMsg{}, m.waitForChange()())

	close(m.done)
	assert.Nil(t, m.waitForChange()())
}

func TestRunProgramSurvivesTrackerChanges(t *testing.T) {
	tr := tracker.New(tracker.Options{Scheduler: timer.NewManualScheduler()})
	t.Cleanup(tr.Close)

	// Select the first company, then quit.
	input := strings.NewReader("\rq")

	errc := make(chan error, 1)
	go func() {
		errc <- runProgram(DashboardConfig{Tracker: tr, ExportDir: t.TempDir()},
			tea.WithInput(input),
			tea.WithOutput(io.Discard),
			tea.WithoutRenderer(),
			tea.WithoutSignalHandler(),
		)
	}()

	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatalf("program did not quit after a tracker change; selection=%+v", tr.Selection())
	}

	active, ok := tr.Active()
	require.True(t, ok)
	assert.Equal(t, int64(1), active.ID)
}
