package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/ctt/internal/tui"
)

// dashboardCmd represents the dashboard command.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "tui"},
	Short:   "Open the interactive tracker",
	Long: `Open the interactive tracker. This is also what plain 'ctt' does.

The tracker shows:
  - The active company with its live elapsed time
  - Favorite and recently used companies
  - Notes for the active company

Keyboard Controls:
  up/down, enter - Move and select (selecting the active company pauses it)
  a              - Add a company
  /              - Search companies
  f              - Toggle favorite
  n              - Add a note, tab then e to edit one
  p              - Pause
  x              - Export a backup
  i              - Import a backup
  q              - Quit

Examples:
  ctt
  ctt dashboard`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	config := tui.DashboardConfig{
		Tracker:         ctx.Tracker,
		ExportDir:       ctx.Config.Storage.ExportDir,
		RefreshInterval: ctx.Config.UI.RefreshInterval,
		MessageTimeout:  ctx.Config.UI.MessageTimeout,
	}

	return tui.Run(config)
}
