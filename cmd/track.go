package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/ctt/internal/output"
	"github.com/manav03panchal/ctt/internal/parser"
	"github.com/manav03panchal/ctt/internal/timer"
)

// trackCmd represents the track command.
var trackCmd = &cobra.Command{
	Use:     "track ID",
	Aliases: []string{"t", "on"},
	Short:   "Track a company in the foreground",
	Long: `Make a company active and show its live elapsed time until you quit.

Press SPACE to pause or resume and Q (or Ctrl+C) to stop. Time is saved
every second while the company is active.

Examples:
  ctt track 3`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeCompanies,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parser.ParseCompanyID(args[0])
		if err != nil {
			return toUserError(err)
		}
		if _, err := ctx.Company(id); err != nil {
			return err
		}
		if !ctx.Tracker.IsActive(id) {
			ctx.Tracker.Select(id)
		}
		return trackCompany(cmd, id)
	},
}

func init() {
	rootCmd.AddCommand(trackCmd)
}

// trackCompany runs a foreground session for an already active company and
// pauses it when the session ends.
func trackCompany(cmd *cobra.Command, id int64) error {
	target, ok := ctx.Tracker.Target(id)
	if !ok {
		_, err := ctx.Company(id)
		return err
	}

	session := timer.NewSession(target, ctx.Config.UI.RefreshInterval)
	session.SetDisplay(&timer.Display{
		Writer:   ctx.Formatter.Writer,
		UseColor: ctx.Formatter.IsColorEnabled(),
	})

	started := time.Now()
	runCtx := cmd.Context()
	if runCtx == nil {
		runCtx = context.Background()
	}
	err := session.Run(runCtx)

	ctx.Tracker.Pause()

	if ctx.IsJSON() {
		company, _ := ctx.Tracker.Company(id)
		if jerr := ctx.JSONFormatter().PrintCompany(company, ctx.Tracker.Elapsed(id)); jerr != nil {
			return jerr
		}
		return err
	}

	ctx.CLIFormatter().Muted("Session length: " + output.FormatDuration(time.Since(started)))
	return err
}
