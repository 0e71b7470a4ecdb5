package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/ctt/internal/errors"
	"github.com/manav03panchal/ctt/internal/model"
	"github.com/manav03panchal/ctt/internal/output"
)

// statusCmd represents the status command.
var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st"},
	Short:   "Show the active company and storage health",
	RunE:    runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	var active *model.Company
	var seconds int64
	if c, ok := ctx.Tracker.Active(); ok {
		active = &c
		seconds = ctx.Tracker.Elapsed(c.ID)
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStatus(active, seconds)
	}

	cli := ctx.CLIFormatter()
	cli.PrintStatus(active, seconds)

	var total int64
	for _, s := range ctx.Tracker.TimeLog() {
		total += s
	}
	cli.Muted("Total tracked: " + output.FormatElapsed(total))

	if se, ok := errors.AsStorageError(ctx.Tracker.StorageErr()); ok {
		cli.Warning("Stored data could not be " + storageVerb(se.Op) + ": " + se.Error())
	}
	if warning := ctx.DiskWarning(); warning != "" {
		cli.Warning(warning)
	}
	return nil
}

func storageVerb(op string) string {
	if op == "save" {
		return "saved"
	}
	return "read"
}
