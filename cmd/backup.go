package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/ctt/internal/errors"
	"github.com/manav03panchal/ctt/internal/output"
	"github.com/manav03panchal/ctt/internal/tracker"
	"github.com/manav03panchal/ctt/internal/validate"
)

// Export command flags.
var exportFlagOutput string

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"backup"},
	Short:   "Export all data as a JSON backup",
	Long: `Write every company, tracked time and note to
company-time-tracker-backup-<date>.json in the export directory.

Examples:
  ctt export
  ctt export -o ~/backups
  ctt export -o - > backup.json`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:     "import FILE",
	Aliases: []string{"restore"},
	Short:   "Replace all data with a JSON backup",
	Long: `Replace every company, tracked time and note with the contents of a
backup created by 'ctt export'. Tracking is paused afterwards.

Examples:
  ctt import company-time-tracker-backup-2024-03-15.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output directory, or - for stdout (default from config)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFlagOutput == "-" {
		data, err := ctx.Tracker.Export()
		if err != nil {
			return err
		}
		ctx.Formatter.Println(string(data))
		return nil
	}

	dir := exportFlagOutput
	if dir == "" {
		dir = ctx.Config.Storage.ExportDir
	}

	path, err := ctx.Tracker.ExportToDir(dir)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.ExportResponse{Status: "exported", Path: path})
	}

	ctx.CLIFormatter().Success("Backup written to " + path)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	if err := validate.NonEmpty(args[0], "file"); err != nil {
		return err
	}
	if err := ctx.Tracker.ImportFile(args[0]); err != nil {
		return errors.Wrap(err, tracker.ImportFailed)
	}

	snap := ctx.Tracker.Snapshot()
	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.ImportResponse{
			Status:    "restored",
			Message:   tracker.ImportSucceeded,
			Companies: len(snap.Companies),
			Notes:     len(snap.Comments),
		})
	}

	ctx.CLIFormatter().Success(tracker.ImportSucceeded)
	if err := ctx.Tracker.StorageErr(); err != nil {
		ctx.CLIFormatter().Warning("The backup is loaded but could not be saved: " + err.Error())
	}
	return nil
}
