package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/ctt/internal/errors"
	"github.com/manav03panchal/ctt/internal/model"
	"github.com/manav03panchal/ctt/internal/output"
	"github.com/manav03panchal/ctt/internal/parser"
	"github.com/manav03panchal/ctt/internal/validate"
)

// Notes command flags.
var (
	notesFlagSince   string
	notesFlagCompany string
	noteFlagCompany  string
)

// notesCmd represents the notes command.
var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "List notes, newest first",
	Long: `List notes, newest first.

Examples:
  ctt notes
  ctt notes --company 3
  ctt notes --since yesterday
  ctt notes --since "last week"`,
	Args: cobra.NoArgs,
	RunE: runNotes,
}

// noteCmd groups the note subcommands.
var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Add or edit notes",
}

// noteAddCmd represents the note add command.
var noteAddCmd = &cobra.Command{
	Use:   "add TEXT --company ID",
	Short: "Attach a note to a company",
	Long: `Attach a note to a company.

Examples:
  ctt note add "kickoff call" --company 3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNoteAdd,
}

// noteEditCmd represents the note edit command.
var noteEditCmd = &cobra.Command{
	Use:   "edit ID TEXT",
	Short: "Replace the text of a note",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runNoteEdit,
}

func init() {
	notesCmd.Flags().StringVar(&notesFlagSince, "since", "", "Only notes at or after this time (e.g. 'yesterday')")
	notesCmd.Flags().StringVarP(&notesFlagCompany, "company", "c", "", "Only notes of this company id")
	notesCmd.RegisterFlagCompletionFunc("company", completeCompanies)

	noteAddCmd.Flags().StringVarP(&noteFlagCompany, "company", "c", "", "Company id")
	noteAddCmd.MarkFlagRequired("company")
	noteAddCmd.RegisterFlagCompletionFunc("company", completeCompanies)

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteEditCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(noteCmd)
}

func runNotes(cmd *cobra.Command, args []string) error {
	var notes []model.Comment
	if notesFlagCompany != "" {
		id, err := parser.ParseCompanyID(notesFlagCompany)
		if err != nil {
			return toUserError(err)
		}
		if _, err := ctx.Company(id); err != nil {
			return err
		}
		notes = ctx.Tracker.CommentsFor(id)
	} else {
		notes = ctx.Tracker.Comments()
	}

	if notesFlagSince != "" {
		result := parser.ParseTimestamp(notesFlagSince)
		if result.Error != nil {
			return toUserError(result.Error)
		}
		ctx.Debugf("notes since %s", output.FormatTime(result.Time))
		notes = notesSince(notes, result.Time.UnixMilli())
	}

	names := ctx.CompanyNames()
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintComments(notes, names)
	}

	ctx.CLIFormatter().PrintComments(notes, names)
	return nil
}

// notesSince keeps notes stamped at or after sinceMs.
func notesSince(notes []model.Comment, sinceMs int64) []model.Comment {
	out := make([]model.Comment, 0, len(notes))
	for _, n := range notes {
		if n.Timestamp >= sinceMs {
			out = append(out, n)
		}
	}
	return out
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	id, err := parser.ParseCompanyID(noteFlagCompany)
	if err != nil {
		return toUserError(err)
	}
	company, err := ctx.Company(id)
	if err != nil {
		return err
	}

	text := validate.SanitizeComment(joinArgs(args))
	if err := validate.CommentText(text); err != nil {
		return err
	}

	note, ok := ctx.Tracker.AddCommentFor(id, text)
	if !ok {
		return errors.NewUserError("Note was not added", "Provide some non-blank text.")
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintComment(note, company.Name)
	}

	cli := ctx.CLIFormatter()
	cli.Success("Added note " + formatID(note.ID) + " to " + cli.CompanyName(company.Name))
	return nil
}

func runNoteEdit(cmd *cobra.Command, args []string) error {
	id, err := parser.ParseCommentID(args[0])
	if err != nil {
		return toUserError(err)
	}
	if _, ok := ctx.Tracker.Comment(id); !ok {
		return errors.Wrapf(errors.ErrCommentNotFound, "note %d", id)
	}

	text := validate.SanitizeComment(joinArgs(args[1:]))
	if err := validate.CommentText(text); err != nil {
		return err
	}

	note, ok := ctx.Tracker.EditComment(id, text)
	if !ok {
		return errors.NewUserError("Note was not changed", "Provide some non-blank text.")
	}

	name := ctx.CompanyNames()[note.CompanyID]
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintComment(note, name)
	}

	ctx.CLIFormatter().Success("Updated note " + formatID(note.ID))
	return nil
}
