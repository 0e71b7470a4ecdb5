package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/ctt/internal/errors"
	"github.com/manav03panchal/ctt/internal/parser"
	"github.com/manav03panchal/ctt/internal/validate"
)

// Companies command flags.
var (
	companiesFlagSearch    string
	companiesFlagFavorites bool
	companiesFlagRecent    bool
	addFlagTrack           bool
)

// companiesCmd represents the companies command.
var companiesCmd = &cobra.Command{
	Use:     "companies",
	Aliases: []string{"ls", "list"},
	Short:   "List companies with their tracked time",
	Long: `List every company in the registry with its total tracked time.

Examples:
  ctt companies
  ctt companies --search goo
  ctt companies --favorites
  ctt companies --recent`,
	Args: cobra.NoArgs,
	RunE: runCompanies,
}

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a company",
	Long: `Add a company to the registry. New companies are not favorites.

Examples:
  ctt add Initech
  ctt add "Acme Corp" --track`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

// favoriteCmd represents the favorite command.
var favoriteCmd = &cobra.Command{
	Use:               "favorite ID",
	Aliases:           []string{"fav"},
	Short:             "Toggle a company's favorite flag",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeCompanies,
	RunE:              runFavorite,
}

func init() {
	companiesCmd.Flags().StringVarP(&companiesFlagSearch, "search", "s", "", "Only companies whose name contains this text")
	companiesCmd.Flags().BoolVar(&companiesFlagFavorites, "favorites", false, "Only the favorites view")
	companiesCmd.Flags().BoolVar(&companiesFlagRecent, "recent", false, "Only the recently used view")
	companiesCmd.MarkFlagsMutuallyExclusive("search", "favorites", "recent")

	addCmd.Flags().BoolVarP(&addFlagTrack, "track", "t", false, "Start tracking the new company in the foreground")

	rootCmd.AddCommand(companiesCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(favoriteCmd)
}

func runCompanies(cmd *cobra.Command, args []string) error {
	companies := ctx.Tracker.Companies()
	switch {
	case cmd.Flags().Changed("search"):
		companies = ctx.Tracker.Search(companiesFlagSearch)
	case companiesFlagFavorites:
		companies = ctx.Tracker.Favorites()
	case companiesFlagRecent:
		companies = ctx.Tracker.Recents()
	}

	timeLog := ctx.Tracker.TimeLog()
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintCompanies(companies, timeLog)
	}

	ctx.CLIFormatter().PrintCompanies(companies, timeLog)
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := validate.SanitizeCompanyName(joinArgs(args))
	if err := validate.CompanyName(name); err != nil {
		return err
	}

	company, ok := ctx.Tracker.AddCompany(name)
	if !ok {
		return errors.NewUserErrorWithField("name", name, "Company was not added", "Provide a non-blank name.")
	}

	// A new company becomes active; keep it running only in the foreground.
	if addFlagTrack {
		return trackCompany(cmd, company.ID)
	}
	ctx.Tracker.Pause()

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintCompany(company, 0)
	}

	ctx.CLIFormatter().PrintCompanyAdded(company)
	return nil
}

func runFavorite(cmd *cobra.Command, args []string) error {
	id, err := parser.ParseCompanyID(args[0])
	if err != nil {
		return toUserError(err)
	}

	company, ok := ctx.Tracker.ToggleFavorite(id)
	if !ok {
		_, err := ctx.Company(id)
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintCompany(company, ctx.Tracker.Elapsed(id))
	}

	cli := ctx.CLIFormatter()
	if company.IsFavorite {
		cli.Success(cli.CompanyName(company.Name) + " is now a favorite")
	} else {
		cli.Success(cli.CompanyName(company.Name) + " is no longer a favorite")
	}
	return nil
}
