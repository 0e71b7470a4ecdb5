package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/ctt/internal/errors"
)

// completeCompanies returns a completion function for company ids.
func completeCompanies(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if ctx == nil || ctx.Tracker == nil || len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, c := range ctx.Tracker.Companies() {
		id := strconv.FormatInt(c.ID, 10)
		if strings.HasPrefix(id, toComplete) {
			completions = append(completions, id+"\t"+c.Name)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// joinArgs joins free-text arguments so quoting is optional.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

func formatID(id int64) string {
	return "#" + strconv.FormatInt(id, 10)
}

// toUserError converts parser errors into UserErrors with suggestions.
func toUserError(err error) error {
	if ue, ok := err.(interface{ ToUserError() *errors.UserError }); ok {
		return ue.ToUserError()
	}
	return err
}
