package runtime

import (
	"github.com/manav03panchal/ctt/internal/errors"
)

// Suggestion returns the most specific suggestion for err.
func Suggestion(err error) string {
	if s := errors.GetSuggestion(err); s != "" {
		return s
	}
	return errors.GetCategorySuggestion(err)
}

// FormatError formats an error with optional suggestion.
func FormatError(err error) string {
	msg := err.Error()
	if suggestion := Suggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}

// ExitCode maps an error to a process exit code: 2 for input the user can
// fix, 1 for everything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.IsUserError(err), errors.IsFormatError(err):
		return 2
	default:
		return 1
	}
}
