package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	// User input errors
	ErrNoActiveCompany:  "Use 'ctt track <id>' or select a company in the tracker first.",
	ErrCompanyNotFound:  "Use 'ctt companies' to see available companies and their ids.",
	ErrCommentNotFound:  "Use 'ctt notes' to see notes and their ids.",
	ErrBlankInput:       "Provide some non-blank text.",
	ErrInvalidTimestamp: "Try formats like 'yesterday', 'last week', or '2 hours ago'.",
	ErrMissingField:     "A backup must contain \"entities\", \"elapsedTimeMap\" and \"notes\".",
	ErrInvalidJSON:      "Please select a valid backup file created with 'ctt export'.",

	// System errors
	ErrStorageFailed:    "Your changes are kept in memory for this session. Check the data directory.",
	ErrPermissionDenied: "Check file permissions in your data directory (~/.local/share/ctt/).",
	ErrDatabaseLocked:   "Another ctt instance is running. Close it and try again.",
	ErrDiskFull:         "Free up some disk space and try again.",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	return ""
}

// GetCategorySuggestion returns a generic suggestion based on error category.
func GetCategorySuggestion(err error) string {
	if IsUserError(err) {
		return "Check your input and try again. Use --help for usage information."
	}
	if IsFormatError(err) {
		return "Please select a valid backup file."
	}
	if IsStorageError(err) || IsSystemError(err) {
		return "This is a system error. Check system resources and try again."
	}
	return ""
}
