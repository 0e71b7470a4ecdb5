// Package validate provides input validation helpers for ctt.
package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/manav03panchal/ctt/internal/errors"
)

const (
	// MaxCompanyNameLength is the maximum length for a company name.
	MaxCompanyNameLength = 128
	// MaxCommentLength is the maximum length for a note.
	MaxCommentLength = 4096
)

// CompanyName validates an already sanitized company name.
func CompanyName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewUserError("Company name cannot be empty", "Provide a company name")
	}
	if utf8.RuneCountInString(name) > MaxCompanyNameLength {
		return errors.NewUserErrorWithField("company", name,
			"Company name too long",
			"Company names must be 128 characters or fewer")
	}
	return nil
}

// CommentText validates an already sanitized note.
func CommentText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.NewUserError("Note cannot be empty", "Type something before saving the note")
	}
	if utf8.RuneCountInString(text) > MaxCommentLength {
		return errors.NewUserError(
			"Note too long",
			"Notes must be 4096 characters or fewer")
	}
	return nil
}

// NonEmpty validates that a string is not empty after trimming.
func NonEmpty(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewUserErrorWithField(fieldName, value,
			fieldName+" cannot be empty",
			"Provide a value for "+fieldName)
	}
	return nil
}
