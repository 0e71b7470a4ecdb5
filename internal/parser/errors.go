package parser

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/ctt/internal/errors"
)

// TimeParseError represents a time parsing error with helpful suggestions.
type TimeParseError struct {
	Input      string
	Field      string
	Message    string
	Examples   []string
	Suggestion string
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Input, e.Message)
}

// Unwrap lets callers match errors.ErrInvalidTimestamp.
func (e *TimeParseError) Unwrap() error {
	return errors.ErrInvalidTimestamp
}

// TimestampExamples provides example timestamp formats.
var TimestampExamples = []string{
	"yesterday",
	"2 hours ago",
	"this week",
	"last month",
	"2024-03-15",
}

// NewTimestampError creates a timestamp parse error with standard examples.
func NewTimestampError(input string) *TimeParseError {
	return &TimeParseError{
		Input:      input,
		Field:      "timestamp",
		Message:    "could not parse time",
		Examples:   TimestampExamples,
		Suggestion: "Try natural language like 'yesterday', '2 hours ago', or 'this week'.",
	}
}

// ToUserError converts a TimeParseError to a UserError for consistent handling.
func (e *TimeParseError) ToUserError() *errors.UserError {
	suggestion := e.Suggestion
	if len(e.Examples) > 0 && suggestion == "" {
		suggestion = fmt.Sprintf("Try: %s", strings.Join(e.Examples[:min(3, len(e.Examples))], ", "))
	}

	return errors.NewUserErrorWithField(e.Field, e.Input, e.Message, suggestion)
}

// IDError reports an argument that is not a valid numeric id.
type IDError struct {
	Kind  string // company or note
	Input string
}

func (e *IDError) Error() string {
	return fmt.Sprintf("invalid %s id '%s'", e.Kind, e.Input)
}

// ToUserError converts an IDError to a UserError.
func (e *IDError) ToUserError() *errors.UserError {
	list := "ctt companies"
	if e.Kind == "note" {
		list = "ctt notes"
	}
	return errors.NewUserErrorWithField(e.Kind, e.Input,
		fmt.Sprintf("Invalid %s id", e.Kind),
		fmt.Sprintf("Ids are positive numbers. Use '%s' to list them.", list))
}
