// Package errors provides consistent error types for ctt.
// Besides the generic UserError and SystemError categories it defines the two
// domain kinds: StorageError (persistence failed, state continues in memory)
// and FormatError (an imported document is not a valid snapshot).
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrNoActiveCompany   = errors.New("no active company")
	ErrCompanyNotFound   = errors.New("company not found")
	ErrCommentNotFound   = errors.New("note not found")
	ErrBlankInput        = errors.New("input is blank")
	ErrInvalidJSON       = errors.New("invalid JSON document")
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidTimestamp  = errors.New("invalid timestamp")
	ErrStorageFailed     = errors.New("storage failed")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrDatabaseLocked    = errors.New("database locked by another process")
	ErrDiskFull          = errors.New("disk full")
)

// UserError represents an error that the user can fix.
type UserError struct {
	Message    string // What happened
	Suggestion string // How to fix it
	Field      string // The field/input that caused the error (optional)
	Value      string // The invalid value (optional)
}

func (e *UserError) Error() string {
	msg := e.Message
	if e.Field != "" && e.Value != "" {
		msg = fmt.Sprintf("%s: '%s'", e.Message, e.Value)
	}
	return msg
}

// NewUserError creates a new UserError.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Suggestion: suggestion,
	}
}

// NewUserErrorWithField creates a new UserError with field context.
func NewUserErrorWithField(field, value, message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Field:      field,
		Value:      value,
		Suggestion: suggestion,
	}
}

// SystemError represents a system-level error that the user cannot directly fix.
type SystemError struct {
	Message string // What happened
	Cause   error  // The underlying error
	Op      string // The operation that failed (optional)
}

func (e *SystemError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s during %s", e.Message, e.Op)
	}
	return e.Message
}

func (e *SystemError) Unwrap() error {
	return e.Cause
}

// NewSystemError creates a new SystemError.
func NewSystemError(message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
	}
}

// NewSystemErrorWithOp creates a new SystemError with operation context.
func NewSystemErrorWithOp(op, message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
		Op:      op,
	}
}

// StorageError reports a failed read or write against the persistence bridge.
// The tracker logs it and keeps running in memory.
type StorageError struct {
	Op    string // load or save
	Cause error
}

func (e *StorageError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("storage %s failed", e.Op)
	}
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Cause)
}

func (e *StorageError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrStorageFailed}
	}
	return []error{ErrStorageFailed, e.Cause}
}

// NewStorageError creates a new StorageError.
func NewStorageError(op string, cause error) *StorageError {
	return &StorageError{Op: op, Cause: cause}
}

// FormatError reports an imported document that is not a valid snapshot.
type FormatError struct {
	Reason string // Human readable description
	Field  string // Missing top-level field, if that was the problem
	Cause  error
}

func (e *FormatError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid backup file format: missing %q", e.Field)
	}
	if e.Reason != "" {
		return "invalid backup file format: " + e.Reason
	}
	return "invalid backup file format"
}

func (e *FormatError) Unwrap() error {
	return e.Cause
}

// NewMissingFieldError creates a FormatError for an absent top-level field.
func NewMissingFieldError(field string) *FormatError {
	return &FormatError{Field: field, Cause: ErrMissingField}
}

// NewInvalidJSONError creates a FormatError for a document that does not parse.
func NewInvalidJSONError(cause error) *FormatError {
	return &FormatError{
		Reason: "not a valid JSON snapshot",
		Cause:  fmt.Errorf("%w: %v", ErrInvalidJSON, cause),
	}
}

// IsUserError checks if an error is a UserError.
func IsUserError(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}

// IsSystemError checks if an error is a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// IsStorageError checks if an error is a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// IsFormatError checks if an error is a FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// AsUserError extracts a UserError from an error chain.
func AsUserError(err error) (*UserError, bool) {
	var ue *UserError
	ok := errors.As(err, &ue)
	return ue, ok
}

// AsFormatError extracts a FormatError from an error chain.
func AsFormatError(err error) (*FormatError, bool) {
	var fe *FormatError
	ok := errors.As(err, &fe)
	return fe, ok
}

// AsStorageError extracts a StorageError from an error chain.
func AsStorageError(err error) (*StorageError, bool) {
	var se *StorageError
	ok := errors.As(err, &se)
	return se, ok
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted additional context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
