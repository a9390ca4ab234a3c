package errors

import (
	"fmt"
)

// DocqueryError is the structured error type for docquery's boundaries:
// config loading, dictionary files, and document ingestion. The engine core
// itself never returns errors for well-typed input.
type DocqueryError struct {
	// Code is the unique error code (e.g., "ERR_201_FILE_NOT_FOUND").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Validation, Internal).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *DocqueryError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *DocqueryError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with DocqueryError.
func (e *DocqueryError) Is(target error) bool {
	if t, ok := target.(*DocqueryError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *DocqueryError) WithDetail(key, value string) *DocqueryError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
// Returns the error for method chaining.
func (e *DocqueryError) WithSuggestion(suggestion string) *DocqueryError {
	e.Suggestion = suggestion
	return e
}

// New creates a new DocqueryError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *DocqueryError {
	return &DocqueryError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a DocqueryError from an existing error.
// The error's message becomes the DocqueryError message.
func Wrap(code string, err error) *DocqueryError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *DocqueryError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// IOError creates an I/O-related error.
func IOError(message string, cause error) *DocqueryError {
	return New(ErrCodeFileNotFound, message, cause)
}

// ValidationError creates a validation-related error.
func ValidationError(message string, cause error) *DocqueryError {
	return New(ErrCodeInvalidInput, message, cause)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *DocqueryError {
	return New(ErrCodeInternal, message, cause)
}

// IsFatal checks if an error has fatal severity.
// Fatal errors should abort the current operation.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	if de, ok := err.(*DocqueryError); ok {
		return de.Severity == SeverityFatal
	}
	return false
}

// GetCode extracts the error code from a DocqueryError.
// Returns empty string if not a DocqueryError.
func GetCode(err error) string {
	if de, ok := err.(*DocqueryError); ok {
		return de.Code
	}
	return ""
}

// GetCategory extracts the category from a DocqueryError.
// Returns empty string if not a DocqueryError.
func GetCategory(err error) Category {
	if de, ok := err.(*DocqueryError); ok {
		return de.Category
	}
	return ""
}
