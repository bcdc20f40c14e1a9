// Package errors provides structured error handling for the releasekit CLI.
// It defines the error kinds every release step can fail with and categorized
// errors with actionable remediation guidance.
package errors

import (
	"errors"
	"fmt"
)

// Error kinds. Domain packages return typed errors that match one of these
// sentinels through errors.Is, so the CLI can map them to exit codes without
// depending on the concrete types.
var (
	// ErrMissingRequiredParameter is returned when a mandatory input is absent or empty.
	ErrMissingRequiredParameter = errors.New("missing required parameter")
	// ErrSectionNotFound is returned when the expected heading or pattern does not occur.
	ErrSectionNotFound = errors.New("section not found")
	// ErrAmbiguousSection is returned when the expected heading or pattern occurs more than once.
	ErrAmbiguousSection = errors.New("ambiguous section")
	// ErrFileAccess is returned when the target file is missing, unreadable or unwritable.
	ErrFileAccess = errors.New("file access error")
	// ErrBranchCreationFailed is returned when the version-control backend fails to create a branch.
	ErrBranchCreationFailed = errors.New("branch creation failed")
)

// ErrorCategory represents the type of error that occurred.
type ErrorCategory int

const (
	// Argument errors are caused by invalid or missing command arguments.
	Argument ErrorCategory = iota
	// Configuration errors are caused by invalid configuration files or values.
	Configuration
	// Prerequisite errors occur when required files or content are missing.
	Prerequisite
	// Runtime errors occur during command execution.
	Runtime
)

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Prerequisite:
		return "Prerequisite Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	// Category is the type of error (Argument, Configuration, etc.)
	Category ErrorCategory
	// Message is a human-readable description of what went wrong.
	Message string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
	// Usage shows the correct command syntax (optional, for argument errors).
	Usage string
	// Cause is the underlying error, if any. It is exposed through Unwrap so
	// errors.Is keeps working against the error kinds above.
	Cause error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// NewArgumentError creates a new argument error with the given message and remediation steps.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     message,
		Remediation: remediation,
	}
}

// NewArgumentErrorWithUsage creates a new argument error that includes correct usage syntax.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     message,
		Usage:       usage,
		Remediation: remediation,
	}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Configuration,
		Message:     message,
		Remediation: remediation,
	}
}

// Wrap wraps an existing error with a CLIError, preserving the original message.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
		Cause:       err,
	}
}

// WrapWithMessage wraps an error with a custom message and category.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %v", message, err),
		Remediation: remediation,
		Cause:       err,
	}
}

// AsCLIError attempts to convert an error to a CLIError.
// Returns nil if the error is not a CLIError.
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}
	return nil
}

// MissingParameterError reports an absent or empty mandatory input.
type MissingParameterError struct {
	Parameter string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter %q", e.Parameter)
}

// Is reports whether target is ErrMissingRequiredParameter.
func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingRequiredParameter
}

// FileAccessError reports a failed read or write of a target file.
type FileAccessError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrFileAccess.
func (e *FileAccessError) Is(target error) bool {
	return target == ErrFileAccess
}
