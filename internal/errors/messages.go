package errors

import (
	"errors"
	"fmt"
)

// Common error messages for the releasekit CLI.
// These templates ensure consistent, actionable error messages.

// MissingParameter creates an error for an absent mandatory input.
func MissingParameter(param, usage string) *CLIError {
	e := NewArgumentErrorWithUsage(
		fmt.Sprintf("%s is required", param),
		usage,
		fmt.Sprintf("Pass it with --%s or as the positional argument", param),
	)
	e.Cause = &MissingParameterError{Parameter: param}
	return e
}

// InvalidParameter creates an error for an input that is present but unusable.
func InvalidParameter(param, reason string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid %s: %s", param, reason),
		fmt.Sprintf("Check the value passed with --%s", param),
	)
}

// SectionNotFound creates an error when a heading or pattern is absent from a file.
func SectionNotFound(err error, path string) *CLIError {
	return WrapWithMessage(err, Prerequisite,
		fmt.Sprintf("section lookup failed in %s", path),
		"Check the spelling of the section title or version",
		fmt.Sprintf("List available sections with: releasekit list-sections --file-path %s", path),
		"Use --lenient to print nothing instead of failing on read commands",
	)
}

// AmbiguousSection creates an error when a heading or pattern occurs more than once.
func AmbiguousSection(err error, path string) *CLIError {
	return WrapWithMessage(err, Prerequisite,
		fmt.Sprintf("refusing to guess in %s", path),
		"Remove or rename the duplicate heading so the target occurs exactly once",
		"Note that titles match by substring: '## 1.0' also matches '## 1.0.1'",
	)
}

// FileAccess creates an error when a target file cannot be read or written.
func FileAccess(err error) *CLIError {
	return Wrap(err, Prerequisite,
		"Check that the file exists and the path is correct",
		"Verify read/write permissions on the file and its directory",
	)
}

// BranchCreation creates an error when the VCS backend failed to create a branch.
func BranchCreation(err error) *CLIError {
	return Wrap(err, Runtime,
		"Make sure the working directory is inside a git repository with at least one commit",
		"Check that the branch does not already exist: git branch --list",
		"Try the other backend with --backend git-cli or --backend go-git",
	)
}

// FromError classifies err by its kind and returns a CLIError with matching
// remediation. Errors that already are CLIErrors are returned unchanged.
// path is the file the operation targeted, used in messages; may be empty.
func FromError(err error, path string) *CLIError {
	if err == nil {
		return nil
	}
	if cliErr := AsCLIError(err); cliErr != nil {
		return cliErr
	}

	switch {
	case errors.Is(err, ErrMissingRequiredParameter):
		return Wrap(err, Argument)
	case errors.Is(err, ErrFileAccess):
		return FileAccess(err)
	case errors.Is(err, ErrSectionNotFound):
		return SectionNotFound(err, path)
	case errors.Is(err, ErrAmbiguousSection):
		return AmbiguousSection(err, path)
	case errors.Is(err, ErrBranchCreationFailed):
		return BranchCreation(err)
	default:
		return Wrap(err, Runtime)
	}
}
