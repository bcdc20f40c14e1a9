package cli

import (
	"errors"

	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
)

// Exit codes for the releasekit CLI.
// Scripts can branch on them instead of parsing stderr.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates an error without a more specific code
	ExitFailure = 1

	// ExitFileAccess indicates the target file could not be read or written
	ExitFileAccess = 2

	// ExitInvalidArguments indicates a missing or invalid parameter
	ExitInvalidArguments = 3

	// ExitNotFound indicates the section or version line does not exist
	ExitNotFound = 4

	// ExitAmbiguous indicates the section or version line occurs more than once
	ExitAmbiguous = 5

	// ExitBranchCreationFailed indicates the VCS backend could not create the branch
	ExitBranchCreationFailed = 6
)

// ExitCode maps an error returned by Execute to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, clierrors.ErrMissingRequiredParameter):
		return ExitInvalidArguments
	case errors.Is(err, clierrors.ErrFileAccess):
		return ExitFileAccess
	case errors.Is(err, clierrors.ErrSectionNotFound):
		return ExitNotFound
	case errors.Is(err, clierrors.ErrAmbiguousSection):
		return ExitAmbiguous
	case errors.Is(err, clierrors.ErrBranchCreationFailed):
		return ExitBranchCreationFailed
	}

	if cliErr := clierrors.AsCLIError(err); cliErr != nil && cliErr.Category == clierrors.Argument {
		return ExitInvalidArguments
	}
	return ExitFailure
}
