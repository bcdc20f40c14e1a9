package cli

import (
	"errors"
	"strings"
	"time"

	"github.com/ariel-frischer/releasekit/internal/changelog"
	"github.com/ariel-frischer/releasekit/internal/config"
	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
	"github.com/go-playground/validator/v10"
)

// GetChangelogParams are the inputs of get-changelog.
type GetChangelogParams struct {
	FilePath string `validate:"required"`
	Version  string `validate:"required"`
}

// GetEntriesParams are the inputs of get-entries.
type GetEntriesParams struct {
	FilePath    string `validate:"required"`
	VersionName string `validate:"required"`
}

// UpdateChangelogParams are the inputs of update-changelog.
type UpdateChangelogParams struct {
	FilePath         string `validate:"required"`
	ReleaseName      string `validate:"required"`
	UnversionedTitle string `validate:"required"`
	PlaceholderEntry string `validate:"required"`
	DryRun           bool
}

// SetManifestVersionParams are the inputs of set-flutter-version.
type SetManifestVersionParams struct {
	ManifestPath string `validate:"required"`
	VersionName  string `validate:"required"`
	DryRun       bool
}

// CreateBranchParams are the inputs of git-create-branch.
type CreateBranchParams struct {
	BranchName string `validate:"required"`
	Backend    string `validate:"oneof=go-git git-cli"`
	Dir        string
	Timeout    time.Duration `validate:"gte=0"`
}

// validateParams checks a parameter struct before any file or repository access.
// Required fields that are blank are reported as missing parameters.
func validateParams(params any, usage string) error {
	err := config.Validator().Struct(params)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return clierrors.Wrap(err, clierrors.Argument)
	}

	fieldErr := validationErrors[0]
	flag := flagName(fieldErr.Field())
	if fieldErr.Tag() == "required" {
		return clierrors.MissingParameter(flag, usage)
	}
	return clierrors.InvalidParameter(flag, config.FormatFieldError(fieldErr))
}

// validateTitle applies the heading title rules to a flag value.
func validateTitle(flag, title, usage string) error {
	err := changelog.ValidateTitle(title)
	if err == nil {
		return nil
	}
	var invalid *changelog.InvalidTitleError
	if errors.As(err, &invalid) {
		return clierrors.InvalidParameter(flag, invalid.Reason)
	}
	return clierrors.MissingParameter(flag, usage)
}

// resolveRequired returns the flag value or, when the flag is unset, the
// positional argument. Blank values are returned as is and caught by
// validateParams.
func resolveRequired(flag, flagValue string, args []string) (string, error) {
	if len(args) == 0 {
		return flagValue, nil
	}
	if flagValue != "" && flagValue != args[0] {
		return "", clierrors.InvalidParameter(flag, "given both as flag and as argument with different values")
	}
	return args[0], nil
}

// flagName converts a struct field name to its kebab-case flag name.
func flagName(field string) string {
	return strings.ReplaceAll(config.ToSnakeCase(field), "_", "-")
}

// orDefault returns value unless it is empty.
func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
