package cli

import (
	"errors"
	"testing"

	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateParams(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		params      any
		wantMissing bool
		wantInvalid bool
		wantMsg     string
	}{
		"complete get-changelog params": {
			params: GetChangelogParams{FilePath: "CHANGELOG.md", Version: "1.0.0"},
		},
		"missing version": {
			params:      GetChangelogParams{FilePath: "CHANGELOG.md"},
			wantMissing: true,
			wantMsg:     "version is required",
		},
		"missing file path": {
			params:      GetEntriesParams{VersionName: "1.0.0"},
			wantMissing: true,
			wantMsg:     "file-path is required",
		},
		"missing release name": {
			params:      UpdateChangelogParams{FilePath: "CHANGELOG.md", UnversionedTitle: "Unversioned", PlaceholderEntry: "-"},
			wantMissing: true,
			wantMsg:     "release-name is required",
		},
		"missing manifest version": {
			params:      SetManifestVersionParams{ManifestPath: "pubspec.yaml"},
			wantMissing: true,
			wantMsg:     "version-name is required",
		},
		"unknown backend": {
			params:      CreateBranchParams{BranchName: "release", Backend: "svn"},
			wantInvalid: true,
			wantMsg:     "invalid backend: must be one of: go-git, git-cli",
		},
		"negative timeout": {
			params:      CreateBranchParams{BranchName: "release", Backend: "go-git", Timeout: -1},
			wantInvalid: true,
			wantMsg:     "invalid timeout",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := validateParams(tt.params, "releasekit cmd")
			if !tt.wantMissing && !tt.wantInvalid {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Equal(t, tt.wantMissing, errors.Is(err, clierrors.ErrMissingRequiredParameter))
			assert.Equal(t, ExitInvalidArguments, ExitCode(err))
		})
	}
}

func TestResolveRequired(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		flagValue string
		args      []string
		want      string
		wantErr   bool
	}{
		"flag only":      {flagValue: "1.0.0", want: "1.0.0"},
		"argument only":  {args: []string{"1.0.0"}, want: "1.0.0"},
		"neither":        {want: ""},
		"both equal":     {flagValue: "1.0.0", args: []string{"1.0.0"}, want: "1.0.0"},
		"both different": {flagValue: "1.0.0", args: []string{"2.0.0"}, wantErr: true},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveRequired("version", tt.flagValue, tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlagName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "version-name", flagName("VersionName"))
	assert.Equal(t, "file-path", flagName("FilePath"))
	assert.Equal(t, "version", flagName("Version"))
}
