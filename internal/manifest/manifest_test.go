package manifest

import (
	"os"
	"path/filepath"
	"testing"

	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePubspec = `name: app
description: A sample app
# version: 0.0.1 is commented out
version: 1.0.0+3
environment:
  sdk: ">=3.0.0 <4.0.0"
dependencies:
  some_package:
    version: ^2.0.0
`

func TestSetVersion(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content string
		version string
		want    string
	}{
		"replaces only the version line": {
			content: "name: app\nversion: 1.0.0\nflutter: 2.0\n",
			version: "1.0.1",
			want:    "name: app\nversion: 1.0.1\nflutter: 2.0\n",
		},
		"nested and commented version keys are ignored": {
			content: samplePubspec,
			version: "1.1.0+4",
			want: `name: app
description: A sample app
# version: 0.0.1 is commented out
version: 1.1.0+4
environment:
  sdk: ">=3.0.0 <4.0.0"
dependencies:
  some_package:
    version: ^2.0.0
`,
		},
		"no trailing newline": {
			content: "name: app\nversion: 1.0.0",
			version: "2.0.0",
			want:    "name: app\nversion: 2.0.0",
		},
		"crlf endings preserved": {
			content: "name: app\r\nversion: 1.0.0\r\nflutter: 2.0\r\n",
			version: "1.0.1",
			want:    "name: app\r\nversion: 1.0.1\r\nflutter: 2.0\r\n",
		},
		"version without space after colon": {
			content: "version:1.0.0\n",
			version: "1.0.1",
			want:    "version: 1.0.1\n",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := SetVersion(tt.content, tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetVersion_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content  string
		version  string
		wantKind error
	}{
		"no version line": {
			content:  "name: app\n",
			version:  "1.0.0",
			wantKind: clierrors.ErrSectionNotFound,
		},
		"empty version value does not count": {
			content:  "name: app\nversion:\n",
			version:  "1.0.0",
			wantKind: clierrors.ErrSectionNotFound,
		},
		"two version lines": {
			content:  "version: 1.0.0\nname: app\nversion: 1.0.1\n",
			version:  "2.0.0",
			wantKind: clierrors.ErrAmbiguousSection,
		},
		"empty version name": {
			content:  "version: 1.0.0\n",
			version:  " ",
			wantKind: clierrors.ErrMissingRequiredParameter,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := SetVersion(tt.content, tt.version)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, tt.wantKind)
		})
	}
}

func TestSetVersion_AmbiguousReportsLines(t *testing.T) {
	t.Parallel()

	_, err := SetVersion("version: 1\nname: a\nversion: 2\n", "3")
	var amb *AmbiguousVersionLineError
	require.ErrorAs(t, err, &amb)
	assert.Equal(t, []int{1, 3}, amb.Lines)
}

func TestVersion(t *testing.T) {
	t.Parallel()

	got, err := Version(samplePubspec)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0+3", got)

	got, err = Version("version: 2.1.0\r\n")
	require.NoError(t, err)
	assert.Equal(t, "2.1.0", got)

	_, err = Version("name: app\n")
	assert.ErrorIs(t, err, clierrors.ErrSectionNotFound)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content string
		want    string
		wantErr bool
	}{
		"matching version": {content: "name: a\nversion: 1.0.0\n", want: "1.0.0"},
		"float-like value": {content: "version: 1.0\n", want: "1.0"},
		"mismatch":         {content: "version: 1.0.0 # pinned\n", want: "1.0.0 # pinned", wantErr: true},
		"broken yaml":      {content: "name: [unclosed\nversion: 1.0.0\n", want: "1.0.0", wantErr: true},
		"not a mapping":    {content: "- a\n- b\n", want: "1.0.0", wantErr: true},
		"empty document":   {content: "", want: "1.0.0", wantErr: true},
		"nested key only":  {content: "deps:\n  version: 1.0.0\n", want: "1.0.0", wantErr: true},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.content, tt.want)
			if tt.wantErr {
				var invalid *InvalidManifestError
				assert.ErrorAs(t, err, &invalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFile_SetVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pubspec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(samplePubspec), 0o644))

	f := NewFile(path)
	require.NoError(t, f.SetVersion("1.2.0+5"))

	got, err := f.Version()
	require.NoError(t, err)
	assert.Equal(t, "1.2.0+5", got)
}

func TestFile_SetVersion_FailureLeavesFileUntouched(t *testing.T) {
	t.Parallel()

	original := "version: 1.0.0\nname: app\nversion: 1.0.1\n"
	path := filepath.Join(t.TempDir(), "pubspec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	err := NewFile(path).SetVersion("2.0.0")
	require.ErrorIs(t, err, clierrors.ErrAmbiguousSection)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestFile_MissingFile(t *testing.T) {
	t.Parallel()

	f := NewFile(filepath.Join(t.TempDir(), "pubspec.yaml"))
	assert.ErrorIs(t, f.SetVersion("1.0.0"), clierrors.ErrFileAccess)

	_, err := f.Version()
	assert.ErrorIs(t, err, clierrors.ErrFileAccess)
}

func TestNewFile_DefaultPath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, DefaultPath, NewFile("").Path)
}
