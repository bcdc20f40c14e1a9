package changelog

import (
	"errors"
	"testing"

	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleChangelog = `# Changelog

All notable changes to this project are documented here.

## Unversioned
- Add dark mode

## 1.1.0
- Fix crash on startup

- Improve login screen


- Update translations

## 1.0.0
- Initial release
`

func TestSectionBody(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		doc   string
		title string
		want  string
	}{
		"body between two headings is returned unmodified": {
			doc:   "## X\n  first\n\nsecond  \n## Y\nother\n",
			title: "X",
			want:  "\n  first\n\nsecond  \n",
		},
		"last section runs to end of document": {
			doc:   sampleChangelog,
			title: "1.0.0",
			want:  "\n- Initial release\n",
		},
		"middle section keeps blank lines": {
			doc:   sampleChangelog,
			title: "1.1.0",
			want:  "\n- Fix crash on startup\n\n- Improve login screen\n\n\n- Update translations\n\n",
		},
		"unversioned section": {
			doc:   sampleChangelog,
			title: "Unversioned",
			want:  "\n- Add dark mode\n\n",
		},
		"heading at end of document has empty body": {
			doc:   "intro\n## 2.0.0",
			title: "2.0.0",
			want:  "",
		},
		"subheading ends the body": {
			doc:   "## 1.0.0\n- a\n### Fixed\n- b\n",
			title: "1.0.0",
			want:  "\n- a\n",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := SectionBody(tt.doc, tt.title)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSectionBody_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		doc      string
		title    string
		wantKind error
		check    func(t *testing.T, err error)
	}{
		"missing heading": {
			doc:      sampleChangelog,
			title:    "9.9.9",
			wantKind: clierrors.ErrSectionNotFound,
			check: func(t *testing.T, err error) {
				var nf *SectionNotFoundError
				require.ErrorAs(t, err, &nf)
				assert.Equal(t, "9.9.9", nf.Title)
			},
		},
		"duplicate heading": {
			doc:      "## 1.0.0\n- a\n## 1.0.0\n- b\n",
			title:    "1.0.0",
			wantKind: clierrors.ErrAmbiguousSection,
			check: func(t *testing.T, err error) {
				var amb *AmbiguousSectionError
				require.ErrorAs(t, err, &amb)
				assert.Equal(t, 2, amb.Count)
			},
		},
		"prefix of another heading counts as occurrence": {
			doc:      "## 1.0\n- a\n## 1.0.1\n- b\n",
			title:    "1.0",
			wantKind: clierrors.ErrAmbiguousSection,
		},
		"empty document": {
			doc:      "",
			title:    "1.0.0",
			wantKind: clierrors.ErrSectionNotFound,
		},
		"empty title": {
			doc:      sampleChangelog,
			title:    "  ",
			wantKind: clierrors.ErrMissingRequiredParameter,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := SectionBody(tt.doc, tt.title)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.Is(err, tt.wantKind), "got %v", err)
			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

func TestSectionBody_TitleContainingMarker(t *testing.T) {
	t.Parallel()

	_, err := SectionBody("## a ## b\n", "a ## b")
	var invalid *InvalidTitleError
	require.ErrorAs(t, err, &invalid)
}

func TestEntries(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		doc   string
		title string
		want  []string
	}{
		"blank line runs collapse": {
			doc:   "## 1.0.0\na\n\nb\n\n\nc",
			title: "1.0.0",
			want:  []string{"a", "b", "c"},
		},
		"entries are trimmed": {
			doc:   "## 1.0.0\n   - a  \n\t- b\n## 0.9.0\n- old\n",
			title: "1.0.0",
			want:  []string{"- a", "- b"},
		},
		"whitespace-only lines are dropped": {
			doc:   "## 1.0.0\n- a\n   \n- b\n",
			title: "1.0.0",
			want:  []string{"- a", "- b"},
		},
		"crlf line endings": {
			doc:   "## 1.0.0\r\n- a\r\n\r\n- b\r\n## 0.1.0\r\n",
			title: "1.0.0",
			want:  []string{"- a", "- b"},
		},
		"empty section": {
			doc:   "## 1.0.0\n\n\n## 0.9.0\n- x\n",
			title: "1.0.0",
			want:  []string{},
		},
		"order is preserved": {
			doc:   sampleChangelog,
			title: "1.1.0",
			want:  []string{"- Fix crash on startup", "- Improve login screen", "- Update translations"},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := Entries(tt.doc, tt.title)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntries_AmbiguousAndMissing(t *testing.T) {
	t.Parallel()

	_, err := Entries("## 1.0.0\n- a\n## 1.0.0\n- b\n", "1.0.0")
	assert.ErrorIs(t, err, clierrors.ErrAmbiguousSection)

	_, err = Entries(sampleChangelog, "0.0.1")
	assert.ErrorIs(t, err, clierrors.ErrSectionNotFound)
}

func TestQueriesAreIdempotent(t *testing.T) {
	t.Parallel()

	first, err := SectionBody(sampleChangelog, "1.1.0")
	require.NoError(t, err)
	second, err := SectionBody(sampleChangelog, "1.1.0")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	e1, err := Entries(sampleChangelog, "1.1.0")
	require.NoError(t, err)
	e2, err := Entries(sampleChangelog, "1.1.0")
	require.NoError(t, err)
	assert.Equal(t, e1, e2)
}

func TestSections(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		doc  string
		want []string
	}{
		"sample changelog": {
			doc:  sampleChangelog,
			want: []string{"Unversioned", "1.1.0", "1.0.0"},
		},
		"subheadings and title are ignored": {
			doc:  "# Changelog\n## 2.0.0\n### Added\n- x\n## 1.0.0 \n",
			want: []string{"2.0.0", "1.0.0"},
		},
		"no sections": {
			doc:  "just text\n",
			want: []string{},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Sections(tt.doc))
		})
	}
}

func TestValidateTitle(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		title   string
		wantErr bool
	}{
		"version":        {title: "1.2.0"},
		"word":           {title: "Unversioned"},
		"with spaces":    {title: "1.2.0 - 2026-10-16"},
		"empty":          {title: "", wantErr: true},
		"contains ##":    {title: "1.0 ## beta", wantErr: true},
		"contains break": {title: "1.0\n2.0", wantErr: true},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := ValidateTitle(tt.title)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
