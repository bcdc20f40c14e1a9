// Package manifest reads and bumps the "version:" line of a pubspec-style
// project manifest.
//
// The edit is line oriented: the manifest is split into lines, the single line
// starting with "version:" is replaced and the lines are joined again, so
// comments, ordering and formatting of every other line survive untouched.
// The result is then parsed with yaml.v3 to make sure the file still decodes
// and carries the new version before anything is written.
package manifest

import (
	"fmt"
	"strings"

	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
	"github.com/ariel-frischer/releasekit/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the manifest edited when no path is configured.
const DefaultPath = "./pubspec.yaml"

const versionKey = "version:"

var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for manifest operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// VersionLineNotFoundError is returned when no "version:" line exists.
type VersionLineNotFoundError struct{}

func (e *VersionLineNotFoundError) Error() string {
	return "no \"version:\" line found in manifest"
}

// Is reports whether target is clierrors.ErrSectionNotFound.
func (e *VersionLineNotFoundError) Is(target error) bool {
	return target == clierrors.ErrSectionNotFound
}

// AmbiguousVersionLineError is returned when several "version:" lines exist.
type AmbiguousVersionLineError struct {
	Lines []int // 1-based line numbers
}

func (e *AmbiguousVersionLineError) Error() string {
	nums := make([]string, len(e.Lines))
	for i, n := range e.Lines {
		nums[i] = fmt.Sprint(n)
	}
	return fmt.Sprintf("manifest has %d \"version:\" lines (lines %s)", len(e.Lines), strings.Join(nums, ", "))
}

// Is reports whether target is clierrors.ErrAmbiguousSection.
func (e *AmbiguousVersionLineError) Is(target error) bool {
	return target == clierrors.ErrAmbiguousSection
}

// InvalidManifestError is returned when the edited manifest no longer decodes
// or does not carry the expected version.
type InvalidManifestError struct {
	Reason string
}

func (e *InvalidManifestError) Error() string {
	return "manifest invalid after edit: " + e.Reason
}

// isVersionLine matches the "^version:.+$" rule: the key at column zero
// followed by at least one character on the same line.
func isVersionLine(line string) bool {
	return strings.HasPrefix(line, versionKey) && len(strings.TrimSuffix(line, "\r")) > len(versionKey)
}

// findVersionLine returns the index of the single version line in lines.
func findVersionLine(lines []string) (int, error) {
	var found []int
	for i, line := range lines {
		if isVersionLine(line) {
			found = append(found, i)
		}
	}

	switch len(found) {
	case 0:
		return -1, &VersionLineNotFoundError{}
	case 1:
		return found[0], nil
	default:
		nums := make([]int, len(found))
		for i, idx := range found {
			nums[i] = idx + 1
		}
		return -1, &AmbiguousVersionLineError{Lines: nums}
	}
}

// Version returns the value of the manifest's single version line.
func Version(content string) (string, error) {
	lines := strings.Split(content, "\n")
	idx, err := findVersionLine(lines)
	if err != nil {
		return "", err
	}
	value := strings.TrimPrefix(strings.TrimSuffix(lines[idx], "\r"), versionKey)
	return strings.TrimSpace(value), nil
}

// SetVersion replaces the manifest's single version line with
// "version: <versionName>". Every other line, including a trailing newline
// and CRLF endings, is preserved.
func SetVersion(content, versionName string) (string, error) {
	if strings.TrimSpace(versionName) == "" {
		return "", &clierrors.MissingParameterError{Parameter: "version_name"}
	}
	if strings.ContainsAny(versionName, "\r\n") {
		return "", &InvalidManifestError{Reason: "version name must be a single line"}
	}

	lines := strings.Split(content, "\n")
	idx, err := findVersionLine(lines)
	if err != nil {
		return "", err
	}

	replacement := versionKey + " " + versionName
	if strings.HasSuffix(lines[idx], "\r") {
		replacement += "\r"
	}
	logDebug("[manifest] line %d: %q -> %q", idx+1, strings.TrimSuffix(lines[idx], "\r"), versionKey+" "+versionName)
	lines[idx] = replacement

	return strings.Join(lines, "\n"), nil
}

// Validate checks that content decodes as YAML and that its top-level
// version equals want.
func Validate(content, want string) error {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return &InvalidManifestError{Reason: err.Error()}
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return &InvalidManifestError{Reason: "top level is not a mapping"}
	}

	root := doc.Content[0]
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "version" {
			continue
		}
		if got := root.Content[i+1].Value; got != want {
			return &InvalidManifestError{Reason: fmt.Sprintf("version decodes as %q, want %q", got, want)}
		}
		return nil
	}
	return &InvalidManifestError{Reason: "no top-level version key"}
}

// File is a manifest on disk. Every call reads the file fresh.
type File struct {
	Path string
}

// NewFile returns a File for path, falling back to DefaultPath.
func NewFile(path string) *File {
	if path == "" {
		path = DefaultPath
	}
	return &File{Path: path}
}

// Version reads the manifest and returns its current version.
func (f *File) Version() (string, error) {
	content, err := fsutil.ReadFile(f.Path)
	if err != nil {
		return "", err
	}
	return Version(content)
}

// Render reads the manifest and returns it with the version replaced and
// validated, without writing anything.
func (f *File) Render(versionName string) (string, error) {
	content, err := fsutil.ReadFile(f.Path)
	if err != nil {
		return "", err
	}

	updated, err := SetVersion(content, versionName)
	if err != nil {
		return "", err
	}
	if err := Validate(updated, versionName); err != nil {
		return "", err
	}
	return updated, nil
}

// SetVersion rewrites the manifest with versionName as its version.
// The file is left untouched when any step fails.
func (f *File) SetVersion(versionName string) error {
	updated, err := f.Render(versionName)
	if err != nil {
		return err
	}
	if err := fsutil.AtomicWriteFile(f.Path, []byte(updated)); err != nil {
		return err
	}
	logDebug("[manifest] wrote %s", f.Path)
	return nil
}
