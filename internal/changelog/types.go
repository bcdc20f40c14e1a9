package changelog

import (
	"fmt"
	"strings"

	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
)

const (
	// HeadingMarker starts every section heading.
	HeadingMarker = "##"

	// DefaultUnversionedTitle is the title of the section collecting changes
	// that have not been released yet.
	DefaultUnversionedTitle = "Unversioned"

	// DefaultPlaceholderEntry is the single entry written under a freshly
	// created Unversioned section.
	DefaultPlaceholderEntry = "-"
)

// debugLogger is a function that logs debug messages when debug mode is enabled.
// By default, it's a no-op. Set it via SetDebugLogger to enable debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for changelog operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// SectionNotFoundError is returned when no "## <title>" heading exists.
type SectionNotFoundError struct {
	Title string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("section %q not found", e.Title)
}

// Is reports whether target is clierrors.ErrSectionNotFound.
func (e *SectionNotFoundError) Is(target error) bool {
	return target == clierrors.ErrSectionNotFound
}

// AmbiguousSectionError is returned when "## <title>" occurs more than once.
type AmbiguousSectionError struct {
	Title string
	Count int
}

func (e *AmbiguousSectionError) Error() string {
	return fmt.Sprintf("section %q is ambiguous (heading occurs %d times)", e.Title, e.Count)
}

// Is reports whether target is clierrors.ErrAmbiguousSection.
func (e *AmbiguousSectionError) Is(target error) bool {
	return target == clierrors.ErrAmbiguousSection
}

// SectionExistsError is returned when promoting to a release title whose
// heading would not be unique in the promoted document, because it or a
// heading it is a substring of already exists.
type SectionExistsError struct {
	Title string
}

func (e *SectionExistsError) Error() string {
	return fmt.Sprintf("section %q already exists", e.Title)
}

// Is reports whether target is clierrors.ErrAmbiguousSection.
func (e *SectionExistsError) Is(target error) bool {
	return target == clierrors.ErrAmbiguousSection
}

// InvalidTitleError is returned for titles that cannot be matched reliably.
type InvalidTitleError struct {
	Title  string
	Reason string
}

func (e *InvalidTitleError) Error() string {
	return fmt.Sprintf("invalid section title %q: %s", e.Title, e.Reason)
}

// ValidateTitle checks that title can be used as a heading target.
// Empty titles are reported as a missing parameter.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &clierrors.MissingParameterError{Parameter: "title"}
	}
	if strings.Contains(title, HeadingMarker) {
		return &InvalidTitleError{Title: title, Reason: "must not contain \"##\""}
	}
	if strings.ContainsAny(title, "\r\n") {
		return &InvalidTitleError{Title: title, Reason: "must be a single line"}
	}
	return nil
}

// Heading returns the heading line text for title, e.g. "## 1.2.0".
func Heading(title string) string {
	return HeadingMarker + " " + title
}

// PromoteOptions configures PromoteUnversioned. Zero values use the defaults.
type PromoteOptions struct {
	// UnversionedTitle is the title of the section being promoted.
	UnversionedTitle string
	// Placeholder is the entry written under the recreated section.
	Placeholder string
}

func (o PromoteOptions) withDefaults() PromoteOptions {
	if o.UnversionedTitle == "" {
		o.UnversionedTitle = DefaultUnversionedTitle
	}
	if o.Placeholder == "" {
		o.Placeholder = DefaultPlaceholderEntry
	}
	return o
}
