package changelog

import (
	"regexp"
	"strings"
)

var newlineRuns = regexp.MustCompile(`\n+`)

// locate splits doc around the single "## <title>" heading.
// before is everything preceding the heading, after everything following it.
func locate(doc, title string) (before, after string, err error) {
	if err := ValidateTitle(title); err != nil {
		return "", "", err
	}

	marker := Heading(title)
	switch n := strings.Count(doc, marker); {
	case n == 0:
		logDebug("[changelog] heading %q not found", marker)
		return "", "", &SectionNotFoundError{Title: title}
	case n > 1:
		logDebug("[changelog] heading %q occurs %d times", marker, n)
		return "", "", &AmbiguousSectionError{Title: title, Count: n}
	}

	before, after, _ = strings.Cut(doc, marker)
	return before, after, nil
}

// SectionBody returns the raw text between the "## <title>" heading and the
// next "##" heading, or the end of the document. The text is returned
// unmodified: it starts with whatever followed the title on the heading line
// (usually a newline) and keeps all blank lines.
func SectionBody(doc, title string) (string, error) {
	_, after, err := locate(doc, title)
	if err != nil {
		return "", err
	}

	body, _, _ := strings.Cut(after, HeadingMarker)
	return body, nil
}

// Entries returns the non-empty lines of the section titled title, trimmed of
// surrounding whitespace, in source order. Runs of blank lines collapse.
func Entries(doc, title string) ([]string, error) {
	body, err := SectionBody(doc, title)
	if err != nil {
		return nil, err
	}
	return splitEntries(body), nil
}

func splitEntries(body string) []string {
	entries := []string{}
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return entries
	}

	for _, line := range newlineRuns.Split(trimmed, -1) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	return entries
}

// Sections returns the titles of all "## " headings in document order.
// Deeper headings ("### Added") are not sections.
func Sections(doc string) []string {
	titles := []string{}
	for _, line := range strings.Split(doc, "\n") {
		if !strings.HasPrefix(line, HeadingMarker+" ") {
			continue
		}
		titles = append(titles, strings.TrimSpace(strings.TrimPrefix(line, HeadingMarker)))
	}
	return titles
}
