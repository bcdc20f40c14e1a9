package changelog

import "strings"

// PromoteUnversioned turns the content of the Unversioned section into a new
// release section named releaseName and recreates an empty Unversioned
// section above it, holding only the placeholder entry.
//
// Given
//
//	## Unversioned
//	- fix bug
//
//	## 1.1.0
//
// PromoteUnversioned(doc, "1.2.0", PromoteOptions{}) returns
//
//	## Unversioned
//	-
//
//	## 1.2.0
//	- fix bug
//
//	## 1.1.0
//
// Text before the Unversioned heading is kept as is. Headings match by
// substring, so the promotion fails with a *SectionExistsError when the
// result would not contain the new release heading exactly once, e.g. when
// "## 1.2.0-beta.1" already exists and releaseName is "1.2.0", or when a
// section that could be read before could no longer be read after.
func PromoteUnversioned(doc, releaseName string, opts PromoteOptions) (string, error) {
	opts = opts.withDefaults()

	if err := ValidateTitle(releaseName); err != nil {
		return "", err
	}

	before, after, err := locate(doc, opts.UnversionedTitle)
	if err != nil {
		return "", err
	}

	fresh := Heading(opts.UnversionedTitle) + "\n" + opts.Placeholder + "\n\n"
	result := before + fresh + Heading(releaseName) + after

	if n := strings.Count(result, Heading(releaseName)); n != 1 {
		logDebug("[changelog] heading %q would occur %d times", Heading(releaseName), n)
		return "", &SectionExistsError{Title: releaseName}
	}
	for _, title := range Sections(doc) {
		heading := Heading(title)
		if strings.Count(doc, heading) == 1 && strings.Count(result, heading) != 1 {
			logDebug("[changelog] heading %q would no longer be unique", heading)
			return "", &SectionExistsError{Title: releaseName}
		}
	}

	logDebug("[changelog] promoting %q to %q", opts.UnversionedTitle, releaseName)
	return result, nil
}
