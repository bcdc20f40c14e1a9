// Package changelog reads and edits Markdown changelogs organized into
// sections delimited by "## <title>" headings.
//
// This package implements:
//   - Section body extraction for a version title
//   - Entry listing (non-empty, trimmed lines of a section body)
//   - Promotion of the "Unversioned" section to a named release
//   - A file-backed Store that reads fresh on every call and writes atomically
//
// Headings are matched by exact substring, so a target title must occur exactly
// once in the document. Missing and duplicate targets are reported as
// *SectionNotFoundError and *AmbiguousSectionError rather than silently ignored.
package changelog
