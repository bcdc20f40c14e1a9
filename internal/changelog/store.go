package changelog

import (
	"github.com/ariel-frischer/releasekit/internal/fsutil"
)

// DefaultPath is the changelog file used when no path is given.
const DefaultPath = "CHANGELOG.md"

// Store gives file-backed access to a changelog. Every call reads the file
// fresh; nothing is cached between calls.
type Store struct {
	Path string
}

// NewStore returns a Store for path, falling back to DefaultPath.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{Path: path}
}

// Load reads the changelog document.
func (s *Store) Load() (string, error) {
	doc, err := fsutil.ReadFile(s.Path)
	if err != nil {
		return "", err
	}
	logDebug("[changelog] loaded %s (%d bytes)", s.Path, len(doc))
	return doc, nil
}

// Save replaces the changelog document atomically.
func (s *Store) Save(doc string) error {
	if err := fsutil.AtomicWriteFile(s.Path, []byte(doc)); err != nil {
		return err
	}
	logDebug("[changelog] wrote %s (%d bytes)", s.Path, len(doc))
	return nil
}

// SectionBody loads the document and returns the raw body of title.
func (s *Store) SectionBody(title string) (string, error) {
	doc, err := s.Load()
	if err != nil {
		return "", err
	}
	return SectionBody(doc, title)
}

// Entries loads the document and returns the entries of title.
func (s *Store) Entries(title string) ([]string, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	return Entries(doc, title)
}

// Sections loads the document and returns its section titles.
func (s *Store) Sections() ([]string, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	return Sections(doc), nil
}

// PromoteUnversioned loads the document, promotes its Unversioned section to
// releaseName and writes the result back. The file is left untouched when the
// transformation fails. Returns the new document.
func (s *Store) PromoteUnversioned(releaseName string, opts PromoteOptions) (string, error) {
	doc, err := s.Load()
	if err != nil {
		return "", err
	}

	updated, err := PromoteUnversioned(doc, releaseName, opts)
	if err != nil {
		return "", err
	}

	if err := s.Save(updated); err != nil {
		return "", err
	}
	return updated, nil
}
