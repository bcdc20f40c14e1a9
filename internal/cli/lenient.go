package cli

import (
	"errors"

	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
)

// tolerated reports whether a read command should swallow err and print
// nothing, which is the case in lenient mode for missing or ambiguous sections.
func (o *rootOptions) tolerated(err error) bool {
	if !o.lenient {
		return false
	}
	if errors.Is(err, clierrors.ErrSectionNotFound) || errors.Is(err, clierrors.ErrAmbiguousSection) {
		o.debugf("lenient: ignoring %v", err)
		return true
	}
	return false
}
