// Package fsutil reads and atomically rewrites the single text file a release
// step operates on.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	clierrors "github.com/ariel-frischer/releasekit/internal/errors"
)

// ReadFile reads the whole file at path. Failures are reported as
// *clierrors.FileAccessError.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &clierrors.FileAccessError{Path: path, Op: "reading", Err: err}
	}
	return string(data), nil
}

// AtomicWriteFile replaces the content of path with data using a temp file in
// the same directory followed by a rename, so a crash never leaves a partially
// written file. The existing file mode is preserved; new files get 0o644.
func AtomicWriteFile(path string, data []byte) error {
	if err := atomicWrite(path, data); err != nil {
		return &clierrors.FileAccessError{Path: path, Op: "writing", Err: err}
	}
	return nil
}

func atomicWrite(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath) // Best effort cleanup
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting temp file mode: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}
