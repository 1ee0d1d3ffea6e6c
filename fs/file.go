// Package fs provides file-based storage for lead dumps and exports.
package fs

import (
	"os"
	"path/filepath"
)

// AtomicFile writes to a temporary file next to its destination and moves
// it into place on Commit, so readers never see a partial file.
type AtomicFile struct {
	*os.File
	path string
}

// CreateAtomic creates the parent directories of path and opens a temporary
// file beside it.
func CreateAtomic(path string) (*AtomicFile, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	f, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, err
	}
	return &AtomicFile{File: f, path: path}, nil
}

// Path returns the destination path.
func (f *AtomicFile) Path() string {
	return f.path
}

// Commit closes the temporary file and renames it to the destination,
// replacing any existing file.
func (f *AtomicFile) Commit() error {
	if err := f.File.Close(); err != nil {
		_ = os.Remove(f.File.Name())
		return err
	}
	if err := os.Chmod(f.File.Name(), 0644); err != nil {
		_ = os.Remove(f.File.Name())
		return err
	}
	return os.Rename(f.File.Name(), f.path)
}

// Abort discards the temporary file. Safe to call after Commit.
func (f *AtomicFile) Abort() error {
	_ = f.File.Close()
	err := os.Remove(f.File.Name())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
