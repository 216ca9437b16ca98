// Package filelock reads and writes whole files while holding an exclusive
// advisory lock on them. The lock is taken and released inside each call;
// nothing is held between calls.
//
// The lock is advisory: it only keeps out other processes that lock the
// same file the same way.
package filelock

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"keybindings/internal/errors"
)

// ReadFile locks path exclusively, reads it fully and unlocks it. A missing
// file is reported as a FileNotFound error and is never created.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewFileError("bindings file not found", path, errors.FileNotFound, err)
		}
		return nil, errors.NewFileError("failed to open bindings file", path, errors.FileReadFailed, err)
	}
	defer f.Close()

	if err := lockExclusive(f); err != nil {
		return nil, errors.NewFileError("failed to lock bindings file", path, errors.FileLockFailed, err)
	}

	data, readErr := io.ReadAll(f)
	unlockErr := unlock(f)

	if readErr != nil {
		return nil, errors.NewFileError("failed to read bindings file", path, errors.FileReadFailed, readErr)
	}
	if unlockErr != nil {
		return nil, errors.NewFileError("failed to unlock bindings file", path, errors.FileUnlockFailed, unlockErr)
	}
	return data, nil
}

// WriteOptions controls how WriteFile creates the file.
type WriteOptions struct {
	// Perm is used when the file has to be created.
	Perm os.FileMode
	// CreateDirs creates missing parent directories first.
	CreateDirs bool
}

// WriteFile creates or opens path, locks it exclusively, replaces its
// contents with data and unlocks it. Truncation happens under the lock so a
// cooperating reader never sees a half-written file.
func WriteFile(path string, data []byte, opts WriteOptions) error {
	perm := opts.Perm
	if perm == 0 {
		perm = 0o644
	}

	if opts.CreateDirs {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.NewFileError("failed to create bindings directory", dir, errors.FileCreateFailed, err)
		}
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, perm)
	if err != nil {
		return errors.NewFileError("failed to create bindings file", path, errors.FileCreateFailed, err)
	}
	defer f.Close()

	if err := lockExclusive(f); err != nil {
		return errors.NewFileError("failed to lock bindings file", path, errors.FileLockFailed, err)
	}

	writeErr := replaceContents(f, data)
	unlockErr := unlock(f)

	if writeErr != nil {
		return errors.NewFileError("failed to write bindings file", path, errors.FileWriteFailed, writeErr)
	}
	if unlockErr != nil {
		return errors.NewFileError("failed to unlock bindings file", path, errors.FileUnlockFailed, unlockErr)
	}
	return nil
}

func replaceContents(f *os.File, data []byte) error {
	if err := f.Truncate(0); err != nil {
		return err
	}
	if _, err := f.WriteAt(data, 0); err != nil {
		return err
	}
	return f.Sync()
}
