//go:build !unix && !windows

package filelock

import (
	"os"

	"keybindings/internal/errors"
)

// errUnsupported is wrapped into a FileLockFailed error by the callers.
var errUnsupported = errors.New("file locking is not supported on this platform")

func lockExclusive(*os.File) error {
	return errUnsupported
}

func unlock(*os.File) error {
	return errUnsupported
}
