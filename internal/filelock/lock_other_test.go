//go:build !unix && !windows

package filelock

import (
	"path/filepath"
	"testing"

	"keybindings/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.yaml")

	err := WriteFile(path, []byte("a: b\n"), WriteOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsIOFailure(err))
	assert.Equal(t, errors.FileLockFailed, errors.KindOf(err))
	assert.True(t, errors.Is(err, errUnsupported))

	_, err = ReadFile(path)
	require.Error(t, err)
	assert.Equal(t, errors.FileLockFailed, errors.KindOf(err))
}
