//go:build unix

package filelock

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestWriteFileWaitsForLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: UP\n"), 0o644))

	holder, err := os.Open(path)
	require.NoError(t, err)
	defer holder.Close()
	require.NoError(t, unix.Flock(int(holder.Fd()), unix.LOCK_EX))

	done := make(chan error, 1)
	go func() {
		done <- WriteFile(path, []byte("a: DOWN\n"), WriteOptions{})
	}()

	select {
	case err := <-done:
		t.Fatalf("write finished while the lock was held: %v", err)
	case <-time.After(200 * time.Millisecond):
	}

	// Nothing was truncated while we held the lock.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a: UP\n", string(data))

	require.NoError(t, unix.Flock(int(holder.Fd()), unix.LOCK_UN))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("write did not finish after the lock was released")
	}

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a: DOWN\n", string(data))
}

func TestLockReleasedAfterRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: UP\n"), 0o644))

	_, err := ReadFile(path)
	require.NoError(t, err)

	other, err := os.Open(path)
	require.NoError(t, err)
	defer other.Close()
	assert.NoError(t, unix.Flock(int(other.Fd()), unix.LOCK_EX|unix.LOCK_NB))
}
