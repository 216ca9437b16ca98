package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"keybindings/internal/errors"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitFor reads events until one matches op or the timeout expires.
func waitFor(t *testing.T, ch <-chan FileEvent, op fsnotify.Op) FileEvent {
	t.Helper()
	timeout := time.After(3 * time.Second)
	for {
		select {
		case event, ok := <-ch:
			require.True(t, ok, "event channel closed unexpectedly")
			if event.Op.Has(op) {
				return event
			}
		case <-timeout:
			t.Fatalf("timeout waiting for %s event", op)
		}
	}
}

func TestWatcherFileLifecycle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keybindings.yaml")

	w, err := New(path, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	// Allow a brief moment for fsnotify to initialize watches
	time.Sleep(100 * time.Millisecond)

	// Unrelated files in the same directory are filtered out.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: y\n"), 0o644))

	require.NoError(t, os.WriteFile(path, []byte("hide-window: ESCAPE\n"), 0o644))
	event := waitFor(t, w.Events(), fsnotify.Create)
	assert.Equal(t, w.Path(), event.Path)
	assert.False(t, event.Removed())
	assert.False(t, event.Timestamp.IsZero())

	require.NoError(t, os.WriteFile(path, []byte("hide-window: q\n"), 0o644))
	event = waitFor(t, w.Events(), fsnotify.Write)
	assert.Equal(t, w.Path(), event.Path)

	require.NoError(t, os.Remove(path))
	event = waitFor(t, w.Events(), fsnotify.Remove)
	assert.True(t, event.Removed())
}

func TestWatcherStop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybindings.yaml")

	w, err := New(path, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	assert.Error(t, w.Start(), "second start must fail")

	w.Stop()
	w.Stop()

	select {
	case _, ok := <-w.Events():
		for ok {
			_, ok = <-w.Events()
		}
	case <-time.After(1 * time.Second):
		t.Fatal("event channel should be closed after stop")
	}

	assert.Error(t, w.Start(), "a stopped watcher cannot be restarted")
}

func TestWatcherStopWithoutStart(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "keybindings.yaml"), nil)
	require.NoError(t, err)

	w.Stop()
	_, ok := <-w.Events()
	assert.False(t, ok)
}

func TestWatcherMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "keybindings.yaml")
	_, err := New(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error accessing directory")
	assert.True(t, errors.IsIOFailure(err))

	var fileErr *errors.FileError
	require.True(t, errors.As(err, &fileErr))
	assert.Equal(t, path, fileErr.Path())
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestWatcherParentIsFile(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(parent, nil, 0o644))

	_, err := New(filepath.Join(parent, "keybindings.yaml"), nil)
	require.Error(t, err)
	assert.True(t, errors.IsIOFailure(err))
}
