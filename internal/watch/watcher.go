package watch

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"keybindings/internal/errors"
	"keybindings/internal/log"

	"github.com/fsnotify/fsnotify"
)

// FileEvent describes a change to the watched file.
type FileEvent struct {
	Path      string
	Op        fsnotify.Op
	Timestamp time.Time
}

// Removed reports whether the file is gone after this event.
func (e FileEvent) Removed() bool {
	return e.Op.Has(fsnotify.Remove) || e.Op.Has(fsnotify.Rename)
}

// Watcher reports changes to a single file. It watches the parent directory
// so that the file may be created, replaced or removed while being watched.
type Watcher struct {
	path      string
	events    chan FileEvent
	stopChan  chan struct{}
	done      chan struct{}
	fsWatcher *fsnotify.Watcher
	logger    *log.Logger

	// Lock for running and stopped state
	mutex   sync.Mutex
	running bool
	stopped bool
}

// New creates a watcher for path. The parent directory must exist; the file
// itself need not.
func New(path string, logger *log.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.NewFileError("failed to resolve watched file", path, errors.FileReadFailed, err)
	}

	dir := filepath.Dir(abs)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.NewFileError("error accessing directory of watched file", abs, errors.FileReadFailed, err)
	}
	if !info.IsDir() {
		return nil, errors.NewFileError("parent of watched file is not a directory", abs, errors.FileReadFailed, nil)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.NewFileError("failed to create fsnotify watcher", abs, errors.FileReadFailed, err)
	}
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, errors.NewFileError("failed to watch directory of watched file", abs, errors.FileReadFailed, err)
	}

	if logger == nil {
		logger = log.Discard()
	}

	return &Watcher{
		path:      abs,
		events:    make(chan FileEvent, 10),
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
		fsWatcher: fsWatcher,
		logger:    logger.With(log.F("file", abs)),
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns the channel that delivers file events. It is closed once
// the watcher has stopped.
func (w *Watcher) Events() <-chan FileEvent {
	return w.events
}

// Start begins delivering events.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.running {
		return errors.New("watcher already running")
	}
	if w.stopped {
		return errors.New("watcher already stopped")
	}
	w.running = true

	go w.loop()
	w.logger.Debug("watching bindings file")
	return nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	defer close(w.events)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
				!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
				continue
			}

			fe := FileEvent{Path: w.path, Op: event.Op, Timestamp: time.Now()}

			// Send non-blockingly so a slow consumer cannot wedge the loop
			select {
			case w.events <- fe:
			default:
				w.logger.With(log.F("op", event.Op.String())).Warn("event channel is full, dropped event")
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.WithError(err).Warn("fsnotify watcher error")

		case <-w.stopChan:
			return
		}
	}
}

// Stop halts the watcher, waits for the event channel to close and releases
// the fsnotify watcher. It is safe to call more than once, and without Start.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	if w.stopped {
		w.mutex.Unlock()
		return
	}
	w.stopped = true
	wasRunning := w.running
	w.running = false
	close(w.stopChan)
	w.mutex.Unlock()

	if wasRunning {
		<-w.done
	} else {
		close(w.events)
	}
	if err := w.fsWatcher.Close(); err != nil {
		w.logger.WithError(err).Warn("error closing fsnotify watcher")
	}
	w.logger.Debug("stopped watching bindings file")
}
