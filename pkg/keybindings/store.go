package keybindings

import (
	"sort"
	"sync"

	"keybindings/internal/codec"
	"keybindings/internal/config"
	"keybindings/internal/errors"
	"keybindings/internal/filelock"
	"keybindings/internal/log"

	"github.com/gobwas/glob"
)

// Store holds action -> key combination bindings backed by one file.
//
// The in-memory mapping is the only source of truth until Save. The file is
// locked only while New, Reload or Save touch it, so two stores on the same
// path follow last-writer-wins.
type Store struct {
	path     string
	codec    codec.Codec
	settings *config.Settings
	logger   *log.Logger

	mu       sync.RWMutex
	bindings map[string]string
}

// New opens the store for path. An existing file is read under an exclusive
// lock and decoded; a malformed file is an error, never a reason to fall
// back to defaults. A missing file is not created: the store starts from
// the OnMissing choice, DefaultBindings unless told otherwise.
func New(path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, errors.NewConfigError("bindings path is required", "path", errors.InvalidConfig, nil)
	}

	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	c, err := o.settings.Codec(path)
	if err != nil {
		return nil, err
	}

	s := &Store{
		path:     path,
		codec:    c,
		settings: o.settings,
		logger:   o.logger.With(log.F("path", path), log.F("format", c.Name())),
	}

	bindings, err := s.load()
	if err != nil {
		return nil, err
	}
	s.bindings = bindings
	return s, nil
}

func (s *Store) load() (map[string]string, error) {
	data, err := filelock.ReadFile(s.path)
	if err != nil {
		if errors.IsFileNotFound(err) {
			s.logger.Debug("bindings file missing, using initial bindings")
			return s.settings.Initial(), nil
		}
		s.logger.WithError(err).Debug("reading bindings failed")
		return nil, err
	}

	bindings, err := s.codec.Decode(data)
	if err != nil {
		s.logger.WithError(err).Debug("decoding bindings failed")
		return nil, err
	}
	s.logger.With(log.F("count", len(bindings))).Debug("loaded bindings")
	return bindings, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Format returns the name of the file format in use.
func (s *Store) Format() string {
	return s.codec.Name()
}

// Get returns the key combination bound to action.
func (s *Store) Get(action string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	combo, ok := s.bindings[action]
	return combo, ok
}

// GetKeyFromValue returns the action bound to exactly combo (case
// sensitive). When several actions share combo the smallest action name is
// returned.
func (s *Store) GetKeyFromValue(combo string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := false
	var match string
	for action, c := range s.bindings {
		if c != combo {
			continue
		}
		if !found || action < match {
			match = action
			found = true
		}
	}
	return match, found
}

// Set replaces every binding with a copy of bindings. Nothing is written
// until Save.
func (s *Store) Set(bindings map[string]string) {
	fresh := copyBindings(bindings)

	s.mu.Lock()
	s.bindings = fresh
	s.mu.Unlock()
}

// Bindings returns a copy of the current mapping.
func (s *Store) Bindings() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyBindings(s.bindings)
}

// Len returns the number of bound actions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.bindings)
}

// Actions returns the bound action names in sorted order.
func (s *Store) Actions() []string {
	s.mu.RLock()
	actions := make([]string, 0, len(s.bindings))
	for action := range s.bindings {
		actions = append(actions, action)
	}
	s.mu.RUnlock()

	sort.Strings(actions)
	return actions
}

// Match returns the sorted action names matching a glob pattern such as
// "execute-*". '*' matches any run of characters, '?' a single one.
func (s *Store) Match(pattern string) ([]string, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.NewConfigError("invalid action pattern", pattern, errors.InvalidConfig, err)
	}

	var matched []string
	for _, action := range s.Actions() {
		if g.Match(action) {
			matched = append(matched, action)
		}
	}
	return matched, nil
}

// Save encodes the bindings and overwrites the file under an exclusive lock,
// creating it if needed.
func (s *Store) Save() error {
	s.mu.RLock()
	data, err := s.codec.Encode(s.bindings)
	count := len(s.bindings)
	s.mu.RUnlock()
	if err != nil {
		s.logger.WithError(err).Debug("encoding bindings failed")
		return err
	}

	err = filelock.WriteFile(s.path, data, filelock.WriteOptions{
		Perm:       s.settings.FileMode,
		CreateDirs: s.settings.CreateDirs,
	})
	if err != nil {
		s.logger.WithError(err).Debug("writing bindings failed")
		return err
	}

	s.logger.With(log.F("count", count), log.F("bytes", len(data))).Debug("saved bindings")
	return nil
}

// Reload reads the file again as New does and replaces the in-memory
// bindings. On error the current bindings are kept.
func (s *Store) Reload() error {
	bindings, err := s.load()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.bindings = bindings
	s.mu.Unlock()
	return nil
}
