package keybindings

import (
	"os"

	"keybindings/internal/config"
	"keybindings/internal/errors"
	"keybindings/internal/log"

	"github.com/sirupsen/logrus"
)

// Missing describes what a store holds when its file does not exist yet.
// Build one with Empty or Defaults.
type Missing struct {
	policy   config.MissingPolicy
	bindings map[string]string
}

// Empty starts a store with no bindings when its file is missing.
func Empty() Missing {
	return Missing{policy: config.UseEmpty}
}

// Defaults starts a store with a copy of bindings when its file is missing.
func Defaults(bindings map[string]string) Missing {
	return Missing{policy: config.UseDefaults, bindings: copyBindings(bindings)}
}

// Option configures a Store.
type Option func(*storeOptions) error

type storeOptions struct {
	settings *config.Settings
	logger   *log.Logger
}

// OnMissing sets the missing-file behaviour. Without it a store falls back
// to DefaultBindings.
func OnMissing(m Missing) Option {
	return func(o *storeOptions) error {
		o.settings.OnMissing = m.policy
		o.settings.Defaults = copyBindings(m.bindings)
		return nil
	}
}

// WithFormat forces a file format ("yaml", "toml" or "json") instead of
// picking one from the file extension.
func WithFormat(name string) Option {
	return func(o *storeOptions) error {
		o.settings.Format = name
		return nil
	}
}

// WithFileMode sets the permissions used when Save creates the file.
func WithFileMode(mode os.FileMode) Option {
	return func(o *storeOptions) error {
		o.settings.FileMode = mode
		return nil
	}
}

// WithCreateDirs makes Save create missing parent directories.
func WithCreateDirs(create bool) Option {
	return func(o *storeOptions) error {
		o.settings.CreateDirs = create
		return nil
	}
}

// WithLogger routes the store's debug and warning output to l. Stores are
// silent by default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *storeOptions) error {
		if l == nil {
			return errors.NewConfigError("logger must not be nil", "logger", errors.InvalidConfig, nil)
		}
		o.logger = log.NewLogger(log.WithFieldLogger(l))
		return nil
	}
}

func resolveOptions(opts []Option) (*storeOptions, error) {
	o := &storeOptions{
		settings: config.Default(),
		logger:   log.Discard(),
	}
	for i, opt := range opts {
		if opt == nil {
			return nil, errors.NewConfigError("nil option", "", errors.InvalidConfig, errors.Newf("option %d", i))
		}
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	if err := o.settings.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

func copyBindings(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for action, combo := range in {
		out[action] = combo
	}
	return out
}
