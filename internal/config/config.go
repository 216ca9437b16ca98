package config

import (
	"os"
	"path/filepath"

	"keybindings/internal/codec"
	"keybindings/internal/errors"
)

// FileName is the name of the bindings file inside an application's
// configuration directory.
const FileName = "keybindings.yaml"

// Default action names.
const (
	ActionHideWindow             = "hide-window"
	ActionPreviousOption         = "previous-option"
	ActionNextOption             = "next-option"
	ActionExecutePrimaryAction   = "execute-primary-action"
	ActionExecuteSecondaryAction = "execute-secondary-action"
)

// MissingPolicy decides what a store holds when its file does not exist.
type MissingPolicy int

const (
	// UseDefaults starts from Settings.Defaults.
	UseDefaults MissingPolicy = iota
	// UseEmpty starts from an empty mapping.
	UseEmpty
)

// Settings are the resolved options of a store.
type Settings struct {
	Format     string            // Codec name; empty means pick by file extension
	OnMissing  MissingPolicy     // What to load when the file is absent
	Defaults   map[string]string // Bindings used with UseDefaults
	FileMode   os.FileMode       // Permissions for a newly created file
	CreateDirs bool              // Create parent directories on save
}

// DefaultBindings returns a fresh copy of the built-in bindings.
func DefaultBindings() map[string]string {
	return map[string]string{
		ActionHideWindow:             "ESCAPE",
		ActionPreviousOption:         "UP",
		ActionNextOption:             "DOWN",
		ActionExecutePrimaryAction:   "ENTER",
		ActionExecuteSecondaryAction: "Alt+ENTER",
	}
}

// Default returns the settings a store uses when no option overrides them.
func Default() *Settings {
	return &Settings{
		OnMissing: UseDefaults,
		Defaults:  DefaultBindings(),
		FileMode:  0o644,
	}
}

// Validate checks if the settings are usable.
func (s *Settings) Validate() error {
	if s == nil {
		return errors.NewConfigError("nil settings", "", errors.InvalidConfig, nil)
	}

	if s.Format != "" {
		if _, err := codec.Lookup(s.Format); err != nil {
			return err
		}
	}

	switch s.OnMissing {
	case UseDefaults, UseEmpty:
	default:
		return errors.NewConfigError("unknown missing-file policy", "on_missing", errors.InvalidConfig, nil)
	}

	if s.FileMode.Perm() == 0 || s.FileMode&^os.ModePerm != 0 {
		return errors.NewConfigError("file mode must be plain permission bits", "file_mode", errors.InvalidConfig, nil)
	}

	return nil
}

// Codec returns the codec for path under these settings.
func (s *Settings) Codec(path string) (codec.Codec, error) {
	if s.Format == "" {
		return codec.ForPath(path), nil
	}
	return codec.Lookup(s.Format)
}

// Initial returns the bindings a store starts with when its file is missing.
func (s *Settings) Initial() map[string]string {
	out := make(map[string]string, len(s.Defaults))
	if s.OnMissing == UseEmpty {
		return out
	}
	for action, combo := range s.Defaults {
		out[action] = combo
	}
	return out
}

// DefaultPath returns the bindings file location for app
// (~/.config/<app>/keybindings.yaml on Linux).
func DefaultPath(app string) (string, error) {
	if app == "" {
		return "", errors.NewConfigError("application name is required", "app", errors.InvalidConfig, nil)
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.NewConfigError("cannot locate user config directory", "app", errors.InvalidConfig, err)
	}
	return filepath.Join(dir, app, FileName), nil
}
