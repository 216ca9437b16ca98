package keybindings

import (
	"keybindings/internal/config"
)

// Actions bound by DefaultBindings.
const (
	ActionHideWindow             = config.ActionHideWindow
	ActionPreviousOption         = config.ActionPreviousOption
	ActionNextOption             = config.ActionNextOption
	ActionExecutePrimaryAction   = config.ActionExecutePrimaryAction
	ActionExecuteSecondaryAction = config.ActionExecuteSecondaryAction
)

// DefaultBindings returns a fresh copy of the built-in bindings a store
// starts from when its file is missing:
//
//	hide-window               ESCAPE
//	previous-option           UP
//	next-option               DOWN
//	execute-primary-action    ENTER
//	execute-secondary-action  Alt+ENTER
func DefaultBindings() map[string]string {
	return config.DefaultBindings()
}

// DefaultPath returns the conventional bindings file for app, for example
// ~/.config/<app>/keybindings.yaml on Linux.
func DefaultPath(app string) (string, error) {
	return config.DefaultPath(app)
}
