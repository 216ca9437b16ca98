// Package keymap turns stored keybindings into bubbles key.Binding values so
// a bubbletea program can match key presses against user configured
// actions.
package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Source is anything that lists actions and their key combinations, such as
// a *keybindings.Store.
type Source interface {
	Actions() []string
	Get(action string) (string, bool)
}

// KeyMap holds one key.Binding per action.
type KeyMap struct {
	actions  []string
	bindings map[string]key.Binding
	short    []string
}

var _ help.KeyMap = (*KeyMap)(nil)

// New builds a KeyMap from the current contents of src. Later changes to
// src are not seen; build a new KeyMap after reloading.
func New(src Source) *KeyMap {
	actions := src.Actions()
	m := &KeyMap{
		actions:  make([]string, 0, len(actions)),
		bindings: make(map[string]key.Binding, len(actions)),
	}

	for _, action := range actions {
		combo, ok := src.Get(action)
		if !ok {
			continue
		}
		m.actions = append(m.actions, action)
		m.bindings[action] = newBinding(action, combo)
	}
	m.short = m.actions
	return m
}

func newBinding(action, combo string) key.Binding {
	normalized := Normalize(combo)
	if normalized == "" {
		return key.NewBinding(key.WithHelp("", Describe(action)), key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(normalized),
		key.WithHelp(combo, Describe(action)),
	)
}

// Describe turns an action name into help text: "next-option" becomes
// "next option".
func Describe(action string) string {
	return strings.NewReplacer("-", " ", "_", " ").Replace(action)
}

// Binding returns the binding for action.
func (m *KeyMap) Binding(action string) (key.Binding, bool) {
	b, ok := m.bindings[action]
	return b, ok
}

// Actions returns the actions in the order the source listed them.
func (m *KeyMap) Actions() []string {
	out := make([]string, len(m.actions))
	copy(out, m.actions)
	return out
}

// ActionFor returns the action bound to the pressed key. When several
// actions share a key the first in source order wins.
func (m *KeyMap) ActionFor(msg tea.KeyMsg) (string, bool) {
	for _, action := range m.actions {
		if key.Matches(msg, m.bindings[action]) {
			return action, true
		}
	}
	return "", false
}

// SetShortHelp picks the actions shown in the short help view. Unknown
// actions are ignored.
func (m *KeyMap) SetShortHelp(actions ...string) {
	short := make([]string, 0, len(actions))
	for _, action := range actions {
		if _, ok := m.bindings[action]; ok {
			short = append(short, action)
		}
	}
	m.short = short
}

// ShortHelp implements help.KeyMap.
func (m *KeyMap) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(m.short))
	for _, action := range m.short {
		out = append(out, m.bindings[action])
	}
	return out
}

// FullHelp implements help.KeyMap, four bindings per column.
func (m *KeyMap) FullHelp() [][]key.Binding {
	const perColumn = 4

	var columns [][]key.Binding
	for start := 0; start < len(m.actions); start += perColumn {
		end := start + perColumn
		if end > len(m.actions) {
			end = len(m.actions)
		}
		column := make([]key.Binding, 0, end-start)
		for _, action := range m.actions[start:end] {
			column = append(column, m.bindings[action])
		}
		columns = append(columns, column)
	}
	return columns
}
