package keymap

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var modifierNames = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"ctl":     "ctrl",
	"alt":     "alt",
	"option":  "alt",
	"opt":     "alt",
	"meta":    "alt",
	"shift":   "shift",
}

var keyNames = map[string]string{
	"esc":       "esc",
	"escape":    "esc",
	"enter":     "enter",
	"return":    "enter",
	"ret":       "enter",
	"space":     " ",
	"spacebar":  " ",
	"tab":       "tab",
	"backspace": "backspace",
	"bksp":      "backspace",
	"delete":    "delete",
	"del":       "delete",
	"insert":    "insert",
	"ins":       "insert",
	"up":        "up",
	"down":      "down",
	"left":      "left",
	"right":     "right",
	"home":      "home",
	"end":       "end",
	"pageup":    "pgup",
	"pgup":      "pgup",
	"pagedown":  "pgdown",
	"pgdown":    "pgdown",
	"pgdn":      "pgdown",
	"plus":      "+",
	"minus":     "-",
}

// Normalize turns a human written key combination such as "Alt + ENTER" or
// "Ctrl+SPACE" into the string bubbletea reports for that key press
// ("alt+enter", "ctrl+@"). Unknown key names are lowercased and passed
// through. An empty combination normalizes to "".
func Normalize(combo string) string {
	mods, name := split(combo)
	if name == "" {
		return ""
	}

	var ctrl, alt, shift bool
	for _, m := range mods {
		switch modifierNames[strings.ToLower(m)] {
		case "ctrl":
			ctrl = true
		case "alt":
			alt = true
		case "shift":
			shift = true
		}
	}

	key := keyName(name)

	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		switch {
		case ctrl && r == ' ':
			// Terminals send NUL for ctrl+space.
			key = "@"
		case ctrl:
			key = string(unicode.ToLower(r))
		case shift && unicode.IsLetter(r):
			// Shifted letters arrive as upper case runes.
			key = string(unicode.ToUpper(r))
			shift = false
		}
	}

	var b strings.Builder
	if alt {
		b.WriteString("alt+")
	}
	if ctrl {
		b.WriteString("ctrl+")
	}
	if shift {
		b.WriteString("shift+")
	}
	b.WriteString(key)
	return b.String()
}

// split separates modifiers from the final key. A trailing "+" after a
// separator is the plus key itself, as in "Ctrl++".
func split(combo string) ([]string, string) {
	trimmed := strings.TrimSpace(combo)
	if trimmed == "" {
		if combo != "" {
			return nil, " "
		}
		return nil, ""
	}
	if trimmed == "+" {
		return nil, "+"
	}

	plusKey := strings.HasSuffix(trimmed, "++")
	if plusKey {
		trimmed = strings.TrimSuffix(trimmed, "+")
	}

	parts := strings.Split(trimmed, "+")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if plusKey {
		return parts[:len(parts)-1], "+"
	}
	return parts[:len(parts)-1], parts[len(parts)-1]
}

func keyName(name string) string {
	if utf8.RuneCountInString(name) == 1 {
		return name
	}
	lower := strings.ToLower(name)
	if mapped, ok := keyNames[lower]; ok {
		return mapped
	}
	return lower
}
