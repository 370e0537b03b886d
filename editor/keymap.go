package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the editor key bindings.
type KeyMap struct {
	Left, Right, Up, Down key.Binding

	// Snap the cursor to the start or end of the line above/below.
	UpLineStart, DownLineStart key.Binding
	UpLineEnd, DownLineEnd     key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		UpLineStart:   key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "start of line above")),
		DownLineStart: key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "start of line below")),
		UpLineEnd:     key.NewBinding(key.WithKeys("ctrl+up"), key.WithHelp("ctrl+↑", "end of line above")),
		DownLineEnd:   key.NewBinding(key.WithKeys("ctrl+down"), key.WithHelp("ctrl+↓", "end of line below")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Quit: key.NewBinding(key.WithKeys("alt+q"), key.WithHelp("alt+q", "quit")),
	}
}

func (km KeyMap) isZero() bool {
	return len(km.Left.Keys()) == 0 &&
		len(km.Right.Keys()) == 0 &&
		len(km.Up.Keys()) == 0 &&
		len(km.Down.Keys()) == 0 &&
		len(km.Quit.Keys()) == 0
}

// Rebind replaces the keys of the named action, e.g. "quit" or
// "up_line_end". It reports false for an unknown action or an empty key list.
func (km *KeyMap) Rebind(action string, keys ...string) bool {
	b := km.binding(action)
	if b == nil || len(keys) == 0 {
		return false
	}
	b.SetKeys(keys...)
	b.SetHelp(keys[0], b.Help().Desc)
	return true
}

func (km *KeyMap) binding(action string) *key.Binding {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case "left":
		return &km.Left
	case "right":
		return &km.Right
	case "up":
		return &km.Up
	case "down":
		return &km.Down
	case "up_line_start":
		return &km.UpLineStart
	case "down_line_start":
		return &km.DownLineStart
	case "up_line_end":
		return &km.UpLineEnd
	case "down_line_end":
		return &km.DownLineEnd
	case "backspace":
		return &km.Backspace
	case "delete":
		return &km.Delete
	case "enter":
		return &km.Enter
	case "quit":
		return &km.Quit
	default:
		return nil
	}
}
