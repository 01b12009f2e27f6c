// Package tui provides the Bubble Tea front-end for the grid editor:
// keyboard and mouse input mapping, lipgloss rendering, and SSH serving
// via Wish. The core grid package knows nothing about any of this.
package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the grid editor.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	First   key.Binding
	Last    key.Binding
	Toggle  key.Binding
	Save    key.Binding
	Load    key.Binding
	Clear   key.Binding
	Pattern key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Toggle, k.Save, k.Load, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.First, k.Last, k.Toggle},
		{k.Save, k.Load, k.Clear, k.Pattern},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "move right"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first cell"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last cell"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle cell"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Load: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "load"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Pattern: key.NewBinding(
			key.WithKeys("p", "tab"),
			key.WithHelp("p/tab", "next pattern"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
