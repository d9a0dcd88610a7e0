package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings for the demo application.
// It implements the help.KeyMap interface for bubbles/help integration.
type keyMap struct {
	Quit  key.Binding
	Flip  key.Binding
	Pause key.Binding
}

// ShortHelp returns the compact set of keybindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flip, k.Pause, k.Quit}
}

// FullHelp returns the expanded keybinding groups.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flip, k.Pause},
		{k.Quit},
	}
}

// keys holds the default key bindings used by the application.
var keys = keyMap{
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Flip:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "flip orientation")),
	Pause: key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause")),
}
