package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings for the shell.
// It implements the help.KeyMap interface for bubbles/help integration.
type keyMap struct {
	Toggle  key.Binding
	Refresh key.Binding
	Save    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns the compact set of keybindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Refresh, k.Save, k.Quit}
}

// FullHelp returns the expanded keybinding groups shown when help is toggled.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Refresh},
		{k.Save, k.Help, k.Quit},
	}
}

// keys holds the default key bindings used by the shell.
var keys = keyMap{
	Toggle:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "toggle module")),
	Refresh: key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "refresh now")),
	Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save settings")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}
