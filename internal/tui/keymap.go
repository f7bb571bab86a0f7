package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keybindings of the interactive view. Plain keys are
// typed into the input, so every binding uses a control chord.
type KeyMap struct {
	Quit          key.Binding
	ToggleHyper   key.Binding
	ToggleClarify key.Binding
	TogglePlus    key.Binding
	ToggleKeys    key.Binding
	Clear         key.Binding
	Help          key.Binding
}

// NewKeyMap creates a new KeyMap with default keybindings
func NewKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		ToggleHyper: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "hyper"),
		),
		ToggleClarify: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "clarify keys"),
		),
		TogglePlus: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "plus signs"),
		),
		ToggleKeys: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "key glyphs"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "more"),
		),
	}
}

// ShortHelp returns a slice of key bindings to show in the short help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleHyper, k.ToggleClarify, k.Help, k.Quit}
}

// FullHelp returns a slice of key bindings to show in the full help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleHyper, k.ToggleClarify, k.TogglePlus, k.ToggleKeys}, // Rendering
		{k.Clear, k.Help, k.Quit},                                    // Input
	}
}
