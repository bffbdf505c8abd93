// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application. The form is
// input-heavy, so every global action sits on a control chord or a
// function key that no text field consumes.
type KeyMap struct {
	// Field navigation
	Up       key.Binding
	Down     key.Binding
	NextCell key.Binding
	PrevCell key.Binding

	// Section navigation
	NextSection key.Binding
	PrevSection key.Binding

	// Actions
	AddItem key.Binding
	Submit  key.Binding
	Export  key.Binding

	// General
	ToggleTheme key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Field navigation
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous field"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "enter"),
			key.WithHelp("↓/enter", "next field"),
		),
		NextCell: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next column"),
		),
		PrevCell: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous column"),
		),

		// Section navigation
		NextSection: key.NewBinding(
			key.WithKeys("ctrl+n", "pgdown"),
			key.WithHelp("ctrl+n", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("ctrl+p", "pgup"),
			key.WithHelp("ctrl+p", "previous section"),
		),

		// Actions
		AddItem: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "add custom item"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit form"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "export PDF"),
		),

		// General
		ToggleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "toggle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.PrevSection, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextCell, k.PrevCell}, // Fields
		{k.NextSection, k.PrevSection},         // Sections
		{k.AddItem, k.Submit, k.Export},        // Actions
		{k.ToggleTheme, k.Help, k.Quit},        // General
	}
}
