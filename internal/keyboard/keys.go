package keyboard

import "github.com/charmbracelet/bubbles/key"

// Keys holds all keyboard shortcut configurations
type Keys struct {
	// Prompt actions
	Submit     key.Binding // Enhance the current prompt
	Copy       key.Binding // Copy the enhanced prompt
	ClearInput key.Binding // Clear the prompt input
	SwitchPane key.Binding // Move focus between input and result

	// Result navigation (when the result pane has focus)
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Global
	ToggleMode key.Binding // Toggle dark/light mode
	NextTheme  key.Binding // Cycle through themes
	Help       key.Binding
	Quit       key.Binding
}

// Default returns the default keyboard configuration. Bindings avoid the
// keys the prompt textarea uses for editing.
func Default() *Keys {
	return &Keys{
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "enhance"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy"),
		),
		ClearInput: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f"),
			key.WithHelp("pgdn", "page down"),
		),

		ToggleMode: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "dark/light"),
		),
		NextTheme: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// GetKeys returns the current keyboard configuration
func GetKeys() *Keys {
	return Default()
}

// ShortHelp implements help.KeyMap
func (k *Keys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Copy, k.SwitchPane, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k *Keys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Copy, k.ClearInput, k.SwitchPane},
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.ToggleMode, k.NextTheme, k.Help, k.Quit},
	}
}
