package keyboard

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefault_Matches(t *testing.T) {
	keys := Default()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"submit", tea.KeyMsg{Type: tea.KeyCtrlS}, keys.Submit},
		{"copy", tea.KeyMsg{Type: tea.KeyCtrlY}, keys.Copy},
		{"clear", tea.KeyMsg{Type: tea.KeyCtrlL}, keys.ClearInput},
		{"switch pane", tea.KeyMsg{Type: tea.KeyTab}, keys.SwitchPane},
		{"toggle mode", tea.KeyMsg{Type: tea.KeyCtrlT}, keys.ToggleMode},
		{"next theme", tea.KeyMsg{Type: tea.KeyCtrlN}, keys.NextTheme},
		{"quit ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, keys.Quit},
		{"quit esc", tea.KeyMsg{Type: tea.KeyEsc}, keys.Quit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}

func TestDefault_PlainRunesAreNotShortcuts(t *testing.T) {
	keys := Default()
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}

	for _, b := range []key.Binding{keys.Submit, keys.Copy, keys.ClearInput, keys.ToggleMode, keys.Quit} {
		assert.False(t, key.Matches(msg, b), "typing must not trigger %v", b.Keys())
	}
}

func TestHelpKeyMap(t *testing.T) {
	keys := Default()
	assert.NotEmpty(t, keys.ShortHelp())
	assert.Len(t, keys.FullHelp(), 3)
}
