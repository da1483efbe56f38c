package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/promptenhancer/internal/types"
	"github.com/renato0307/promptenhancer/internal/ui"
)

func TestNotifications_PushAndDismiss(t *testing.T) {
	n := NewNotifications(ui.ThemeCharm())
	n.SetWidth(100)

	cmd := n.Push(types.ErrorStatusMsg("Error", "Please enter a prompt to enhance"))
	require.NotNil(t, cmd, "push must schedule a dismissal")
	assert.Equal(t, 1, n.Count())
	assert.Contains(t, n.View(), "Please enter a prompt to enhance")

	n.Push(types.InfoMsg("Success", "Enhanced prompt copied to clipboard!"))
	assert.Equal(t, 2, n.Count(), "notifications are shown concurrently")

	// IDs start at 1 and increase per push
	n.Dismiss(1)
	assert.Equal(t, 1, n.Count())
	assert.NotContains(t, n.View(), "Please enter a prompt")
	assert.Contains(t, n.View(), "Enhanced prompt copied to clipboard!")

	// Dismissing twice is harmless
	n.Dismiss(1)
	assert.Equal(t, 1, n.Count())
}

func TestNotifications_ClearStatusMsg(t *testing.T) {
	n := NewNotifications(ui.ThemeCharm())
	n, _ = n.Update(types.InfoMsg("Info", "first"))
	n, _ = n.Update(types.InfoMsg("Info", "second"))

	n, cmd := n.Update(types.ClearStatusMsg{MessageID: 2})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, n.Count())
	assert.Contains(t, n.View(), "first")
}

func TestNotifications_Cap(t *testing.T) {
	n := NewNotifications(ui.ThemeCharm())
	n.SetWidth(100)
	for i := 0; i < MaxVisibleNotifications+2; i++ {
		n.Push(types.InfoMsg("Info", strings.Repeat("x", i+1)))
	}

	assert.Equal(t, MaxVisibleNotifications, n.Count())
	// View always reserves the same number of lines
	assert.Equal(t, n.GetHeight(), len(strings.Split(n.View(), "\n")))
}

func TestNotifications_EmptyViewReservesSpace(t *testing.T) {
	n := NewNotifications(ui.ThemeCharm())
	assert.Equal(t, MaxVisibleNotifications, len(strings.Split(n.View(), "\n")))
}

func TestHeader_View(t *testing.T) {
	h := NewHeader("Prompt Enhancer", ui.GetTheme("nord"))
	h.SetWidth(80)
	h.SetProvider("Gemini (gemini-2.5-flash)")

	view := h.View()
	assert.Contains(t, view, "Prompt Enhancer")
	assert.Contains(t, view, "Gemini (gemini-2.5-flash)")
	assert.Contains(t, view, "nord")
	assert.Contains(t, view, "dark")

	h.SetDarkMode(false)
	assert.Contains(t, h.View(), "light")
}

func TestLayout_CalculateBodyHeight(t *testing.T) {
	l := NewLayout(80, 40)
	assert.Equal(t, 40-(1+1+3+1), l.CalculateBodyHeight(1, 3, 1))

	l.SetSize(80, 5)
	assert.Equal(t, MinInputHeight, l.CalculateBodyHeight(1, 3, 1), "never below the minimum")
}

func TestLayout_Render(t *testing.T) {
	l := NewLayout(80, 20)
	out := l.Render("HEADER", "BODY", 4, "NOTE", "HELP")

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "HEADER")
	assert.Contains(t, lines[2], "BODY")
	// header + blank + body(4) + notifications + help
	assert.Len(t, lines, 1+1+4+1+1)
	assert.Contains(t, lines[len(lines)-1], "HELP")
}

func TestNotifications_IgnoresUnrelatedMessages(t *testing.T) {
	n := NewNotifications(ui.ThemeCharm())
	_, cmd := n.Update(tea.WindowSizeMsg{Width: 10, Height: 10})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, n.Count())
}
