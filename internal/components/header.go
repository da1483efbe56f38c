package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/promptenhancer/internal/ui"
)

// HeaderIcon is shown in front of the app name
const HeaderIcon = "✦"

type Header struct {
	appName  string
	provider string
	darkMode bool
	width    int
	theme    *ui.Theme
}

func NewHeader(appName string, theme *ui.Theme) *Header {
	return &Header{
		appName:  appName,
		theme:    theme,
		darkMode: true,
	}
}

func (h *Header) SetProvider(provider string) {
	h.provider = provider
}

func (h *Header) SetDarkMode(dark bool) {
	h.darkMode = dark
}

func (h *Header) SetTheme(theme *ui.Theme) {
	h.theme = theme
}

func (h *Header) SetWidth(width int) {
	h.width = width
}

func (h *Header) GetHeight() int {
	return 1
}

func (h *Header) View() string {
	left := h.theme.AppTitle.Render(HeaderIcon + " " + h.appName)

	mode := "☾ dark"
	if !h.darkMode {
		mode = "☀ light"
	}
	rightParts := []string{}
	if h.provider != "" {
		rightParts = append(rightParts, h.provider)
	}
	rightParts = append(rightParts, h.theme.Name, mode)
	right := lipgloss.NewStyle().
		Foreground(h.theme.Muted).
		Padding(0, 1).
		Render(strings.Join(rightParts, " • "))

	// Push the right side to the terminal edge
	spacing := h.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}
	spacer := strings.Repeat(" ", spacing)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, spacer, right)
}
