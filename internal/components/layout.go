package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Layout stacks the header, body, notifications and help line and works
// out how much height the body may use.
type Layout struct {
	width  int
	height int
}

func NewLayout(width, height int) *Layout {
	return &Layout{
		width:  width,
		height: height,
	}
}

func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

func (l *Layout) Width() int {
	return l.width
}

// CalculateBodyHeight returns the available height for the body content
// given the heights of the surrounding chrome.
func (l *Layout) CalculateBodyHeight(headerHeight, notificationsHeight, helpHeight int) int {
	// +1 for the blank line after the header
	reserved := headerHeight + 1 + notificationsHeight + helpHeight
	bodyHeight := l.height - reserved
	if bodyHeight < MinInputHeight {
		bodyHeight = MinInputHeight
	}
	return bodyHeight
}

// Render builds the full layout. The body is padded to bodyHeight so that
// notifications and help stay anchored to the bottom of the screen.
func (l *Layout) Render(header, body string, bodyHeight int, notifications, help string) string {
	sections := []string{}

	if header != "" {
		sections = append(sections, header, "")
	}

	sections = append(sections, lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body))

	if notifications != "" {
		sections = append(sections, notifications)
	}
	if help != "" {
		sections = append(sections, help)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
