package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// CircleBullet prefixes every notification
const CircleBullet = "⏺ "

// RenderMessage renders a single notification line: a bold title followed by
// the description, in the given color. Long lines are truncated to fit the
// terminal width.
func RenderMessage(title, text string, color lipgloss.AdaptiveColor, width int) string {
	if text == "" && title == "" {
		return ""
	}

	// Max length = terminal width - bullet (2) - margin (5)
	maxMessageLength := width - 7
	if maxMessageLength < 20 {
		maxMessageLength = 20
	}

	body := text
	if title != "" && text != "" {
		body = ": " + text
	}
	runes := []rune(title + body)
	if len(runes) > maxMessageLength {
		cut := maxMessageLength - 1
		titleLen := len([]rune(title))
		if cut <= titleLen {
			title = string([]rune(title)[:cut]) + "…"
			body = ""
		} else {
			body = string([]rune(body)[:cut-titleLen]) + "…"
		}
	}

	style := lipgloss.NewStyle().Foreground(color)
	return style.Render(CircleBullet) + style.Bold(true).Render(title) + style.Render(body)
}
