package messages

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/promptenhancer/internal/types"
)

// Notification titles shown in front of every description
const (
	TitleError   = "Error"
	TitleSuccess = "Success"
	TitleInfo    = "Info"
)

// Command layer helpers - return tea.Cmd with appropriate StatusMsg

// ErrorCmd returns a tea.Cmd that produces a destructive notification.
// Use this in command handlers when an operation fails.
//
// Example:
//
//	if strings.TrimSpace(prompt) == "" {
//	    return messages.ErrorCmd("Please enter a prompt to enhance")
//	}
func ErrorCmd(format string, args ...any) tea.Cmd {
	return NotifyCmd(TitleError, fmt.Sprintf(format, args...), types.MessageTypeError)
}

// InfoCmd returns a tea.Cmd that produces an info notification.
//
// Example:
//
//	return messages.InfoCmd("Theme switched to %s", name)
func InfoCmd(format string, args ...any) tea.Cmd {
	return NotifyCmd(TitleInfo, fmt.Sprintf(format, args...), types.MessageTypeInfo)
}

// NotifyCmd returns a tea.Cmd raising a notification with an explicit title
// and severity. It is fire-and-forget: nothing waits for the notification to
// be shown or dismissed.
func NotifyCmd(title, description string, severity types.MessageType) tea.Cmd {
	return func() tea.Msg {
		return types.StatusMsg{Title: title, Message: description, Type: severity}
	}
}

// Lower layer helpers - return wrapped errors with context

// WrapError wraps an error with additional context using fmt.Errorf.
// Preserves the error chain for debugging with %w.
//
// Example:
//
//	if err := clipboard.WriteAll(text); err != nil {
//	    return messages.WrapError(err, "failed to write %d bytes", len(text))
//	}
func WrapError(err error, format string, args ...any) error {
	context := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", context, err)
}
