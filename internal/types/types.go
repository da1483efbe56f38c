package types

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is a view hosted by the app shell
type Screen interface {
	tea.Model
	ID() string
	Title() string
}

// AppState holds shared application state
type AppState struct {
	Width    int
	Height   int
	DarkMode bool
}

// MessageType defines the type of status message
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeError
)

// String returns the severity name used in logs
func (t MessageType) String() string {
	if t == MessageTypeError {
		return "destructive"
	}
	return "info"
}

// StatusMsg is a transient user notification. Several can be visible at once.
type StatusMsg struct {
	Title   string
	Message string
	Type    MessageType
}

type ClearStatusMsg struct {
	MessageID int // Only clear the notification with this ID
}

// Helper functions for creating status messages

// InfoMsg creates an info status message
func InfoMsg(title, message string) StatusMsg {
	return StatusMsg{Title: title, Message: message, Type: MessageTypeInfo}
}

// ErrorStatusMsg creates a destructive status message
func ErrorStatusMsg(title, message string) StatusMsg {
	return StatusMsg{Title: title, Message: message, Type: MessageTypeError}
}

// EnhanceResultMsg carries the outcome of one enhancement call back into
// the event loop. Exactly one of Text or Err is meaningful.
type EnhanceResultMsg struct {
	Prompt string
	Text   string
	Err    error
}

// CopyResultMsg reports completion of a clipboard write
type CopyResultMsg struct {
	Text string
	Err  error
}

// ThemeChangedMsg is sent after the active theme or mode changed so that
// components can rebuild cached styles.
type ThemeChangedMsg struct {
	Name     string
	DarkMode bool
}
