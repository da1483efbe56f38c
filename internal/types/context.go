package types

import (
	"github.com/renato0307/promptenhancer/internal/enhance"
	"github.com/renato0307/promptenhancer/internal/keyboard"
	"github.com/renato0307/promptenhancer/internal/ui"
)

// ClipboardWriter writes text to the host clipboard
type ClipboardWriter interface {
	WriteText(text string) error
}

// AppContext holds app-wide configuration and dependencies
type AppContext struct {
	Theme     *ui.Theme
	Enhancer  enhance.Client
	Clipboard ClipboardWriter
	Keys      *keyboard.Keys
}

// NewAppContext creates a new application context
func NewAppContext(
	theme *ui.Theme,
	enhancer enhance.Client,
	clipboard ClipboardWriter,
) *AppContext {
	return &AppContext{
		Theme:     theme,
		Enhancer:  enhancer,
		Clipboard: clipboard,
		Keys:      keyboard.GetKeys(),
	}
}
