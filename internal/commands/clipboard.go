package commands

import (
	"errors"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/promptenhancer/internal/logging"
	"github.com/renato0307/promptenhancer/internal/messages"
	"github.com/renato0307/promptenhancer/internal/types"
)

// ErrClipboard is wrapped by every clipboard write failure
var ErrClipboard = errors.New("clipboard write failed")

// SystemClipboard writes to the host clipboard (pbcopy, xclip/xsel/wl-copy,
// or the Windows clipboard API). Last writer wins.
type SystemClipboard struct{}

// WriteText replaces the clipboard contents with text
func (SystemClipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return messages.WrapError(ErrClipboard, "no clipboard utility available")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return messages.WrapError(errors.Join(ErrClipboard, err), "failed to copy %d bytes", len(text))
	}
	return nil
}

// CopyCommand writes text to the clipboard off the event loop and reports
// the outcome as a types.CopyResultMsg. No retry on failure.
func CopyCommand(w types.ClipboardWriter, text string) tea.Cmd {
	return func() tea.Msg {
		err := w.WriteText(text)
		if err != nil {
			logging.Warn("Clipboard write failed", "bytes", len(text), "error", err)
		} else {
			logging.Debug("Clipboard write succeeded", "bytes", len(text))
		}
		return types.CopyResultMsg{Text: text, Err: err}
	}
}
