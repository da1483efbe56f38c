//go:build e2e

// Package app contains E2E tests that drive the full program through a fake
// terminal. The mock enhancement client is used, so no API key or network
// is needed.
package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/renato0307/promptenhancer/internal/enhance"
	"github.com/renato0307/promptenhancer/internal/screens"
	"github.com/renato0307/promptenhancer/internal/testutil"
	"github.com/renato0307/promptenhancer/internal/types"
	"github.com/renato0307/promptenhancer/internal/ui"
)

type recordingClipboard struct {
	texts chan string
}

func (c *recordingClipboard) WriteText(text string) error {
	c.texts <- text
	return nil
}

func setupE2E(t *testing.T) (*testutil.TestProgram, *recordingClipboard) {
	t.Helper()

	clip := &recordingClipboard{texts: make(chan string, 4)}
	mock := &enhance.MockClient{Latency: 200 * time.Millisecond}
	ctx := types.NewAppContext(ui.GetTheme("charm"), mock, clip)

	tp := testutil.NewTestProgram(t, NewModel(ctx, true), 120, 40)
	if !tp.WaitForOutput(screens.LabelPrompt, 2*time.Second) {
		t.Fatal("prompt screen did not render")
	}
	return tp, clip
}

func TestE2E_EnhanceAndCopy(t *testing.T) {
	tp, clip := setupE2E(t)

	tp.SubmitPrompt("write a story")
	assert.True(t, tp.WaitForOutput(screens.ButtonEnhancing, 2*time.Second), "busy state shown")
	assert.True(t, tp.WaitForOutput(screens.LabelEnhanced, 5*time.Second), "result panel shown")
	tp.AssertContains("coastal town")

	tp.SendKey(tea.KeyCtrlY)
	select {
	case text := <-clip.texts:
		assert.Contains(t, text, "Write a vivid short story")
	case <-time.After(2 * time.Second):
		t.Fatal("clipboard was not written")
	}
	assert.True(t, tp.WaitForNotification("Success", screens.MsgCopied, 2*time.Second))
}

func TestE2E_EmptyPrompt(t *testing.T) {
	tp, clip := setupE2E(t)

	tp.SendKey(tea.KeyCtrlS)
	assert.True(t, tp.WaitForNotification("Error", screens.MsgEmptyPrompt, 2*time.Second))
	tp.AssertNotContains(screens.ButtonEnhancing)

	tp.SendKey(tea.KeyCtrlY)
	select {
	case <-clip.texts:
		t.Fatal("copy without a result must not touch the clipboard")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestE2E_CycleTheme(t *testing.T) {
	tp, _ := setupE2E(t)

	next := ui.NextThemeName("charm")
	tp.SendKey(tea.KeyCtrlN)
	assert.True(t, tp.WaitForNotification("Info", "Theme: "+next, 2*time.Second))
}
