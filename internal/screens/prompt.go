package screens

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/promptenhancer/internal/commands"
	"github.com/renato0307/promptenhancer/internal/components"
	"github.com/renato0307/promptenhancer/internal/keyboard"
	"github.com/renato0307/promptenhancer/internal/logging"
	"github.com/renato0307/promptenhancer/internal/messages"
	"github.com/renato0307/promptenhancer/internal/types"
	"github.com/renato0307/promptenhancer/internal/ui"
)

// ErrEmptyInput is reported when a prompt is empty after trimming
var ErrEmptyInput = errors.New("prompt is empty")

// User-facing notification text
const (
	MsgEmptyPrompt   = "Please enter a prompt to enhance"
	MsgEnhanceFailed = "Failed to enhance prompt. Please try again."
	MsgCopied        = "Enhanced prompt copied to clipboard!"
	MsgCopyFailed    = "Failed to copy enhanced prompt to clipboard."
)

// Labels
const (
	PromptScreenID     = "prompt"
	LabelPrompt        = "Your Prompt"
	LabelEnhanced      = "Enhanced Prompt"
	ButtonEnhance      = "Enhance Prompt"
	ButtonEnhancing    = "Enhancing..."
	ButtonCopy         = "⧉ Copy"
	PromptPlaceholder  = "Enter your prompt here..."
	resultChromeHeight = 2 // rounded border top and bottom
)

var _ types.Screen = (*PromptScreen)(nil)

type pane int

const (
	paneInput pane = iota
	paneResult
)

// PromptScreen is the single screen of the app. It owns the prompt being
// composed, the last enhancement result and the busy flag, and binds the
// edit, submit and copy actions to the enhancement client and clipboard.
type PromptScreen struct {
	ctx   *types.AppContext
	theme *ui.Theme
	keys  *keyboard.Keys

	input   textarea.Model
	result  viewport.Model
	spinner spinner.Model

	enhancedText string
	busy         bool
	focus        pane

	width  int
	height int
}

// NewPromptScreen creates the prompt screen with input focus
func NewPromptScreen(ctx *types.AppContext) *PromptScreen {
	ta := textarea.New()
	ta.Placeholder = PromptPlaceholder
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	screen := &PromptScreen{
		ctx:     ctx,
		theme:   ctx.Theme,
		keys:    ctx.Keys,
		input:   ta,
		result:  viewport.New(0, 0),
		spinner: s,
		focus:   paneInput,
	}
	screen.SetSize(80, 20)
	return screen
}

func (s *PromptScreen) ID() string {
	return PromptScreenID
}

func (s *PromptScreen) Title() string {
	return "Prompt Enhancer"
}

func (s *PromptScreen) Init() tea.Cmd {
	return textarea.Blink
}

// InputText returns the prompt exactly as typed
func (s *PromptScreen) InputText() string {
	return s.input.Value()
}

// SetInputText replaces the prompt being composed
func (s *PromptScreen) SetInputText(text string) {
	s.input.SetValue(text)
}

// EnhancedText returns the most recent successful result, or ""
func (s *PromptScreen) EnhancedText() string {
	return s.enhancedText
}

// Busy reports whether an enhancement is in flight
func (s *PromptScreen) Busy() bool {
	return s.busy
}

// Submit validates the prompt and starts an enhancement. An empty or
// whitespace-only prompt raises a destructive notification and changes
// nothing. The screen itself does not refuse a second Submit while busy;
// the key binding is what gets disabled.
func (s *PromptScreen) Submit() tea.Cmd {
	prompt := s.input.Value()
	if strings.TrimSpace(prompt) == "" {
		logging.Debug("Submit rejected", "error", ErrEmptyInput)
		return messages.ErrorCmd(MsgEmptyPrompt)
	}

	s.setBusy(true)
	logging.Info("Enhancing prompt", "provider", s.ctx.Enhancer.Name(), "chars", len(prompt))
	return commands.EnhanceCommand(s.ctx.Enhancer, prompt)
}

// Copy writes the enhanced prompt to the clipboard. Without a result it
// does nothing at all.
func (s *PromptScreen) Copy() tea.Cmd {
	if s.enhancedText == "" {
		return nil
	}
	return commands.CopyCommand(s.ctx.Clipboard, s.enhancedText)
}

func (s *PromptScreen) setBusy(busy bool) {
	s.busy = busy
	s.keys.Submit.SetEnabled(!busy)
}

func (s *PromptScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s.handleKey(msg)

	case types.EnhanceResultMsg:
		s.setBusy(false)
		if msg.Err != nil {
			logging.Warn("Enhancement failed", "error", msg.Err)
			return s, messages.ErrorCmd(MsgEnhanceFailed)
		}
		s.enhancedText = msg.Text
		s.refreshResult()
		s.result.GotoTop()
		return s, nil

	case types.CopyResultMsg:
		if msg.Err != nil {
			return s, messages.ErrorCmd(MsgCopyFailed)
		}
		return s, messages.NotifyCmd(messages.TitleSuccess, MsgCopied, types.MessageTypeInfo)

	case spinner.TickMsg:
		if !s.busy {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}

	// Cursor blink and other textarea internals
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PromptScreen) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Submit):
		cmd := s.Submit()
		if s.busy {
			return s, tea.Batch(cmd, s.spinner.Tick)
		}
		return s, cmd

	case key.Matches(msg, s.keys.Copy):
		return s, s.Copy()

	case key.Matches(msg, s.keys.ClearInput):
		s.input.Reset()
		return s, nil

	case key.Matches(msg, s.keys.SwitchPane):
		s.toggleFocus()
		return s, nil
	}

	var cmd tea.Cmd
	if s.focus == paneResult {
		s.result, cmd = s.result.Update(msg)
		return s, cmd
	}
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PromptScreen) toggleFocus() {
	if s.focus == paneInput && s.enhancedText != "" {
		s.focus = paneResult
		s.input.Blur()
		return
	}
	s.focus = paneInput
	s.input.Focus()
}

// SetTheme switches the styles used for rendering
func (s *PromptScreen) SetTheme(theme *ui.Theme) {
	s.theme = theme
	s.refreshResult()
}

// SetSize distributes the available space between the input and the
// result panel
func (s *PromptScreen) SetSize(width, height int) {
	s.width = width
	s.height = height

	innerWidth := width - 4 // border + padding on both sides
	if innerWidth < 10 {
		innerWidth = 10
	}
	s.input.SetWidth(innerWidth)

	inputHeight := height / 3
	if inputHeight < components.MinInputHeight {
		inputHeight = components.MinInputHeight
	}
	if inputHeight > components.MaxInputHeight {
		inputHeight = components.MaxInputHeight
	}
	s.input.SetHeight(inputHeight)

	// label + input box + button + blank + label + result chrome
	used := 1 + inputHeight + 2 + 1 + 1 + 1 + resultChromeHeight
	resultHeight := height - used
	if resultHeight < components.MinInputHeight {
		resultHeight = components.MinInputHeight
	}
	s.result.Width = innerWidth
	s.result.Height = resultHeight
	s.refreshResult()
}

func (s *PromptScreen) refreshResult() {
	if s.enhancedText == "" {
		s.result.SetContent("")
		return
	}
	wrapped := lipgloss.NewStyle().Width(s.result.Width).Render(s.enhancedText)
	s.result.SetContent(wrapped)
}

func (s *PromptScreen) renderButton() string {
	if s.busy {
		return s.theme.Editor.ButtonBusy.Render(s.spinner.View() + " " + ButtonEnhancing)
	}
	return s.theme.Editor.Button.Render(ButtonEnhance)
}

func (s *PromptScreen) View() string {
	inputStyle := s.theme.Editor.Input
	if s.focus == paneInput {
		inputStyle = s.theme.Editor.InputFocused
	}

	sections := []string{
		s.theme.Label.Render(LabelPrompt),
		inputStyle.Render(s.input.View()),
		s.renderButton(),
	}

	if s.enhancedText != "" {
		label := s.theme.Label.Render(LabelEnhanced)
		copyHint := s.theme.Editor.CopyButton.Render(ButtonCopy + " (" + s.keys.Copy.Help().Key + ")")
		gap := s.width - lipgloss.Width(label) - lipgloss.Width(copyHint)
		if gap < 1 {
			gap = 1
		}

		resultStyle := s.theme.Editor.Result
		if s.focus == paneResult {
			resultStyle = s.theme.Editor.ResultFocus
		}

		sections = append(sections,
			"",
			label+strings.Repeat(" ", gap)+copyHint,
			resultStyle.Width(s.result.Width+2).Render(s.result.View()),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
