package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/promptenhancer/internal/components"
	"github.com/renato0307/promptenhancer/internal/logging"
	"github.com/renato0307/promptenhancer/internal/messages"
	"github.com/renato0307/promptenhancer/internal/screens"
	"github.com/renato0307/promptenhancer/internal/types"
	"github.com/renato0307/promptenhancer/internal/ui"
)

type Model struct {
	state         types.AppState
	ctx           *types.AppContext
	screen        *screens.PromptScreen
	header        *components.Header
	notifications *components.Notifications
	layout        *components.Layout
	help          help.Model
}

// NewModel creates the app with the prompt screen. darkMode selects which
// side of the adaptive colors is used initially.
func NewModel(ctx *types.AppContext, darkMode bool) Model {
	lipgloss.SetHasDarkBackground(darkMode)

	screen := screens.NewPromptScreen(ctx)
	header := components.NewHeader(screen.Title(), ctx.Theme)
	header.SetProvider(ctx.Enhancer.Name())
	header.SetDarkMode(darkMode)
	header.SetWidth(80)

	notifications := components.NewNotifications(ctx.Theme)
	notifications.SetWidth(80)

	m := Model{
		state: types.AppState{
			Width:    80,
			Height:   24,
			DarkMode: darkMode,
		},
		ctx:           ctx,
		screen:        screen,
		header:        header,
		notifications: notifications,
		layout:        components.NewLayout(80, 24),
		help:          newHelp(ctx.Theme),
	}
	m.resize()
	return m
}

func newHelp(theme *ui.Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = theme.Help.Bold(true)
	h.Styles.ShortDesc = theme.Help
	h.Styles.ShortSeparator = theme.Help
	h.Styles.FullKey = theme.Help.Bold(true)
	h.Styles.FullDesc = theme.Help
	h.Styles.FullSeparator = theme.Help
	return h
}

func (m Model) Init() tea.Cmd {
	logging.Info("App started", "screen", m.screen.ID(), "provider", m.ctx.Enhancer.Name(), "theme", m.ctx.Theme.Name)
	return m.screen.Init()
}

func (m Model) helpHeight() int {
	if !m.help.ShowAll {
		return 1
	}
	height := 0
	for _, column := range m.ctx.Keys.FullHelp() {
		if len(column) > height {
			height = len(column)
		}
	}
	return height
}

func (m Model) bodyHeight() int {
	return m.layout.CalculateBodyHeight(m.header.GetHeight(), m.notifications.GetHeight(), m.helpHeight())
}

// resize pushes the current dimensions down to every component
func (m Model) resize() {
	m.layout.SetSize(m.state.Width, m.state.Height)
	m.header.SetWidth(m.state.Width)
	m.notifications.SetWidth(m.state.Width)
	m.screen.SetSize(m.state.Width, m.bodyHeight())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.ctx.Keys.Quit):
			logging.Info("Quit requested")
			return m, tea.Quit

		case key.Matches(msg, m.ctx.Keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return m, nil

		case key.Matches(msg, m.ctx.Keys.ToggleMode):
			return m, themeChanged(m.ctx.Theme.Name, !m.state.DarkMode)

		case key.Matches(msg, m.ctx.Keys.NextTheme):
			return m, themeChanged(ui.NextThemeName(m.ctx.Theme.Name), m.state.DarkMode)
		}

	case types.ThemeChangedMsg:
		return m, m.applyTheme(msg)

	case types.StatusMsg:
		logging.Debug("Notification", "title", msg.Title, "severity", msg.Type.String(), "message", msg.Message)
		var cmd tea.Cmd
		m.notifications, cmd = m.notifications.Update(msg)
		return m, cmd

	case types.ClearStatusMsg:
		m.notifications, _ = m.notifications.Update(msg)
		return m, nil
	}

	model, cmd := m.screen.Update(msg)
	m.screen = model.(*screens.PromptScreen)
	return m, cmd
}

func themeChanged(name string, darkMode bool) tea.Cmd {
	return func() tea.Msg {
		return types.ThemeChangedMsg{Name: name, DarkMode: darkMode}
	}
}

// applyTheme switches the active theme and background mode everywhere
func (m *Model) applyTheme(msg types.ThemeChangedMsg) tea.Cmd {
	theme := ui.GetTheme(msg.Name)
	modeChanged := msg.DarkMode != m.state.DarkMode

	m.state.DarkMode = msg.DarkMode
	lipgloss.SetHasDarkBackground(msg.DarkMode)

	m.ctx.Theme = theme
	m.header.SetTheme(theme)
	m.header.SetDarkMode(msg.DarkMode)
	m.notifications.SetTheme(theme)
	m.screen.SetTheme(theme)
	m.help = newHelp(theme)
	m.help.Width = m.state.Width

	logging.Info("Theme changed", "theme", theme.Name, "dark", msg.DarkMode)
	if modeChanged {
		if msg.DarkMode {
			return messages.InfoCmd("Dark mode enabled")
		}
		return messages.InfoCmd("Light mode enabled")
	}
	return messages.InfoCmd("Theme: %s", theme.Name)
}

func (m Model) View() string {
	return m.layout.Render(
		m.header.View(),
		m.screen.View(),
		m.bodyHeight(),
		m.notifications.View(),
		m.help.View(m.ctx.Keys),
	)
}
