package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/promptenhancer/internal/types"
	"github.com/renato0307/promptenhancer/internal/ui"
)

type notification struct {
	id          int
	title       string
	message     string
	messageType types.MessageType
}

// Notifications shows transient user-facing messages. Several may be
// visible at once; each one removes itself after
// NotificationDisplayDuration. Rendering of a single line is delegated to
// ui.RenderMessage.
type Notifications struct {
	items  []notification
	nextID int
	width  int
	theme  *ui.Theme
}

// NewNotifications creates an empty notification stack
func NewNotifications(theme *ui.Theme) *Notifications {
	return &Notifications{theme: theme}
}

// Push adds a notification and returns the command that dismisses it
func (n *Notifications) Push(msg types.StatusMsg) tea.Cmd {
	n.nextID++
	id := n.nextID
	n.items = append(n.items, notification{
		id:          id,
		title:       msg.Title,
		message:     msg.Message,
		messageType: msg.Type,
	})
	if len(n.items) > MaxVisibleNotifications {
		n.items = n.items[len(n.items)-MaxVisibleNotifications:]
	}

	return tea.Tick(NotificationDisplayDuration, func(time.Time) tea.Msg {
		return types.ClearStatusMsg{MessageID: id}
	})
}

// Dismiss removes the notification with the given ID (no-op if already gone)
func (n *Notifications) Dismiss(id int) {
	for i, item := range n.items {
		if item.id == id {
			n.items = append(n.items[:i], n.items[i+1:]...)
			return
		}
	}
}

// Count returns the number of visible notifications
func (n *Notifications) Count() int {
	return len(n.items)
}

// SetWidth sets the component width
func (n *Notifications) SetWidth(width int) {
	n.width = width
}

// SetTheme switches the colors used for new renders
func (n *Notifications) SetTheme(theme *ui.Theme) {
	n.theme = theme
}

// GetHeight returns the reserved height: one line per possible notification
func (n *Notifications) GetHeight() int {
	return MaxVisibleNotifications
}

// Update adds and removes notifications
func (n *Notifications) Update(msg tea.Msg) (*Notifications, tea.Cmd) {
	switch msg := msg.(type) {
	case types.StatusMsg:
		return n, n.Push(msg)
	case types.ClearStatusMsg:
		n.Dismiss(msg.MessageID)
		return n, nil
	}
	return n, nil
}

func (n *Notifications) color(t types.MessageType) lipgloss.AdaptiveColor {
	if t == types.MessageTypeError {
		return n.theme.Error
	}
	return n.theme.Primary
}

// View renders visible notifications, oldest first, padded to GetHeight lines
func (n *Notifications) View() string {
	lines := make([]string, 0, MaxVisibleNotifications)
	for _, item := range n.items {
		lines = append(lines, ui.RenderMessage(item.title, item.message, n.color(item.messageType), n.width))
	}
	for len(lines) < MaxVisibleNotifications {
		lines = append(lines, "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
