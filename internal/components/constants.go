package components

import "time"

// UI component constants
const (
	// NotificationDisplayDuration is how long a notification stays visible
	// before it clears itself.
	NotificationDisplayDuration = 5 * time.Second

	// MaxVisibleNotifications caps the notification stack. Older entries
	// are dropped first when more arrive.
	MaxVisibleNotifications = 3

	// MinInputHeight and MaxInputHeight bound the prompt textarea height
	MinInputHeight = 3
	MaxInputHeight = 8
)
