package notice

import (
	"fmt"
	"strings"
)

type ActionType string

// ActionNotificationSeen is the only action type the store reacts to. Other
// types belong to the surrounding application and pass through untouched.
const ActionNotificationSeen ActionType = "NOTIFICATION_SEEN"

// Notification identifies a one-off banner.
type Notification string

const (
	MonacoEditorAvailable Notification = "monaco-editor-available"
)

// Action is a dispatched event. Notification is only meaningful when Type is
// ActionNotificationSeen.
type Action struct {
	Type         ActionType
	Notification Notification
}

// Seen builds the acknowledgement action for n.
func Seen(n Notification) Action {
	return Action{Type: ActionNotificationSeen, Notification: n}
}

// ParseNotification maps a user supplied name to a Notification. Names are
// matched case-insensitively and may use either dashes or underscores.
func ParseNotification(name string) (Notification, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", "-"))
	if normalized == "" {
		return "", fmt.Errorf("notification name is empty")
	}
	return Notification(normalized), nil
}
