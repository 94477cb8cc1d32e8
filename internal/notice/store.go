package notice

import (
	"go.uber.org/zap"

	"github.com/mattmezza/noticeack/internal/state"
)

type markFunc func(state.Notifications) state.Notifications

// seenHandlers maps each acknowledgeable notification to the flag it sets.
// Identifiers missing here are ignored.
var seenHandlers = map[Notification]markFunc{
	MonacoEditorAvailable: func(s state.Notifications) state.Notifications {
		s.SeenMonacoEditorAvailable = true
		return s
	},
}

// Known reports whether n has a handler wired in.
func Known(n Notification) bool {
	_, ok := seenHandlers[n]
	return ok
}

// Reduce returns the state that follows s after a. It never fails: unknown
// action types and unknown notifications return s unchanged. s itself is a
// value and is never modified.
func Reduce(s state.Notifications, a Action) state.Notifications {
	if a.Type != ActionNotificationSeen {
		return s
	}
	mark, ok := seenHandlers[a.Notification]
	if !ok {
		return s
	}
	return mark(s)
}

// Store holds the current notification state for a session. It expects
// calls to be serialized by its owner.
type Store struct {
	current state.Notifications
	logger  *zap.Logger
}

// NewStore starts a store from initial. A nil logger disables logging.
func NewStore(initial state.Notifications, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{current: initial, logger: logger}
}

// State returns a copy of the current state.
func (s *Store) State() state.Notifications {
	return s.current
}

// Dispatch applies a and returns the resulting state.
func (s *Store) Dispatch(a Action) state.Notifications {
	next := Reduce(s.current, a)
	if next != s.current {
		s.logger.Info("notification acknowledged",
			zap.String("notification", string(a.Notification)))
	} else if a.Type == ActionNotificationSeen && !Known(a.Notification) {
		s.logger.Debug("ignoring unknown notification",
			zap.String("notification", string(a.Notification)))
	}
	s.current = next
	return next
}

// ShouldShow reports whether the banner for n still needs to be shown.
// Unknown notifications are never shown.
func ShouldShow(s state.Notifications, n Notification) bool {
	switch n {
	case MonacoEditorAvailable:
		return !s.SeenMonacoEditorAvailable
	default:
		return false
	}
}
