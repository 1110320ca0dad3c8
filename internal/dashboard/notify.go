package dashboard

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Kind classifies a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification is one toast raised by a dashboard action.
type Notification struct {
	ID        uuid.UUID
	Kind      Kind
	Board     string
	Message   string
	CreatedAt time.Time
}

// Notifier receives action outcomes.
type Notifier interface {
	Notify(kind Kind, board, message string)
}

// DefaultFeedSize bounds a Feed created with a non-positive limit.
const DefaultFeedSize = 50

// Feed is a bounded in-memory Notifier. When full, the oldest entry is
// dropped.
type Feed struct {
	mu     sync.Mutex
	items  []Notification
	limit  int
	clock  func() time.Time
	logger *zap.Logger
}

// NewFeed creates a Feed holding at most limit notifications.
func NewFeed(limit int, clock func() time.Time, logger *zap.Logger) *Feed {
	if limit <= 0 {
		limit = DefaultFeedSize
	}
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Feed{limit: limit, clock: clock, logger: logger}
}

// Notify implements Notifier.
func (f *Feed) Notify(kind Kind, board, message string) {
	n := Notification{
		ID:        uuid.New(),
		Kind:      kind,
		Board:     board,
		Message:   message,
		CreatedAt: f.clock(),
	}

	f.mu.Lock()
	if len(f.items) >= f.limit {
		f.items = f.items[1:]
	}
	f.items = append(f.items, n)
	f.mu.Unlock()

	if kind == KindError {
		f.logger.Warn("Dashboard action failed", zap.String("board", board), zap.String("message", message))
	} else {
		f.logger.Info("Dashboard action succeeded", zap.String("board", board), zap.String("message", message))
	}
}

// Drain returns queued notifications oldest first and empties the feed.
func (f *Feed) Drain() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.items
	f.items = nil
	if out == nil {
		out = []Notification{}
	}
	return out
}

// Len returns the number of queued notifications.
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}
