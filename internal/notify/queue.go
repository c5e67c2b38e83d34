// Package notify holds admin-facing notifications (toasts). Each
// notification dismisses itself after a fixed lifetime unless dismissed first.
package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/roleplay-admin/internal/domain"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 3200 * time.Millisecond

// Notification is one queued message.
type Notification struct {
	ID        string                  `json:"id"`
	Kind      domain.NotificationKind `json:"kind"`
	Message   string                  `json:"message"`
	CreatedAt time.Time               `json:"createdAt"`
}

type entry struct {
	n     Notification
	timer *time.Timer
}

// Queue is a concurrency-safe notification queue.
type Queue struct {
	ttl time.Duration
	now func() time.Time
	log *slog.Logger

	mu      sync.Mutex
	entries []*entry
	closed  bool
}

// Option configures a Queue.
type Option func(*Queue)

// WithClock overrides the timestamp source (for testing).
func WithClock(now func() time.Time) Option {
	return func(q *Queue) { q.now = now }
}

// NewQueue creates a Queue. A ttl of zero keeps notifications until dismissed.
func NewQueue(ttl time.Duration, logger *slog.Logger, opts ...Option) *Queue {
	q := &Queue{
		ttl: ttl,
		now: time.Now,
		log: logger.With("service", "notify"),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Push enqueues a message and returns its id. Unknown kinds are stored as info.
func (q *Queue) Push(kind domain.NotificationKind, message string) string {
	if !kind.IsValid() {
		kind = domain.NotificationInfo
	}
	n := Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		CreatedAt: q.now(),
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return n.ID
	}

	e := &entry{n: n}
	if q.ttl > 0 {
		id := n.ID
		e.timer = time.AfterFunc(q.ttl, func() { q.Dismiss(id) })
	}
	q.entries = append(q.entries, e)

	q.log.Debug("notification pushed", slog.String("kind", kind.String()), slog.String("id", n.ID))
	return n.ID
}

// Dismiss removes a notification. It reports whether id was queued.
func (q *Queue) Dismiss(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, e := range q.entries {
		if e.n.ID != id {
			continue
		}
		if e.timer != nil {
			e.timer.Stop()
		}
		q.entries = append(q.entries[:i], q.entries[i+1:]...)
		return true
	}
	return false
}

// List returns the queued notifications, oldest first.
func (q *Queue) List() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Notification, len(q.entries))
	for i, e := range q.entries {
		out[i] = e.n
	}
	return out
}

// Close stops every pending timer and drops all notifications.
// Pushes after Close are ignored.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, e := range q.entries {
		if e.timer != nil {
			e.timer.Stop()
		}
	}
	q.entries = nil
	q.closed = true
}
