package service

import (
	"sync"
	"time"

	"github.com/sangkips/leadflow-api/pkg/apperror"
)

const defaultNotificationsBuffer = 20

// Notification is a failed operation reported to whoever is watching the
// lead set, e.g. a banner on the dashboard
type Notification struct {
	ID         uint64        `json:"id"`
	Kind       apperror.Kind `json:"kind"`
	Operation  string        `json:"operation"`
	LeadID     string        `json:"lead_id,omitempty"`
	Message    string        `json:"message"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// Notifier keeps the most recent error events in a bounded ring
type Notifier struct {
	mu    sync.Mutex
	items []Notification
	next  int
	full  bool
	seq   uint64
	now   func() time.Time
}

// NewNotifier creates a notifier holding at most size events
func NewNotifier(size int) *Notifier {
	if size < 1 {
		size = defaultNotificationsBuffer
	}
	return &Notifier{
		items: make([]Notification, size),
		now:   time.Now,
	}
}

// Publish records err for operation and returns the stored event
func (n *Notifier) Publish(operation, leadID string, err error) Notification {
	appErr := apperror.GetAppError(err)

	n.mu.Lock()
	defer n.mu.Unlock()

	n.seq++
	event := Notification{
		ID:         n.seq,
		Kind:       appErr.Kind,
		Operation:  operation,
		LeadID:     leadID,
		Message:    appErr.Message,
		OccurredAt: n.now().UTC(),
	}
	n.items[n.next] = event
	n.next = (n.next + 1) % len(n.items)
	if n.next == 0 {
		n.full = true
	}
	return event
}

// Last returns the most recent event
func (n *Notifier) Last() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.full && n.next == 0 {
		return Notification{}, false
	}
	i := (n.next - 1 + len(n.items)) % len(n.items)
	return n.items[i], true
}

// Recent returns the stored events, newest first
func (n *Notifier) Recent() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	count := n.next
	if n.full {
		count = len(n.items)
	}
	out := make([]Notification, 0, count)
	for k := 1; k <= count; k++ {
		i := (n.next - k + len(n.items)) % len(n.items)
		out = append(out, n.items[i])
	}
	return out
}

// Clear drops every stored event. Ids keep increasing.
func (n *Notifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.items = make([]Notification, len(n.items))
	n.next = 0
	n.full = false
}
