package notify

import (
	"sync"
	"time"

	"github.com/nkiryanov/ledger/internal/models"
)

type RecorderOption func(*Recorder)

// WithClock makes Recorder stamp every notification with the clock value
func WithClock(now func() time.Time) RecorderOption {
	return func(r *Recorder) { r.now = now }
}

// Recorder keeps every sent notification in memory in send order.
// Safe to share between accounts.
type Recorder struct {
	mu            sync.Mutex
	notifications []models.Notification

	now func() time.Time
}

func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Send records notification. It can't fail, so always returns true.
func (r *Recorder) Send(message string, category string) bool {
	n := models.Notification{
		Message:  message,
		Category: category,
	}

	if r.now != nil {
		ts := r.now()
		n.Timestamp = &ts
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = append(r.notifications, n)
	return true
}

// SendInfo records notification with the default 'info' category
func (r *Recorder) SendInfo(message string) bool {
	return r.Send(message, models.CategoryInfo)
}

func (r *Recorder) All() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = nil
}
