// Package notify keeps the single transient status message of the journal
// view. A notification expires after its TTL and is replaced by any newer
// one.
package notify

import (
	"sync"
	"time"

	"github.com/dmitrijs2005/reflecta/internal/client/models"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 3 * time.Second

// Sink receives every notification when it is shown.
type Sink func(models.Notification)

type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	sink    Sink
	current *models.Notification
	expires time.Time
}

// New returns a Notifier. A non-positive ttl falls back to DefaultTTL; sink
// may be nil.
func New(ttl time.Duration, sink Sink) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Notifier{ttl: ttl, now: time.Now, sink: sink}
}

func (n *Notifier) Success(message string) { n.Show(message, models.NotificationSuccess) }

func (n *Notifier) Error(message string) { n.Show(message, models.NotificationError) }

// Show replaces the visible notification and restarts the TTL.
func (n *Notifier) Show(message string, kind models.NotificationKind) {
	note := models.Notification{Message: message, Kind: kind}

	n.mu.Lock()
	n.current = &note
	n.expires = n.now().Add(n.ttl)
	sink := n.sink
	n.mu.Unlock()

	if sink != nil {
		sink(note)
	}
}

// Current returns the visible notification, if it has not expired.
func (n *Notifier) Current() (models.Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return models.Notification{}, false
	}
	if !n.now().Before(n.expires) {
		n.current = nil
		return models.Notification{}, false
	}
	return *n.current, true
}

// Dismiss hides the visible notification.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = nil
}
