// Package notify provides a single-slot, self-expiring error message holder.
package notify

import (
	"sync"
	"time"
)

// DefaultTTL is how long a message stays set before it clears itself.
const DefaultTTL = 5000 * time.Millisecond

// Notifier holds at most one error message at a time.
// Setting a message schedules its expiry; setting another replaces both
// the message and the pending expiry. There is no queue.
type Notifier struct {
	mu      sync.Mutex
	message string
	timer   *time.Timer
	gen     uint64
	ttl     time.Duration
}

// New creates a Notifier with the given expiry duration.
// A non-positive ttl falls back to DefaultTTL.
func New(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Notifier{ttl: ttl}
}

// Set stores message and schedules it to clear after the configured TTL.
// Any previously pending expiry is canceled first.
func (n *Notifier) Set(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.message = message
	n.gen++

	// The generation check keeps a timer that already fired from
	// clearing a message set after it.
	gen := n.gen
	n.timer = time.AfterFunc(n.ttl, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if n.gen != gen {
			return
		}
		n.message = ""
		n.timer = nil
	})
}

// Clear cancels any pending expiry and clears the message immediately.
func (n *Notifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.message = ""
	n.gen++
}

// Message returns the current message, or "" when none is set.
func (n *Notifier) Message() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.message
}
