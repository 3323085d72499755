// Package notify routes one-shot hire events to the winner's live
// connection. Delivery is best-effort: no retries, no durable queue, and
// a notification failure is never surfaced to the hire caller.
package notify

import "sync"

// Event is the payload pushed to a hired freelancer's channel.
type Event struct {
	Message    string `json:"message"`
	GigTitle   string `json:"gig_title"`
	PosterName string `json:"poster_name"`
}

// Channel is a live notification channel handle owned by one connected
// session.
type Channel chan Event

// Registry maps a user identity to its active channel. Mutations are
// mutually exclusive; lookups may run concurrently with each other. A
// reverse index makes Unregister O(1).
type Registry struct {
	mu       sync.RWMutex
	channels map[string]Channel
	users    map[Channel]string
}

// NewRegistry creates an empty connection registry
func NewRegistry() *Registry {
	return &Registry{
		channels: make(map[string]Channel),
		users:    make(map[Channel]string),
	}
}

// Register binds a channel to a user, replacing any prior channel for that
// user (last writer wins, supporting reconnect). The replaced channel is
// closed so its superseded stream handler unblocks and exits.
func (r *Registry) Register(userID string, ch Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.channels[userID]; ok && old != ch {
		delete(r.users, old)
		close(old)
	}
	r.channels[userID] = ch
	r.users[ch] = userID
}

// Unregister removes the entry whose channel matches. Unknown channels are
// a no-op, so disconnect after a reconnect replacement is safe.
func (r *Registry) Unregister(ch Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userID, ok := r.users[ch]
	if !ok {
		return
	}
	delete(r.users, ch)
	if r.channels[userID] == ch {
		delete(r.channels, userID)
	}
}

// Lookup returns the user's active channel, if any
func (r *Registry) Lookup(userID string) (Channel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ch, ok := r.channels[userID]
	return ch, ok
}

// Push attempts a non-blocking send to the user's channel. The send runs
// under the read lock, so it cannot race the close in Register. Returns
// whether the user had a channel and whether the event was accepted.
func (r *Registry) Push(userID string, event Event) (found, delivered bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ch, ok := r.channels[userID]
	if !ok {
		return false, false
	}
	select {
	case ch <- event:
		return true, true
	default:
		return true, false
	}
}

// Connected returns the number of registered channels
func (r *Registry) Connected() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.channels)
}
