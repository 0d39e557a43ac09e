// Package session holds process-wide session state: a broadcaster for
// identity change events and a revocation set for signed-out tokens.
package session

import "sync"

// Hub broadcasts authentication state changes to subscribers. It is the
// single source of truth for "who is signed in" as far as subscribers are
// concerned: sign-in publishes the authenticated identity, sign-out
// publishes the empty string. Identities always come from the authenticated
// user record, never from an echoed form value.
type Hub struct {
	mu      sync.Mutex
	nextID  int
	subs    map[int]func(identity string)
	current string
}

// NewHub creates an empty hub with no identity signed in.
func NewHub() *Hub {
	return &Hub{subs: make(map[int]func(identity string))}
}

// Subscribe registers fn to be called on every identity change, and calls
// it immediately with the current identity. The returned cancel function
// removes the subscription; callers must invoke it on teardown so the hub
// does not keep invoking a callback into torn-down state.
func (h *Hub) Subscribe(fn func(identity string)) (cancel func()) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = fn
	current := h.current
	h.mu.Unlock()

	fn(current)

	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

// SignedIn records the identity and notifies subscribers.
func (h *Hub) SignedIn(identity string) {
	h.publish(identity)
}

// SignedOut clears the identity and notifies subscribers.
func (h *Hub) SignedOut() {
	h.publish("")
}

// Current returns the most recently published identity, or "" if nobody
// is signed in.
func (h *Hub) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

func (h *Hub) publish(identity string) {
	h.mu.Lock()
	h.current = identity
	fns := make([]func(string), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	// Callbacks run outside the lock so a subscriber may unsubscribe
	// from within its own callback.
	for _, fn := range fns {
		fn(identity)
	}
}
