package session

import (
	"sync"
	"time"
)

// Revocations tracks JWT IDs (jti) invalidated by sign-out. Tokens are
// stateless, so sign-out needs a server-side denylist to actually end the
// session rather than relying on the client discarding its copy.
//
// Entries are kept until the token would have expired anyway, then pruned.
type Revocations struct {
	mu      sync.Mutex
	revoked map[string]time.Time // jti -> token expiry
}

// NewRevocations creates an empty revocation set.
func NewRevocations() *Revocations {
	return &Revocations{revoked: make(map[string]time.Time)}
}

// Revoke marks a token ID as invalid until its expiry time.
func (r *Revocations) Revoke(jti string, expiresAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prune()
	r.revoked[jti] = expiresAt
}

// IsRevoked reports whether the token ID has been signed out.
func (r *Revocations) IsRevoked(jti string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prune()
	_, ok := r.revoked[jti]
	return ok
}

// prune drops entries whose tokens have expired. Caller must hold mu.
func (r *Revocations) prune() {
	now := time.Now()
	for jti, exp := range r.revoked {
		if now.After(exp) {
			delete(r.revoked, jti)
		}
	}
}
