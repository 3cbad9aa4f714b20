package inmemory

import (
	"sync"
	"time"
)

// SessionRegistry keeps admin session tokens in process memory. A zero ttl
// keeps tokens until Remove or restart.
type SessionRegistry struct {
	mu    sync.RWMutex
	items map[string]sessionItem
	ttl   time.Duration
	now   func() time.Time
}

type sessionItem struct {
	issuedAt  time.Time
	expiresAt time.Time
}

func NewSessionRegistry(ttl time.Duration) *SessionRegistry {
	return &SessionRegistry{
		items: make(map[string]sessionItem),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (r *SessionRegistry) Add(token string, issuedAt time.Time) {
	item := sessionItem{issuedAt: issuedAt}
	if r.ttl > 0 {
		item.expiresAt = issuedAt.Add(r.ttl)
	}

	r.mu.Lock()
	r.items[token] = item
	r.mu.Unlock()
}

func (r *SessionRegistry) Contains(token string) bool {
	now := r.now()

	r.mu.RLock()
	item, ok := r.items[token]
	r.mu.RUnlock()
	if !ok {
		return false
	}

	if item.expired(now) {
		r.mu.Lock()
		item, ok = r.items[token]
		if ok && item.expired(now) {
			delete(r.items, token)
		}
		r.mu.Unlock()
		return false
	}

	return true
}

func (r *SessionRegistry) Remove(token string) {
	r.mu.Lock()
	delete(r.items, token)
	r.mu.Unlock()
}

func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func (i sessionItem) expired(now time.Time) bool {
	return !i.expiresAt.IsZero() && !i.expiresAt.After(now)
}
