// Package session holds server-side login state keyed by an opaque token
// delivered via cookie. The store is injected into request handling rather
// than living as ambient global state.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// TTL is the fixed session lifetime.
const TTL = 24 * time.Hour

// CookieName carries the signed token on the client.
const CookieName = "elation_session"

type Session struct {
	Token     string
	UserID    string
	Email     string
	FirstName string
	LastName  string
	IsAdmin   bool
	ExpiresAt time.Time
}

func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

type Store interface {
	Issue(s Session) string
	Get(token string) (*Session, bool)
	Destroy(token string)
}

// MemoryStore is a process-held Store. Expired records are evicted lazily
// on read.
type MemoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]Session
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = TTL
	}
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]Session),
	}
}

func (ms *MemoryStore) Issue(s Session) string {
	token := uuid.NewString()
	s.Token = token
	s.ExpiresAt = time.Now().Add(ms.ttl)

	ms.mu.Lock()
	ms.sessions[token] = s
	ms.mu.Unlock()
	return token
}

func (ms *MemoryStore) Get(token string) (*Session, bool) {
	ms.mu.RLock()
	s, ok := ms.sessions[token]
	ms.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.Expired() {
		ms.Destroy(token)
		return nil, false
	}
	return &s, true
}

func (ms *MemoryStore) Destroy(token string) {
	ms.mu.Lock()
	delete(ms.sessions, token)
	ms.mu.Unlock()
}

// Len reports live (possibly expired but not yet evicted) sessions.
func (ms *MemoryStore) Len() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.sessions)
}
