package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps revoked session ids in process memory.
// Suitable for a single instance; multi-instance deployments use RedisStore.
type MemoryStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

// NewMemoryStore creates an empty in-memory revocation store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{revoked: make(map[string]time.Time)}
}

// Revoke marks the session id as revoked until its token expiry.
func (s *MemoryStore) Revoke(_ context.Context, sessionID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[sessionID] = time.Now().Add(ttl)
	return nil
}

// Revoked reports whether the session id has been revoked.
// Expired entries are dropped on read.
func (s *MemoryStore) Revoked(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.revoked[sessionID]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(s.revoked, sessionID)
		return false, nil
	}
	return true, nil
}

var _ Store = (*MemoryStore)(nil)
