package pending

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a single-process Store. Expired entries are dropped lazily on
// Pop and in bulk by Purge.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]Registration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]Registration),
	}
}

func (s *MemoryStore) Put(_ context.Context, email string, reg Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	reg.ExpiresAt = s.now().Add(s.ttl)
	s.entries[email] = reg
	return nil
}

func (s *MemoryStore) Pop(_ context.Context, email string) (Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reg, ok := s.entries[email]
	if !ok {
		return Registration{}, ErrNotFound
	}
	delete(s.entries, email)
	if !s.now().Before(reg.ExpiresAt) {
		return Registration{}, ErrNotFound
	}
	return reg, nil
}

// Purge removes expired entries and reports how many were dropped.
func (s *MemoryStore) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n := 0
	for k, reg := range s.entries {
		if !now.Before(reg.ExpiresAt) {
			delete(s.entries, k)
			n++
		}
	}
	return n
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
