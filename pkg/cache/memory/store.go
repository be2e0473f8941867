// Package memory implements an in-memory response cache. Entries do not
// survive the process; it exists for tests and dry runs.
package memory

import (
	"sync"

	"github.com/flowlens-ai/flowlens/pkg/models"
)

// Store is a map-backed response cache safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries map[string][]byte
	hits    int64
	misses  int64
}

// New returns an empty Store.
func New() *Store {
	return &Store{entries: make(map[string][]byte)}
}

// Get returns the payload stored under fingerprint.
func (s *Store) Get(fingerprint string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, ok := s.entries[fingerprint]
	if !ok {
		s.misses++
		return nil, false
	}
	s.hits++
	return payload, true
}

// Put stores the payload under fingerprint, replacing any prior entry.
func (s *Store) Put(fingerprint string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(payload))
	copy(cp, payload)
	s.entries[fingerprint] = cp
	return nil
}

// Stats returns cache performance metrics.
func (s *Store) Stats() (models.CacheStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CacheStats{
		Entries: int64(len(s.entries)),
		Hits:    s.hits,
		Misses:  s.misses,
	}, nil
}

// Clear removes all entries.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string][]byte)
	return nil
}

// Close is a no-op for the memory backend.
func (s *Store) Close() error { return nil }
