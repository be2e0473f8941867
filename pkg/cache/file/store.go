// Package file implements the response cache as flat files, one JSON file
// per fingerprint under a cache directory. Deleting the directory forces
// full regeneration on the next run.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/flowlens-ai/flowlens/pkg/models"
)

// Store is a flat-file response cache.
type Store struct {
	dir    string
	hits   atomic.Int64
	misses atomic.Int64
}

// New creates the cache directory if needed and returns a Store.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) entryPath(fingerprint string) string {
	return filepath.Join(s.dir, fingerprint+".json")
}

// Get returns the payload stored under fingerprint. Any read or decode
// failure, including a corrupted entry, counts as a miss.
func (s *Store) Get(fingerprint string) ([]byte, bool) {
	data, err := os.ReadFile(s.entryPath(fingerprint))
	if err != nil {
		s.misses.Add(1)
		return nil, false
	}

	var entry models.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil || entry.Fingerprint != fingerprint {
		s.misses.Add(1)
		return nil, false
	}

	s.hits.Add(1)
	return entry.Payload, true
}

// Put stores the payload under fingerprint, replacing any prior entry.
// The entry is written to a temp file and renamed into place, so a crash
// mid-write never leaves a partial entry that Get would return.
func (s *Store) Put(fingerprint string, payload []byte) error {
	entry := models.CacheEntry{
		Fingerprint: fingerprint,
		Payload:     payload,
		CreatedAt:   time.Now().UTC(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, fingerprint+".tmp-")
	if err != nil {
		return fmt.Errorf("cache put: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("cache put: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cache put: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.entryPath(fingerprint)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cache put: %w", err)
	}
	return nil
}

// Stats returns cache performance metrics.
func (s *Store) Stats() (models.CacheStats, error) {
	entries, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return models.CacheStats{}, fmt.Errorf("cache stats: %w", err)
	}
	return models.CacheStats{
		Entries: int64(len(entries)),
		Hits:    s.hits.Load(),
		Misses:  s.misses.Load(),
	}, nil
}

// Clear removes all cache entries.
func (s *Store) Clear() error {
	entries, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return fmt.Errorf("cache clear: %w", err)
	}
	for _, p := range entries {
		if err := os.Remove(p); err != nil {
			return fmt.Errorf("cache clear: %w", err)
		}
	}
	return nil
}

// Close is a no-op for the file backend.
func (s *Store) Close() error { return nil }
