// Package sqlite implements the response cache on a SQLite database.
package sqlite

import (
	"database/sql"
	"fmt"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite"

	"github.com/flowlens-ai/flowlens/pkg/models"
)

// Store is a response cache backed by SQLite.
type Store struct {
	db     *sql.DB
	hits   atomic.Int64
	misses atomic.Int64
}

const createCacheTable = `
CREATE TABLE IF NOT EXISTS cache_entries (
	fingerprint TEXT NOT NULL PRIMARY KEY,
	payload BLOB NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// New opens the cache database and runs auto-migration.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	if _, err := db.Exec(createCacheTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate cache db: %w", err)
	}

	return &Store{db: db}, nil
}

// Get retrieves a cached payload. Any query failure counts as a miss.
func (s *Store) Get(fingerprint string) ([]byte, bool) {
	var payload []byte
	err := s.db.QueryRow(
		`SELECT payload FROM cache_entries WHERE fingerprint = ?`,
		fingerprint,
	).Scan(&payload)

	if err != nil {
		s.misses.Add(1)
		return nil, false
	}

	s.hits.Add(1)
	return payload, true
}

// Put stores a payload, replacing any prior entry for the fingerprint.
func (s *Store) Put(fingerprint string, payload []byte) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO cache_entries (fingerprint, payload, created_at)
		 VALUES (?, ?, ?)`,
		fingerprint, payload, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("cache put: %w", err)
	}
	return nil
}

// Stats returns cache performance metrics.
func (s *Store) Stats() (models.CacheStats, error) {
	var count int64
	err := s.db.QueryRow(`SELECT COUNT(*) FROM cache_entries`).Scan(&count)
	if err != nil {
		return models.CacheStats{}, fmt.Errorf("cache stats: %w", err)
	}
	return models.CacheStats{
		Entries: count,
		Hits:    s.hits.Load(),
		Misses:  s.misses.Load(),
	}, nil
}

// Clear removes all cache entries.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM cache_entries`); err != nil {
		return fmt.Errorf("cache clear: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
