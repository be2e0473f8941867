// Package runlog keeps a SQLite record of every external-API interaction,
// so repeated analysis runs can be audited for cost and cache behavior.
package runlog

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/flowlens-ai/flowlens/pkg/models"
)

// Logger writes and queries run entries in a SQLite database.
// A nil Logger is valid and discards everything.
type Logger struct {
	db *sql.DB
}

const createRunTable = `
CREATE TABLE IF NOT EXISTS run_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	task TEXT NOT NULL,
	model TEXT NOT NULL,
	fingerprint TEXT NOT NULL,
	cache_hit INTEGER NOT NULL DEFAULT 0,
	status TEXT NOT NULL,
	latency_ms INTEGER NOT NULL DEFAULT 0,
	prompt_tokens INTEGER NOT NULL DEFAULT 0,
	completion_tokens INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_run_created ON run_log(created_at);
`

// New opens the run-log database and runs auto-migration.
func New(dbPath string) (*Logger, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open run log db: %w", err)
	}

	if _, err := db.Exec(createRunTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate run log db: %w", err)
	}

	return &Logger{db: db}, nil
}

// Record inserts one run entry.
func (l *Logger) Record(ctx context.Context, e models.RunEntry) error {
	if l == nil || l.db == nil {
		return nil
	}
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO run_log
		(task, model, fingerprint, cache_hit, status, latency_ms, prompt_tokens, completion_tokens, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Task, e.Model, e.Fingerprint, boolToInt(e.CacheHit), e.Status,
		e.LatencyMs, e.PromptTokens, e.CompletionTokens, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// List returns the most recent run entries, newest first.
func (l *Logger) List(ctx context.Context, limit int) ([]models.RunEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := l.db.QueryContext(ctx,
		`SELECT task, model, fingerprint, cache_hit, status, latency_ms, prompt_tokens, completion_tokens, created_at
		 FROM run_log ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query run log: %w", err)
	}
	defer rows.Close()

	var entries []models.RunEntry
	for rows.Next() {
		var e models.RunEntry
		var hit int
		if err := rows.Scan(&e.Task, &e.Model, &e.Fingerprint, &hit, &e.Status,
			&e.LatencyMs, &e.PromptTokens, &e.CompletionTokens, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		e.CacheHit = hit != 0
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the database connection.
func (l *Logger) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
