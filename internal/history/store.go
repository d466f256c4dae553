// Package history keeps a sqlite journal of processed webhook deliveries.
// It is an audit trail for operators and the watch TUI, never consulted to
// skip or dedupe work.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Status is the terminal outcome of one delivery.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Entry is one journal row.
type Entry struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Fingerprint    string    `json:"fingerprint"`
	RA             float64   `json:"ra"`
	IE             float64   `json:"ie"`
	HS             float64   `json:"hs"`
	Axis           float64   `json:"axis"`
	Tier           string    `json:"tier"`
	Status         Status    `json:"status"`
	Error          string    `json:"error,omitempty"`
	ReceivedAt     time.Time `json:"received_at"`
	CompletedAt    time.Time `json:"completed_at"`
}

// Store wraps the sqlite journal.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if needed) the journal database at path and
// ensures required tables exist.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create sqlite directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(pctx, "PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set busy_timeout: %w", err)
	}
	if err := bootstrap(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func bootstrap(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS score_log (
  id              TEXT PRIMARY KEY,
  conversation_id TEXT NOT NULL,
  fingerprint     TEXT NOT NULL,
  ra              REAL,
  ie              REAL,
  hs              REAL,
  axis            REAL,
  tier            TEXT,
  status          TEXT NOT NULL,
  last_error      TEXT,
  received_at     TEXT NOT NULL,
  completed_at    TEXT NOT NULL
);`,
		`CREATE INDEX IF NOT EXISTS score_log_received_at_idx ON score_log(received_at);`,
		`CREATE INDEX IF NOT EXISTS score_log_conversation_idx ON score_log(conversation_id);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap sqlite: %w", err)
		}
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends one journal row.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.ID == "" {
		return fmt.Errorf("entry id is empty")
	}
	if e.ConversationID == "" {
		return fmt.Errorf("conversation id is empty")
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO score_log(
  id, conversation_id, fingerprint, ra, ie, hs, axis, tier, status, last_error,
  received_at, completed_at
)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`, e.ID, e.ConversationID, e.Fingerprint, e.RA, e.IE, e.HS, e.Axis, e.Tier,
		string(e.Status), e.Error,
		e.ReceivedAt.UTC().Format(time.RFC3339Nano),
		e.CompletedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("record score: %w", err)
	}
	return nil
}

// Recent returns the newest entries, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, conversation_id, fingerprint, ra, ie, hs, axis, tier, status,
       last_error, received_at, completed_at
FROM score_log
ORDER BY received_at DESC, rowid DESC
LIMIT ?;
`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent scores: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			statusS    string
			lastError  sql.NullString
			receivedS  string
			completedS string
		)
		if err := rows.Scan(&e.ID, &e.ConversationID, &e.Fingerprint,
			&e.RA, &e.IE, &e.HS, &e.Axis, &e.Tier, &statusS,
			&lastError, &receivedS, &completedS); err != nil {
			return nil, fmt.Errorf("scan score row: %w", err)
		}
		e.Status = Status(statusS)
		if lastError.Valid {
			e.Error = lastError.String
		}
		if t, err := time.Parse(time.RFC3339Nano, receivedS); err == nil {
			e.ReceivedAt = t
		}
		if t, err := time.Parse(time.RFC3339Nano, completedS); err == nil {
			e.CompletedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
