// Package history records every filter run in a local SQLite database so
// past queries can be reviewed and re-run.
package history

import (
	"database/sql"
	_ "embed"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// RunEntry represents a single filter run
type RunEntry struct {
	ID           int
	Source       string // catalog file path or "user@host:port/db.table"
	Criteria     string // human-readable criteria summary
	Matched      int
	Total        int
	ExecutedAt   time.Time
	Duration     time.Duration
	Success      bool
	ErrorMessage string
}

// Store manages run history persistence
type Store struct {
	db *sql.DB
}

// NewStore creates a new history store
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Create schema
	_, err = db.Exec(schemaSQL)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Add adds a new run to history
func (s *Store) Add(entry RunEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO run_history
		(source, criteria, matched, total, duration_ms, success, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.Source,
		entry.Criteria,
		entry.Matched,
		entry.Total,
		entry.Duration.Milliseconds(),
		entry.Success,
		entry.ErrorMessage,
	)
	return err
}

// GetRecent retrieves the most recent runs
func (s *Store) GetRecent(limit int) ([]RunEntry, error) {
	return s.query(`
		SELECT id, source, criteria, matched, total, executed_at,
		       duration_ms, success, error_message
		FROM run_history
		ORDER BY executed_at DESC, id DESC
		LIMIT ?`, limit)
}

// Search searches run history by criteria text
func (s *Store) Search(criteria string, limit int) ([]RunEntry, error) {
	return s.query(`
		SELECT id, source, criteria, matched, total, executed_at,
		       duration_ms, success, error_message
		FROM run_history
		WHERE criteria LIKE ?
		ORDER BY executed_at DESC, id DESC
		LIMIT ?`, "%"+criteria+"%", limit)
}

func (s *Store) query(sqlText string, args ...interface{}) ([]RunEntry, error) {
	rows, err := s.db.Query(sqlText, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var durationMs int64
		var executedAt string

		err := rows.Scan(
			&e.ID,
			&e.Source,
			&e.Criteria,
			&e.Matched,
			&e.Total,
			&executedAt,
			&durationMs,
			&e.Success,
			&e.ErrorMessage,
		)
		if err != nil {
			return nil, err
		}

		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.ExecutedAt, _ = time.Parse("2006-01-02 15:04:05", executedAt)

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Prune keeps only the newest maxEntries rows
func (s *Store) Prune(maxEntries int) error {
	if maxEntries <= 0 {
		return nil
	}

	_, err := s.db.Exec(`
		DELETE FROM run_history
		WHERE id NOT IN (
			SELECT id FROM run_history
			ORDER BY executed_at DESC, id DESC
			LIMIT ?
		)`, maxEntries)
	return err
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
