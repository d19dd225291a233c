// Package scores provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package scores

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Entry is one persisted run.
type Entry struct {
	ID       uuid.UUID
	Points   int
	Length   int
	Duration time.Duration
	PlayedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("scores: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("scores: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("scores: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("scores: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("scores: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			points INTEGER NOT NULL,
			length INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			played_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(points DESC, played_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save records a finished run under a fresh id and returns the stored entry.
func (s *Store) Save(points, length int, duration time.Duration) (Entry, error) {
	entry := Entry{
		ID:       uuid.New(),
		Points:   points,
		Length:   length,
		Duration: duration,
		PlayedAt: time.Now().UTC(),
	}

	_, err := s.db.Exec(
		"INSERT INTO runs (id, points, length, duration_ms) VALUES (?, ?, ?, ?)",
		entry.ID.String(), entry.Points, entry.Length, entry.Duration.Milliseconds(),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("scores: cannot save run: %w", err)
	}

	return entry, nil
}

// Top retrieves the best runs, ordered by points descending with the most
// recent first among ties.
func (s *Store) Top(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, points, length, duration_ms, played_at
		 FROM runs
		 ORDER BY points DESC, played_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("scores: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scores: row iteration error: %w", err)
	}

	return entries, nil
}

// Best returns the highest points ever recorded, or 0 when no runs exist.
func (s *Store) Best() (int, error) {
	var points sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(points) FROM runs").Scan(&points)
	if err != nil {
		return 0, fmt.Errorf("scores: cannot query best run: %w", err)
	}

	if !points.Valid {
		return 0, nil
	}
	return int(points.Int64), nil
}

// Clear deletes every recorded run.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("scores: cannot clear runs: %w", err)
	}
	return nil
}

func scanEntry(rows *sql.Rows) (Entry, error) {
	var entry Entry
	var rawID string
	var durationMS int64
	var playedAt any

	if err := rows.Scan(&rawID, &entry.Points, &entry.Length, &durationMS, &playedAt); err != nil {
		return Entry{}, fmt.Errorf("scores: cannot scan row: %w", err)
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return Entry{}, fmt.Errorf("scores: invalid run id %q: %w", rawID, err)
	}
	entry.ID = id
	entry.Duration = time.Duration(durationMS) * time.Millisecond

	// Parse the datetime - handle both time.Time and string
	switch v := playedAt.(type) {
	case time.Time:
		entry.PlayedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			entry.PlayedAt = parsed
		}
	}

	return entry, nil
}
