// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Run outcomes stored in the runs table.
const (
	OutcomeCompleted = "completed"
	OutcomeGameOver  = "game_over"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunRecord represents a single finished game session.
type RunRecord struct {
	ID           int64
	Pack         string
	Outcome      string // OutcomeCompleted or OutcomeGameOver
	LevelReached int    // 1-based highest level entered
	Lives        int    // lives remaining when the run ended
	Duration     int    // wall-clock seconds
	CreatedAt    time.Time
}

// PackStats aggregates run history for one pack.
type PackStats struct {
	Pack      string
	Runs      int
	Completed int
	BestLevel int
	BestTime  int // fastest completed run in seconds, 0 if never completed
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pack TEXT NOT NULL,
			outcome TEXT NOT NULL,
			level_reached INTEGER NOT NULL,
			lives INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_pack ON runs(pack);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(pack, level_reached DESC);
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

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(rec RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (pack, outcome, level_reached, lives, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.Pack, rec.Outcome, rec.LevelReached, rec.Lives, rec.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best N runs for the given pack.
// Completed runs rank above lost ones, then deeper runs, then faster.
func (s *Store) TopRuns(pack string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, pack, outcome, level_reached, lives, duration_secs, created_at
		 FROM runs
		 WHERE pack = ?
		 ORDER BY (outcome = 'completed') DESC, level_reached DESC, duration_secs ASC
		 LIMIT ?`,
		pack, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// RecentRuns retrieves the most recent runs across all packs.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, pack, outcome, level_reached, lives, duration_secs, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]RunRecord, error) {
	var entries []RunRecord
	for rows.Next() {
		var e RunRecord
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Pack, &e.Outcome, &e.LevelReached, &e.Lives, &e.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats aggregates the run history for the given pack.
// Returns zeroed stats if the pack has never been played.
func (s *Store) Stats(pack string) (PackStats, error) {
	stats := PackStats{Pack: pack}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'completed'), 0),
		        COALESCE(MAX(level_reached), 0),
		        COALESCE(MIN(CASE WHEN outcome = 'completed' THEN duration_secs END), 0)
		 FROM runs
		 WHERE pack = ?`,
		pack,
	).Scan(&stats.Runs, &stats.Completed, &stats.BestLevel, &stats.BestTime)

	if err != nil {
		return stats, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	return stats, nil
}

// Clear deletes all runs for the given pack.
func (s *Store) Clear(pack string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE pack = ?", pack)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
