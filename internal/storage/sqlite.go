// Package storage provides SQLite-based persistence for search run
// statistics. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Only outcomes are recorded; simulation state itself never
// survives a restart.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents one completed search.
type RunEntry struct {
	ID         int64
	Seed       uint64
	Width      int
	Height     int
	StartX     int
	StartY     int
	GoalX      int
	GoalY      int
	Found      bool
	Cost       float64
	PathLen    int
	Expanded   int
	DurationMs float64
	CreatedAt  time.Time
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
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
			seed INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			start_x INTEGER NOT NULL,
			start_y INTEGER NOT NULL,
			goal_x INTEGER NOT NULL,
			goal_y INTEGER NOT NULL,
			found INTEGER NOT NULL,
			cost REAL NOT NULL,
			path_len INTEGER NOT NULL,
			expanded INTEGER NOT NULL,
			duration_ms REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_seed ON runs(seed);
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

// SaveRun records a completed search. Returns the ID of the inserted row.
func (s *Store) SaveRun(e RunEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (seed, width, height, start_x, start_y, goal_x, goal_y, found, cost, path_len, expanded, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		int64(e.Seed), e.Width, e.Height,
		e.StartX, e.StartY, e.GoalX, e.GoalY,
		boolToInt(e.Found), e.Cost, e.PathLen, e.Expanded, e.DurationMs,
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

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, width, height, start_x, start_y, goal_x, goal_y,
		        found, cost, path_len, expanded, duration_ms, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var seed int64
		var found int
		var createdAt any
		if err := rows.Scan(
			&e.ID, &seed, &e.Width, &e.Height,
			&e.StartX, &e.StartY, &e.GoalX, &e.GoalY,
			&found, &e.Cost, &e.PathLen, &e.Expanded, &e.DurationMs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Seed = uint64(seed)
		e.Found = found != 0
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// parseTimestamp handles the driver returning either time.Time or string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Stats contains aggregated run statistics.
type Stats struct {
	RunCount    int
	FoundCount  int
	AvgExpanded float64
	AvgCost     float64
	BestCost    float64
}

// GetStats retrieves aggregated statistics across all recorded runs.
// Averages and best cost consider only runs that found a path.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(found), 0) FROM runs`,
	).Scan(&stats.RunCount, &stats.FoundCount)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run counts: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT COALESCE(AVG(expanded), 0), COALESCE(AVG(cost), 0), COALESCE(MIN(cost), 0)
		 FROM runs WHERE found = 1`,
	).Scan(&stats.AvgExpanded, &stats.AvgCost, &stats.BestCost)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	return stats, nil
}

// ClearRuns deletes all recorded runs.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
