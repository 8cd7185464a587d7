// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Round results as stored in the database.
const (
	ResultWon  = "won"
	ResultLost = "lost"
)

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// RunResult is one finished round of a level.
type RunResult struct {
	ID        int64
	RunID     string // Generated when empty
	LevelID   string
	Score     int
	Result    string // ResultWon or ResultLost
	Shots     int
	CreatedAt time.Time
}

// Won reports whether the round cleared the level.
func (r RunResult) Won() bool {
	return r.Result == ResultWon
}

// LevelStat aggregates the history of a level.
type LevelStat struct {
	LevelID    string
	Runs       int
	Wins       int
	Best       int
	LastPlayed time.Time
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
			run_id TEXT NOT NULL UNIQUE,
			level_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			result TEXT NOT NULL,
			shots INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level_id ON runs(level_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(level_id, score DESC);
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

// SaveResult records a finished round and returns the stored run ID.
func (s *Store) SaveResult(r RunResult) (string, error) {
	if r.LevelID == "" {
		return "", fmt.Errorf("storage: cannot save result: empty level id")
	}
	if r.Result != ResultWon && r.Result != ResultLost {
		return "", fmt.Errorf("storage: cannot save result: invalid result %q", r.Result)
	}
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}

	_, err := s.db.Exec(
		"INSERT INTO runs (run_id, level_id, score, result, shots) VALUES (?, ?, ?, ?, ?)",
		r.RunID, r.LevelID, r.Score, r.Result, r.Shots,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save result: %w", err)
	}
	return r.RunID, nil
}

// TopScores retrieves the top N rounds for the given level.
// Results are ordered by score descending, then by fewest shots.
func (s *Store) TopScores(levelID string, limit int) ([]RunResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, level_id, score, result, shots, created_at
		 FROM runs
		 WHERE level_id = ?
		 ORDER BY score DESC, shots ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []RunResult
	for rows.Next() {
		var e RunResult
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.LevelID, &e.Score, &e.Result, &e.Shots, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given level.
// Returns 0 if no rounds exist.
func (s *Store) HighScore(levelID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE level_id = ?",
		levelID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// LevelStats returns per-level aggregates for every level with history,
// ordered by level ID.
func (s *Store) LevelStats() ([]LevelStat, error) {
	rows, err := s.db.Query(
		`SELECT level_id,
		        COUNT(*),
		        SUM(CASE WHEN result = ? THEN 1 ELSE 0 END),
		        MAX(score),
		        MAX(created_at)
		 FROM runs
		 GROUP BY level_id
		 ORDER BY level_id`,
		ResultWon,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStat
	for rows.Next() {
		var st LevelStat
		var lastPlayed any
		if err := rows.Scan(&st.LevelID, &st.Runs, &st.Wins, &st.Best, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
