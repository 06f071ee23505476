// Package storage provides SQLite-based persistence for saved games and
// finished-game results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-battleship/internal/savegame"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Result is one finished game: the fleet was sunk after Shots shots.
type Result struct {
	ID        int64
	MatchID   string
	Shots     int
	Hits      int
	Misses    int
	Duration  int // Duration in seconds
	CreatedAt time.Time
}

// Stats aggregates every recorded result.
type Stats struct {
	Games      int
	BestShots  int // Fewest shots needed to sink the fleet
	AvgShots   float64
	TotalShots int64
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

	store := New(db)
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// New wraps an already open database. The schema is assumed to exist.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS saves (
			name TEXT PRIMARY KEY,
			document TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			shots INTEGER NOT NULL,
			hits INTEGER NOT NULL,
			misses INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_shots ON results(shots);
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

// parseTime handles both driver-decoded times and raw SQLite strings.
func parseTime(v any) time.Time {
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

// Put stores a save document, replacing any existing one with the same name.
func (s *Store) Put(name string, doc []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO saves (name, document, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET document = excluded.document, updated_at = CURRENT_TIMESTAMP`,
		name, string(doc),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save %q: %w", name, err)
	}
	return nil
}

// Get returns the save document stored under name.
func (s *Store) Get(name string) ([]byte, error) {
	var doc string
	err := s.db.QueryRow("SELECT document FROM saves WHERE name = ?", name).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%q: %w", name, savegame.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load %q: %w", name, err)
	}
	return []byte(doc), nil
}

// Delete removes the save stored under name.
func (s *Store) Delete(name string) error {
	res, err := s.db.Exec("DELETE FROM saves WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%q: %w", name, savegame.ErrNotFound)
	}
	return nil
}

// List returns every save, most recently written first.
func (s *Store) List() ([]savegame.Entry, error) {
	rows, err := s.db.Query(`SELECT name, updated_at FROM saves ORDER BY updated_at DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var entries []savegame.Entry
	for rows.Next() {
		var e savegame.Entry
		var updatedAt any
		if err := rows.Scan(&e.Name, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

var _ savegame.Backend = (*Store)(nil)

// SaveResult records a finished game. A match id is generated when
// r.MatchID is empty; the id used is returned.
func (s *Store) SaveResult(r Result) (string, error) {
	if r.MatchID == "" {
		r.MatchID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO results (match_id, shots, hits, misses, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		r.MatchID, r.Shots, r.Hits, r.Misses, r.Duration,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save result: %w", err)
	}
	return r.MatchID, nil
}

// RecentResults returns the most recent results, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, shots, hits, misses, duration_secs, created_at
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.MatchID, &r.Shots, &r.Hits, &r.Misses, &r.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// GetStats aggregates all recorded results.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(shots), 0), COALESCE(AVG(shots), 0), COALESCE(SUM(shots), 0)
		 FROM results`,
	).Scan(&stats.Games, &stats.BestShots, &stats.AvgShots, &stats.TotalShots)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM results ORDER BY created_at DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}
