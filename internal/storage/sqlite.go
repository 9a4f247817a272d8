// Package storage provides SQLite-based persistence for simulation runs and
// grid snapshots.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-life/internal/life"
)

// ErrSnapshotNotFound is returned when a snapshot ID does not exist.
var ErrSnapshotNotFound = errors.New("storage: snapshot not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunRecord summarizes one finished simulation run.
type RunRecord struct {
	ID              int64
	SeedMode        string
	GridSize        int
	Seed            int64
	Generations     uint64
	FinalPopulation int
	CreatedAt       time.Time
}

// Snapshot is a saved grid together with the generation it was taken at.
type Snapshot struct {
	ID         int64
	SeedMode   string
	GridSize   int
	Generation uint64
	Population int
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
			seed_mode TEXT NOT NULL,
			grid_size INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			generations INTEGER NOT NULL,
			final_population INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_seed_mode ON runs(seed_mode);

		CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed_mode TEXT NOT NULL,
			grid_size INTEGER NOT NULL,
			generation INTEGER NOT NULL,
			population INTEGER NOT NULL,
			cells TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (seed_mode, grid_size, seed, generations, final_population)
		 VALUES (?, ?, ?, ?, ?)`,
		r.SeedMode, r.GridSize, r.Seed, int64(r.Generations), r.FinalPopulation,
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
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, seed_mode, grid_size, seed, generations, final_population, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var generations int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SeedMode, &r.GridSize, &r.Seed, &generations, &r.FinalPopulation, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Generations = uint64(generations)
		r.CreatedAt = parseTimestamp(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// SaveSnapshot stores a copy of g in plaintext form.
// Returns the ID of the inserted snapshot.
func (s *Store) SaveSnapshot(g *life.Grid, generation uint64, seedMode string) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO snapshots (seed_mode, grid_size, generation, population, cells)
		 VALUES (?, ?, ?, ?, ?)`,
		seedMode, g.Size(), int64(generation), g.Population(), g.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save snapshot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// LoadSnapshot restores the grid saved under id.
// Returns ErrSnapshotNotFound if no such snapshot exists.
func (s *Store) LoadSnapshot(id int64) (*life.Grid, Snapshot, error) {
	var snap Snapshot
	var generation int64
	var cells string
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, seed_mode, grid_size, generation, population, cells, created_at
		 FROM snapshots
		 WHERE id = ?`,
		id,
	).Scan(&snap.ID, &snap.SeedMode, &snap.GridSize, &generation, &snap.Population, &cells, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, snap, fmt.Errorf("%w: %d", ErrSnapshotNotFound, id)
	}
	if err != nil {
		return nil, snap, fmt.Errorf("storage: cannot query snapshot: %w", err)
	}
	snap.Generation = uint64(generation)
	snap.CreatedAt = parseTimestamp(createdAt)

	g, err := life.ParsePlaintext(cells)
	if err != nil {
		return nil, snap, fmt.Errorf("storage: snapshot %d is corrupt: %w", id, err)
	}
	if g.Size() != snap.GridSize {
		return nil, snap, fmt.Errorf("storage: snapshot %d has size %d, recorded %d: %w",
			id, g.Size(), snap.GridSize, life.ErrSizeMismatch)
	}
	return g, snap, nil
}

// ListSnapshots retrieves snapshot metadata, newest first.
func (s *Store) ListSnapshots(limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed_mode, grid_size, generation, population, created_at
		 FROM snapshots
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		var snap Snapshot
		var generation int64
		var createdAt any
		if err := rows.Scan(&snap.ID, &snap.SeedMode, &snap.GridSize, &generation, &snap.Population, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		snap.Generation = uint64(generation)
		snap.CreatedAt = parseTimestamp(createdAt)
		snaps = append(snaps, snap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return snaps, nil
}

// DeleteSnapshot removes a snapshot. Deleting a missing ID is not an error.
func (s *Store) DeleteSnapshot(id int64) error {
	if _, err := s.db.Exec("DELETE FROM snapshots WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete snapshot: %w", err)
	}
	return nil
}

// parseTimestamp handles both time.Time and string DATETIME values.
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
