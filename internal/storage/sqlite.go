// Package storage provides SQLite-based persistence for named grid
// snapshots. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/gridpad/internal/grid"
)

// Store manages the SQLite database connection for snapshot persistence.
type Store struct {
	db *sql.DB
}

// SnapshotEntry is a single stored grid state.
type SnapshotEntry struct {
	ID        int64
	Name      string
	Height    int
	Cells     []grid.Cell
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			height INTEGER NOT NULL,
			cells TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_snapshots_name ON snapshots(name);
		CREATE INDEX IF NOT EXISTS idx_snapshots_recent ON snapshots(name, created_at DESC);
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

// SaveSnapshot records the grid's current state under the given name.
// Returns the ID of the inserted record.
func (s *Store) SaveSnapshot(name string, g *grid.Grid) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO snapshots (name, height, cells) VALUES (?, ?, ?)",
		name, g.Height(), encodeCells(g.State()),
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

// LatestSnapshot retrieves the most recent snapshot with the given name.
// Returns nil without error if none exists.
func (s *Store) LatestSnapshot(name string) (*SnapshotEntry, error) {
	var e SnapshotEntry
	var cells string
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, name, height, cells, created_at
		 FROM snapshots
		 WHERE name = ?
		 ORDER BY id DESC
		 LIMIT 1`,
		name,
	).Scan(&e.ID, &e.Name, &e.Height, &cells, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query snapshot: %w", err)
	}

	decoded, err := decodeCells(cells)
	if err != nil {
		return nil, fmt.Errorf("storage: corrupt snapshot %d: %w", e.ID, err)
	}
	e.Cells = decoded
	e.CreatedAt = parseCreatedAt(createdAt)

	return &e, nil
}

// ListSnapshots retrieves the most recent snapshots across all names.
func (s *Store) ListSnapshots(limit int) ([]SnapshotEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, name, height, cells, created_at
		 FROM snapshots
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query snapshots: %w", err)
	}
	defer rows.Close()

	var entries []SnapshotEntry
	for rows.Next() {
		var e SnapshotEntry
		var cells string
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Height, &cells, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		decoded, err := decodeCells(cells)
		if err != nil {
			return nil, fmt.Errorf("storage: corrupt snapshot %d: %w", e.ID, err)
		}
		e.Cells = decoded
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteSnapshots deletes all snapshots with the given name.
func (s *Store) DeleteSnapshots(name string) error {
	_, err := s.db.Exec("DELETE FROM snapshots WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete snapshots: %w", err)
	}
	return nil
}

// encodeCells renders a cell sequence as a 0/1 digit string for storage.
func encodeCells(cells []grid.Cell) string {
	buf := make([]byte, len(cells))
	for i, c := range cells {
		if c == grid.On {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// decodeCells parses a stored digit string back into cells.
func decodeCells(s string) ([]grid.Cell, error) {
	cells := make([]grid.Cell, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			cells[i] = grid.Off
		case '1':
			cells[i] = grid.On
		default:
			return nil, fmt.Errorf("unexpected cell byte %q at %d", s[i], i)
		}
	}
	return cells, nil
}

// parseCreatedAt handles both time.Time and string datetime values
// returned by the driver.
func parseCreatedAt(v any) time.Time {
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
