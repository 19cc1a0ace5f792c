// Package storage provides SQLite-based persistence for quiz catalogs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/flag-quiz/internal/catalog"
)

// ErrNoImport is returned when the database holds no imported catalog.
var ErrNoImport = errors.New("storage: no catalog imported")

// Store manages the SQLite database connection for the catalog.
type Store struct {
	db *sql.DB
}

// ImportRecord describes one catalog import.
type ImportRecord struct {
	ID        int64
	Source    string
	Items     int
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
		CREATE TABLE IF NOT EXISTS items (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			continent TEXT NOT NULL DEFAULT '',
			layout TEXT NOT NULL DEFAULT '',
			colors TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_items_continent ON items(continent);

		CREATE TABLE IF NOT EXISTS imports (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			item_count INTEGER NOT NULL,
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

// ImportCatalog replaces the stored items with every entry of p that has
// metadata and records the import. Returns the number of items written.
func (s *Store) ImportCatalog(p catalog.Provider, source string) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM items"); err != nil {
		return 0, fmt.Errorf("storage: cannot clear items: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO items (id, name, continent, layout, colors) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for _, id := range p.Items() {
		meta, ok := p.Metadata(id)
		if !ok {
			continue
		}
		_, err := stmt.Exec(id, meta.Name, meta.Continent, meta.Flag.Layout, strings.Join(meta.Flag.Colors, ","))
		if err != nil {
			return 0, fmt.Errorf("storage: cannot insert %s: %w", id, err)
		}
		count++
	}

	if count == 0 {
		return 0, catalog.ErrEmptyCatalog
	}

	if _, err := tx.Exec(
		"INSERT INTO imports (source, item_count) VALUES (?, ?)",
		source, count,
	); err != nil {
		return 0, fmt.Errorf("storage: cannot record import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit import: %w", err)
	}

	return count, nil
}

// LoadCatalog reads the stored items back as a catalog table.
func (s *Store) LoadCatalog() (*catalog.Table, error) {
	rows, err := s.db.Query(
		`SELECT id, name, continent, layout, colors
		 FROM items
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query items: %w", err)
	}
	defer rows.Close()

	meta := make(map[string]catalog.Metadata)
	for rows.Next() {
		var id, colors string
		var m catalog.Metadata
		if err := rows.Scan(&id, &m.Name, &m.Continent, &m.Flag.Layout, &colors); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if colors != "" {
			m.Flag.Colors = strings.Split(colors, ",")
		}
		meta[id] = m
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	if len(meta) == 0 {
		return nil, ErrNoImport
	}

	return catalog.NewTable(meta), nil
}

// ItemCount returns the number of stored items.
func (s *Store) ItemCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM items").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count items: %w", err)
	}
	return n, nil
}

// LastImport returns the most recent import record.
func (s *Store) LastImport() (ImportRecord, error) {
	var rec ImportRecord
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, source, item_count, created_at
		 FROM imports
		 ORDER BY id DESC
		 LIMIT 1`,
	).Scan(&rec.ID, &rec.Source, &rec.Items, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, ErrNoImport
	}
	if err != nil {
		return rec, fmt.Errorf("storage: cannot query imports: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		rec.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			rec.CreatedAt = parsed
		}
	}

	return rec, nil
}
