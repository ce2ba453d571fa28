// Package store keeps named expressions and value tables in a SQLite
// database. Expressions are stored as canonical text, tables in their
// compact form, so a database written by one version stays readable by
// hand and by later versions.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/OpenTraceLab/OpenTraceLogic/pkg/boolexpr"
	"github.com/OpenTraceLab/OpenTraceLogic/pkg/truthtable"
)

// Current schema version.
const SchemaVersion = "1"

// ErrNotFound marks a lookup or delete of a name the store does not hold.
var ErrNotFound = errors.New("not found")

// Store is a SQLite-backed library of named expressions and tables.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens the database at path, creating it and its schema when
// missing. A database written with a different schema version is
// rejected rather than migrated.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS expressions (
			name TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS tables (
			name TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db}

	version, err := s.getMetadataUnlocked("schema_version")
	if err != nil {
		db.Close()
		return nil, err
	}
	switch version {
	case "":
		if err := s.setMetadataUnlocked("schema_version", SchemaVersion); err != nil {
			db.Close()
			return nil, err
		}
	case SchemaVersion:
	default:
		db.Close()
		return nil, fmt.Errorf("unsupported schema version: %s (expected %s)", version, SchemaVersion)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// PutExpression stores an expression under name, replacing any previous
// entry. The stored form is the canonical text rendering.
func (s *Store) PutExpression(name string, e boolexpr.Expression) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO expressions (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value
	`, name, boolexpr.Text(e))
	return err
}

// GetExpression retrieves and parses the expression stored under name.
func (s *Store) GetExpression(name string) (boolexpr.Expression, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var value string
	err := s.db.QueryRow("SELECT value FROM expressions WHERE name = ?", name).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: no expression named %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	e, err := boolexpr.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("stored expression %q: %w", name, err)
	}
	return e, nil
}

// PutTable stores a value table under name in its compact form,
// replacing any previous entry.
func (s *Store) PutTable(name string, t *truthtable.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO tables (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value
	`, name, t.Compact())
	return err
}

// GetTable retrieves and parses the table stored under name.
func (s *Store) GetTable(name string) (*truthtable.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var value string
	err := s.db.QueryRow("SELECT value FROM tables WHERE name = ?", name).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: no table named %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	t, err := truthtable.ParseCompact(value)
	if err != nil {
		return nil, fmt.Errorf("stored table %q: %w", name, err)
	}
	return t, nil
}

// ListExpressions returns the stored expression names in sorted order.
func (s *Store) ListExpressions() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listUnlocked("expressions")
}

// ListTables returns the stored table names in sorted order.
func (s *Store) ListTables() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listUnlocked("tables")
}

func (s *Store) listUnlocked(table string) ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM " + table + " ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// DeleteExpression removes the expression stored under name.
func (s *Store) DeleteExpression(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteUnlocked("expressions", "expression", name)
}

// DeleteTable removes the table stored under name.
func (s *Store) DeleteTable(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteUnlocked("tables", "table", name)
}

func (s *Store) deleteUnlocked(table, kind, name string) error {
	res, err := s.db.Exec("DELETE FROM "+table+" WHERE name = ?", name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: no %s named %q", ErrNotFound, kind, name)
	}
	return nil
}

// getMetadataUnlocked retrieves metadata without locking (caller must hold lock).
func (s *Store) getMetadataUnlocked(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM metadata WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// setMetadataUnlocked stores metadata without locking (caller must hold lock).
func (s *Store) setMetadataUnlocked(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}
