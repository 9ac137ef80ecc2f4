// Package index maintains the local catalog of known color schemes: a
// SQLite-backed store of (name, path, source) entries, folder scanning,
// fuzzy search, and popularity ranking for listings.
package index

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one indexed color scheme.
type Entry struct {
	Name      string
	Path      string
	Source    string
	UpdatedAt int64
}

// Store wraps the SQLite database holding the scheme index.
type Store struct {
	db *sql.DB
}

// Open opens (and creates/migrates) the index database at the given path.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("empty database path")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL: %w", err)
	}
	_, _ = db.ExecContext(ctx, "PRAGMA busy_timeout=5000;")
	_, _ = db.ExecContext(ctx, "PRAGMA synchronous=NORMAL;")

	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	var ver int
	_ = s.db.QueryRowContext(ctx, "PRAGMA user_version;").Scan(&ver)

	if ver == 0 {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schemes (
  name       TEXT NOT NULL COLLATE NOCASE PRIMARY KEY,
  path       TEXT NOT NULL,
  source     TEXT NOT NULL,
  updated_at INTEGER NOT NULL
);
`)
		if err == nil {
			_, err = tx.ExecContext(ctx, "PRAGMA user_version=1;")
		}
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migrate v1: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Upsert inserts or refreshes one entry, keyed by case-insensitive name.
func (s *Store) Upsert(ctx context.Context, e Entry) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("index store not initialized")
	}
	if strings.TrimSpace(e.Name) == "" || strings.TrimSpace(e.Path) == "" {
		return fmt.Errorf("invalid index entry")
	}
	if e.UpdatedAt == 0 {
		e.UpdatedAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO schemes(name, path, source, updated_at)
VALUES(?,?,?,?)
ON CONFLICT(name) DO UPDATE SET path=excluded.path, source=excluded.source, updated_at=excluded.updated_at;
`, e.Name, e.Path, e.Source, e.UpdatedAt)
	return err
}

// UpsertAll stores a batch of entries in one transaction.
func (s *Store) UpsertAll(ctx context.Context, entries []Entry) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("index store not initialized")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	now := time.Now().Unix()
	for _, e := range entries {
		if e.UpdatedAt == 0 {
			e.UpdatedAt = now
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO schemes(name, path, source, updated_at)
VALUES(?,?,?,?)
ON CONFLICT(name) DO UPDATE SET path=excluded.path, source=excluded.source, updated_at=excluded.updated_at;
`, e.Name, e.Path, e.Source, e.UpdatedAt); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// List returns all entries ordered by name, case-insensitively.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("index store not initialized")
	}
	rows, err := s.db.QueryContext(ctx, `SELECT name, path, source, updated_at FROM schemes ORDER BY name COLLATE NOCASE;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.Path, &e.Source, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Get looks an entry up by name (case-insensitive).
func (s *Store) Get(ctx context.Context, name string) (Entry, bool, error) {
	if s == nil || s.db == nil {
		return Entry{}, false, fmt.Errorf("index store not initialized")
	}
	var e Entry
	err := s.db.QueryRowContext(ctx,
		`SELECT name, path, source, updated_at FROM schemes WHERE name=? COLLATE NOCASE;`, name).
		Scan(&e.Name, &e.Path, &e.Source, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}
	return e, true, nil
}

// Search returns the entries whose names fuzzy-match the query, in list
// order. An empty query returns everything.
func (s *Store) Search(ctx context.Context, query string) ([]Entry, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return all, nil
	}
	var out []Entry
	for _, e := range all {
		if fuzzyMatch(e.Name, query) {
			out = append(out, e)
		}
	}
	return out, nil
}

// Clear removes every entry.
func (s *Store) Clear(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("index store not initialized")
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM schemes;`)
	return err
}

// Count returns the number of indexed schemes.
func (s *Store) Count(ctx context.Context) (int, error) {
	if s == nil || s.db == nil {
		return 0, fmt.Errorf("index store not initialized")
	}
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schemes;`).Scan(&n)
	return n, err
}

// fuzzyMatch reports whether every query character appears in name in
// order (case-insensitive subsequence match).
func fuzzyMatch(name, query string) bool {
	n := strings.ToLower(name)
	q := strings.ToLower(query)
	qi := 0
	for i := 0; i < len(n) && qi < len(q); i++ {
		if n[i] == q[qi] {
			qi++
		}
	}
	return qi == len(q)
}
