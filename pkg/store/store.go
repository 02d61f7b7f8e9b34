// Package store is the persistence boundary for the UI surfaces: the
// ordered saved-zone list, contacts, app settings, meeting participants and
// the last conversion state, kept in a local sqlite database. It trades
// only in plain zone-identifier strings and numeric hour values; nothing in
// the core engine depends on it.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	// sqlite driver, registered as "sqlite3".
	_ "github.com/mattn/go-sqlite3"
)

// ErrPathRequired is returned by Open when no database path is provided.
var ErrPathRequired = errors.New("database path not provided")

// Config carries store construction parameters.
type Config struct {
	Path string
}

// Store wraps the sqlite database holding all persisted app state.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS saved_zones (
	position INTEGER PRIMARY KEY,
	zone     TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS contacts (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	timezone   TEXT NOT NULL,
	notes      TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS settings (
	id          INTEGER PRIMARY KEY CHECK (id = 1),
	my_timezone TEXT NOT NULL,
	work_start  REAL NOT NULL,
	work_end    REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS participants (
	position   INTEGER PRIMARY KEY,
	id         TEXT NOT NULL,
	type       TEXT NOT NULL,
	timezone   TEXT NOT NULL,
	label      TEXT NOT NULL,
	work_start REAL NOT NULL,
	work_end   REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS conversion_state (
	id        INTEGER PRIMARY KEY CHECK (id = 1),
	at        TIMESTAMP NOT NULL,
	base_zone TEXT NOT NULL
);
`

// Open opens (creating if necessary) the database at cfg.Path and ensures
// the schema exists.
func Open(cfg Config, logger *slog.Logger) (*Store, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, ErrPathRequired
	}
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Debug("failed to close database after schema error", "error", closeErr)
		}
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Info("store opened", "path", cfg.Path)
	return &Store{db: db, logger: logger}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}

// replaceAll runs fn inside a transaction after clearing table; used by the
// ordered-list writers, which persist whole lists atomically.
func (s *Store) replaceAll(table string, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM " + table); err != nil { //nolint:gosec // table names are compile-time constants
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Debug("rollback failed", "error", rbErr)
		}
		return fmt.Errorf("clearing %s: %w", table, err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Debug("rollback failed", "error", rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing %s: %w", table, err)
	}
	return nil
}
