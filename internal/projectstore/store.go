package projectstore

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"cutline/internal/config"
)

// Store manages project persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// ErrLibraryLocked is returned when another cutline process holds the
// library's lock file.
var ErrLibraryLocked = fmt.Errorf("library is in use by another cutline process")

// Open locks the library directory, then initializes or connects to its
// project database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	lock := flock.New(filepath.Join(cfg.Paths.LibraryDir, ".cutline.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire library lock: %w", err)
	}
	if !locked {
		return nil, ErrLibraryLocked
	}

	dbPath := filepath.Join(cfg.Paths.LibraryDir, "library.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: lock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database connection and the library lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var firstErr error
	if s.db != nil {
		firstErr = s.db.Close()
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
