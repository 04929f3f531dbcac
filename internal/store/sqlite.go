package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ErrEmptyKey is returned when a preference is read or written without a key.
var ErrEmptyKey = errors.New("preference key is empty")

// SQLitePreferences is a durable string key-value store backed by SQLite
// (pure Go driver modernc.org/sqlite). It implements weather.Preferences.
type SQLitePreferences struct {
	db *sql.DB
}

// OpenPreferences opens (or creates) the database at path and applies the
// schema. ":memory:" gives a store that lives as long as the process.
func OpenPreferences(path string) (*SQLitePreferences, error) {
	dsn := path
	if path != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	// One connection: writes are serialised and ":memory:" stays a single database.
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLitePreferences{db: db}, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS preferences (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`)
	return err
}

// Get returns the value stored under key and whether it exists.
func (s *SQLitePreferences) Get(key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}

	var value string
	err := s.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set writes value under key. The last write wins.
func (s *SQLitePreferences) Set(key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	_, err := s.db.Exec(
		`INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339Nano),
	)
	return err
}

// Close releases the database.
func (s *SQLitePreferences) Close() error {
	return s.db.Close()
}
