// ABOUTME: SQLite-based key-value store for persistent client preferences
// ABOUTME: Provides a file-based store that survives application restarts

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"newsfeed-api/core/interfaces"
)

// maxValueLength caps stored values; preferences are short strings
const maxValueLength = 4096

// Store implements interfaces.KeyValueStore using SQLite
type Store struct {
	db       *sql.DB
	filePath string
}

// NewStore opens the SQLite database at filePath and ensures the schema exists
func NewStore(filePath string) (*Store, error) {
	if filePath == "" {
		filePath = "settings.db"
	}
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating settings directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &Store{
		db:       db,
		filePath: filePath,
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the settings table if it doesn't exist
func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(query)
	return err
}

// Get retrieves a value by key
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.New("key cannot be empty")
	}

	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", interfaces.ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set stores a value under key, replacing any previous value
func (s *Store) Set(ctx context.Context, key string, value string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if len(value) > maxValueLength {
		return fmt.Errorf("value too long: %d bytes (max %d)", len(value), maxValueLength)
	}

	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

// Delete removes a value by key
func (s *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}
