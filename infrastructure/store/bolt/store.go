// ABOUTME: File-backed key-value store using bbolt
// ABOUTME: Keeps all preferences in one bucket of a single database file

package bolt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bbolt "go.etcd.io/bbolt"

	"newsfeed-api/core/interfaces"
)

var settingsBucket = []byte("settings")

// Store implements interfaces.KeyValueStore on a bbolt database
type Store struct {
	db *bbolt.DB
}

// NewStore opens (or creates) the database at path
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("bolt store path cannot be empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating settings directory: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, createErr := tx.CreateBucketIfNotExists(settingsBucket)
		return createErr
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Get retrieves a value by key
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var value string
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(settingsBucket).Get([]byte(key))
		if data == nil {
			return interfaces.ErrKeyNotFound
		}
		value = string(data)
		return nil
	})
	return value, err
}

// Set stores a value under key
func (s *Store) Set(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return errors.New("key cannot be empty")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(settingsBucket).Put([]byte(key), []byte(value))
	})
}

// Delete removes a key; missing keys are not an error
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(settingsBucket).Delete([]byte(key))
	})
}

// Close closes the database file
func (s *Store) Close() error {
	return s.db.Close()
}
