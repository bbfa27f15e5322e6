// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KeyValueStore.Get when the key is absent
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore defines the interface for small persisted client preferences.
// Implementations can be in-memory, bbolt, SQLite, Redis, or any other store.
//
// Example usage:
//
//	store := someStore // implements KeyValueStore
//
//	// Store a value
//	err := store.Set(ctx, "theme", "dark")
//
//	// Retrieve a value
//	value, err := store.Get(ctx, "theme")
//	if errors.Is(err, interfaces.ErrKeyNotFound) {
//		// fall back to a default
//	}
type KeyValueStore interface {
	// Get retrieves a value by key.
	// Returns ErrKeyNotFound if the key doesn't exist.
	Get(ctx context.Context, key string) (string, error)

	// Set stores a value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error

	// Delete removes a value by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
