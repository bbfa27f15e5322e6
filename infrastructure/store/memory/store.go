// ABOUTME: In-memory key-value store backed by go-cache
// ABOUTME: Entries never expire; contents are lost when the process exits

package memory

import (
	"context"

	gocache "github.com/patrickmn/go-cache"

	"newsfeed-api/core/interfaces"
)

// Store implements interfaces.KeyValueStore in process memory
type Store struct {
	items *gocache.Cache
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{items: gocache.New(gocache.NoExpiration, 0)}
}

// Get retrieves a value by key
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	value, ok := s.items.Get(key)
	if !ok {
		return "", interfaces.ErrKeyNotFound
	}
	return value.(string), nil
}

// Set stores a value under key
func (s *Store) Set(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.items.Set(key, value, gocache.NoExpiration)
	return nil
}

// Delete removes a key; missing keys are not an error
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.items.Delete(key)
	return nil
}

// Close is a no-op
func (s *Store) Close() error {
	return nil
}
