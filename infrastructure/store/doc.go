// Package store contains KeyValueStore implementations for client preferences.
//
// Backends:
//   - memory: process-local, backed by go-cache without expiration
//   - bolt: single-file bbolt database, the reader's default
//   - sqlite: single-table SQLite database
//   - redis: shared Redis instance for multi-host setups
//
// Values are small strings (for example the stored theme). None of the
// backends is used to cache articles.
package store
