// ABOUTME: Redis key-value store using go-redis client
// ABOUTME: Lets several reader hosts share one set of preferences

package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"newsfeed-api/core/interfaces"
	"newsfeed-api/pkg/config"
)

// keyPrefix namespaces preference keys in a shared Redis database
const keyPrefix = "newsfeed:settings:"

// Store implements interfaces.KeyValueStore using Redis
type Store struct {
	client *redis.Client
}

// NewStore connects to Redis and verifies the connection
func NewStore(cfg config.RedisConfig) (*Store, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &Store{client: client}, nil
}

// Get retrieves a value from Redis
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", interfaces.ErrKeyNotFound
		}
		return "", err
	}

	return val, nil
}

// Set stores a value in Redis without expiration
func (s *Store) Set(ctx context.Context, key string, value string) error {
	return s.client.Set(ctx, keyPrefix+key, value, 0).Err()
}

// Delete removes a key from Redis; deleting a missing key is not an error
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, keyPrefix+key).Err()
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}
