// ABOUTME: Configuration management for the proxy and reader with environment variable support
// ABOUTME: Defines configuration structures for server, providers, logging and the settings store

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"newsfeed-api/pkg/utils/parse"
)

// Settings store backends
const (
	StoreMemory = "memory"
	StoreBolt   = "bolt"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Providers contains upstream news provider configuration
	Providers ProvidersConfig

	// Log contains logger configuration
	Log LogConfig

	// Settings contains the client preference store configuration
	Settings SettingsConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// UpstreamTimeout bounds each outbound provider request
	UpstreamTimeout time.Duration
}

// ProvidersConfig holds upstream credentials and endpoints
type ProvidersConfig struct {
	// GNewsKey is the GNews API token; empty when not configured
	GNewsKey string

	// NewsAPIKey is the NewsAPI key; empty when not configured
	NewsAPIKey string

	// GNewsBaseURL overrides the GNews endpoint
	GNewsBaseURL string

	// NewsAPIBaseURL overrides the NewsAPI endpoint
	NewsAPIBaseURL string
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is text or json
	Format string
}

// SettingsConfig holds the settings store configuration
type SettingsConfig struct {
	// Store selects the backend (memory/bolt/sqlite/redis)
	Store string

	// Path is the database file for the bolt and sqlite backends
	Path string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	timeout, err := getEnvAsDurationOrDefault("UPSTREAM_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnvOrDefault("PORT", "8000"),
			UpstreamTimeout: timeout,
		},
		Providers: ProvidersConfig{
			GNewsKey:       firstEnv("VITE_GNEWS_API_KEY", "GNEWS_API_KEY"),
			NewsAPIKey:     firstEnv("NEWSAPI_KEY", "VITE_NEWSAPI_KEY"),
			GNewsBaseURL:   getEnvOrDefault("GNEWS_BASE_URL", "https://gnews.io"),
			NewsAPIBaseURL: getEnvOrDefault("NEWSAPI_BASE_URL", "https://newsapi.org"),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
		},
		Settings: SettingsConfig{
			Store: getEnvOrDefault("SETTINGS_STORE", StoreBolt),
			Path:  getEnvOrDefault("SETTINGS_PATH", DefaultSettingsPath()),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
	}

	return cfg, nil
}

// DefaultSettingsPath returns the per-user settings database location
func DefaultSettingsPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "newsfeed", "settings.db")
	}
	return "newsfeed-settings.db"
}

// firstEnv returns the first non-empty environment variable among keys
func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	return parse.IntOrDefault(os.Getenv(key), defaultValue)
}

// getEnvAsDurationOrDefault parses a Go duration, returning an error for malformed values
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.UpstreamTimeout <= 0 {
		return errors.New("upstream timeout must be positive")
	}

	if c.Providers.GNewsBaseURL == "" || c.Providers.NewsAPIBaseURL == "" {
		return errors.New("provider base URLs cannot be empty")
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	switch c.Settings.Store {
	case StoreMemory:
	case StoreBolt, StoreSQLite:
		if c.Settings.Path == "" {
			return fmt.Errorf("settings path cannot be empty when using %s store", c.Settings.Store)
		}
	case StoreRedis:
		if c.Settings.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis store")
		}
	default:
		return errors.New("settings store must be 'memory', 'bolt', 'sqlite' or 'redis'")
	}

	return nil
}
