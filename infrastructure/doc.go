// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as settings storage, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - store/memory: In-memory settings store backed by go-cache
// - store/bolt: Single-file settings store backed by bbolt
// - store/sqlite: SQLite settings store
// - store/redis: Redis settings store
// - http/standard: Standard library HTTP client issuing single GET attempts
// - logger/structured: logrus-backed structured logger
//
// # Settings Stores
//
// Pick a backend from configuration:
//
//	kv, err := store.Open(cfg.Settings)
//	if err != nil {
//	    // Handle error
//	}
//	defer kv.Close()
//
//	err = kv.Set(ctx, "theme", "dark")
//	value, err := kv.Get(ctx, "theme")
//
// # HTTP Client
//
// Upstream failures are reported once; the caller decides what to do next.
// Credentials in query strings are redacted before URLs are logged.
//
//	client := standard.NewStandardHTTPClient(30*time.Second, standard.WithLogger(logger))
//	resp, err := client.Get(ctx, "https://gnews.io/api/v4/search?q=world")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger, err := structured.NewLogger(structured.Options{Level: "debug", Format: structured.FormatJSON})
//	logger.Info("Fetched page", map[string]interface{}{
//	    "provider": "GNews",
//	    "page":     2,
//	})
package infrastructure
