// ABOUTME: Huma API server configuration and setup for the news proxy
// ABOUTME: Provides OpenAPI documentation, open CORS for GET, and request logging

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"newsfeed-api/api/middleware"
	"newsfeed-api/core/interfaces"
)

const (
	apiTitle       = "Newsfeed API"
	apiVersion     = "1.0.0"
	apiDescription = "Key-hiding proxy for the GNews and NewsAPI search endpoints"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger
}

// corsOptions allows any origin to read the proxy; the browser client is served elsewhere
func corsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300, // Maximum value not ignored by any of major browsers
	}
}

// humaConfig builds the OpenAPI configuration. Schema link hooks are
// dropped so JSON bodies keep the exact shapes clients already parse.
func humaConfig() huma.Config {
	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = apiDescription
	config.CreateHooks = nil
	return config
}

// NewAPIWithMiddleware creates a new API with middleware configured.
// Request logging is skipped when cfg.Logger is nil.
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS must run first so preflight requests short-circuit
	router.Use(cors.Handler(corsOptions()))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	// The OpenAPI spec is served at /openapi.json and the docs UI at /docs
	api := humachi.New(router, humaConfig())

	return api, router
}
