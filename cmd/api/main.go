// ABOUTME: Main entry point for the Newsfeed proxy server
// ABOUTME: Wires configuration, logging, the upstream relay and handlers, then serves HTTP

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"newsfeed-api/api"
	"newsfeed-api/api/handlers"
	"newsfeed-api/core/interfaces"
	"newsfeed-api/core/news"
	"newsfeed-api/core/providers"
	stdhttp "newsfeed-api/infrastructure/http/standard"
	"newsfeed-api/infrastructure/logger/structured"
	"newsfeed-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger, err := structured.NewLogger(structured.Options{
		Level:  cfg.Log.Level,
		Format: structured.Format(cfg.Log.Format),
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	logger.Info("Starting Newsfeed API", map[string]interface{}{
		"port":             cfg.Server.Port,
		"upstream_timeout": cfg.Server.UpstreamTimeout.String(),
		"gnews_key":        cfg.Providers.GNewsKey != "",
		"newsapi_key":      cfg.Providers.NewsAPIKey != "",
	})

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(cfg.Server.UpstreamTimeout, stdhttp.WithLogger(logger))

	// Create dependencies container
	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create the relay over both upstream adapters
	relay := news.NewRelay(deps,
		providers.NewGNews(cfg.Providers.GNewsBaseURL, cfg.Providers.GNewsKey),
		providers.NewNewsAPI(cfg.Providers.NewsAPIBaseURL, cfg.Providers.NewsAPIKey),
	)

	// Create API with middleware
	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{Logger: logger})

	// Create and register handlers
	handlers.NewNewsHandler(relay, logger).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler().RegisterRoutes(humaAPI)

	// Create HTTP server; writes must outlive the upstream call they relay
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Server.UpstreamTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Stop on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Serve and shut down under one errgroup
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutting down server...", nil)

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	logger.Info("Server stopped", nil)
}

func init() {
	// Print banner
	fmt.Println(`
    _   __                    ____              __
   / | / /__ _      _______  / __/__  ___  ____/ /
  /  |/ / _ \ | /| / / ___/ / /_/ _ \/ _ \/ __  /
 / /|  /  __/ |/ |/ (__  ) / __/  __/  __/ /_/ /
/_/ |_/\___/|__/|__/____/ /_/  \___/\___/\__,_/
	`)
}
