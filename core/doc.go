// Package core contains the business logic for the News Feed API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure models (Article, SearchIntent, FetchResult)
// - providers: GNews and NewsAPI request building and article normalization
// - news: Fetch orchestration with key fallback, and the key-hiding relay
// - viewstate: Intent, pagination and stale-result handling for a feed view
// - settings: Theme preference persisted through a key-value store
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (HTTP, logger, store)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
//
// # Usage Example
//
//	import (
//	    "newsfeed-api/core/interfaces"
//	    "newsfeed-api/core/news"
//	    "newsfeed-api/core/providers"
//	)
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	service := news.NewService(deps,
//	    providers.NewGNews("https://gnews.io", gnewsKey),
//	    providers.NewNewsAPI("https://newsapi.org", newsapiKey),
//	)
//
//	result, err := service.Fetch(ctx, domain.SearchIntent{Category: "science"}, 1)
package core
