// Package api provides the HTTP layer of the news proxy.
// It uses the Huma framework on a chi router for OpenAPI documentation and
// request binding.
//
// # Architecture
//
//   - server.go: Huma API configuration, CORS and middleware setup
//   - handlers/: the /api/news proxy and the /api/ping liveness check
//   - middleware/: request logging with request ids
//
// # Endpoints
//
//	GET /api/news?provider=gnews|newsapi&q=&cat=&page=1
//	GET /api/ping
//
// The news endpoint attaches the server-held key for the chosen provider,
// makes exactly one upstream call and mirrors the upstream status, content
// type and body. Proxy-generated failures use a flat error body:
//
//	{"message": "Missing NewsAPI key"}
//
// Missing keys and malformed pages map to 400; anything else maps to 500.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{Logger: logger})
//	handlers.NewNewsHandler(relay, logger).RegisterRoutes(humaAPI)
//	handlers.NewHealthHandler().RegisterRoutes(humaAPI)
//	http.ListenAndServe(":8000", router)
package api
