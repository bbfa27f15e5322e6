package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for making outbound HTTP requests.
// This abstraction allows for easy mocking in tests and lets the proxy and the
// fetch orchestrator share one client implementation.
type HTTPClient interface {
	// Get performs a single HTTP GET request to the specified URL.
	// Non-2xx statuses are not errors; callers inspect StatusCode.
	Get(ctx context.Context, url string) (Response, error)
}

// Response defines the interface for HTTP responses.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Returns an empty string if the header is not present.
	// Header names are case-insensitive.
	Header(key string) string
}
