// ABOUTME: Standard HTTP client implementation with timeout support
// ABOUTME: Performs exactly one attempt per call; provider fallback lives in the orchestrator

package standard

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"newsfeed-api/core/interfaces"
)

const userAgent = "NewsfeedAPI/1.0"

// secretParams are redacted before upstream URLs reach the logs
var secretParams = []string{"token", "apiKey", "apikey"}

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client *http.Client
}

// Option configures a StandardHTTPClient
type Option func(*http.Client)

// WithLogger logs every outgoing request at debug level, with API keys redacted
func WithLogger(logger interfaces.Logger) Option {
	return func(c *http.Client) {
		base := c.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		c.Transport = &loggingRoundTripper{transport: base, logger: logger}
	}
}

// WithTransport replaces the underlying round tripper
func WithTransport(rt http.RoundTripper) Option {
	return func(c *http.Client) {
		c.Transport = rt
	}
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration, opts ...Option) *StandardHTTPClient {
	client := &http.Client{
		Timeout: timeout,
	}
	for _, opt := range opts {
		opt(client)
	}
	return &StandardHTTPClient{client: client}
}

// Get performs a single HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, rawURL string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}

// loggingRoundTripper logs outgoing requests
type loggingRoundTripper struct {
	transport http.RoundTripper
	logger    interfaces.Logger
}

// RoundTrip implements http.RoundTripper
func (t *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	target := RedactURL(req.URL)

	resp, err := t.transport.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		t.logger.Error("Outgoing HTTP request failed", map[string]interface{}{
			"method":   req.Method,
			"url":      target,
			"duration": duration.String(),
			"error":    err.Error(),
		})
		return nil, err
	}

	t.logger.Debug("Outgoing HTTP response", map[string]interface{}{
		"method":   req.Method,
		"url":      target,
		"status":   resp.StatusCode,
		"duration": duration.String(),
	})
	return resp, nil
}

// RedactURL renders u with API key parameters masked
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	clone := *u
	q := clone.Query()
	changed := false
	for _, p := range secretParams {
		if q.Has(p) {
			q.Set(p, "REDACTED")
			changed = true
		}
	}
	if changed {
		clone.RawQuery = q.Encode()
	}
	return clone.String()
}
