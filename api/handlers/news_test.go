package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsfeed-api/api/middleware"
	"newsfeed-api/core/domain"
	coreerrors "newsfeed-api/core/errors"
	"newsfeed-api/core/interfaces"
	"newsfeed-api/core/news"
	"newsfeed-api/core/providers"
)

func newNewsAPI(t *testing.T, relay Relay) humatest.TestAPI {
	_, api := humatest.New(t)
	NewNewsHandler(relay, nil).RegisterRoutes(api)
	return api
}

func decodeMessage(t *testing.T, body []byte) string {
	t.Helper()
	var msg messageBody
	require.NoError(t, json.Unmarshal(body, &msg))
	return msg.Message
}

func TestNewsHandler_RegisterRoutes(t *testing.T) {
	_, api := humatest.New(t)
	NewNewsHandler(&mockRelay{}, nil).RegisterRoutes(api)

	path := api.OpenAPI().Paths["/api/news"]
	require.NotNil(t, path)
	require.NotNil(t, path.Get)
	assert.Equal(t, "getNews", path.Get.OperationID)
}

func TestNewsHandler_Defaults(t *testing.T) {
	relay := &mockRelay{}
	api := newNewsAPI(t, relay)

	resp := api.Get("/api/news")

	assert.Equal(t, http.StatusOK, resp.Code)
	require.Len(t, relay.calls, 1)
	assert.Equal(t, domain.ProviderGNews, relay.calls[0].provider)
	assert.Equal(t, domain.SearchIntent{}, relay.calls[0].intent)
	assert.Equal(t, 1, relay.calls[0].page)
}

func TestNewsHandler_PassesParameters(t *testing.T) {
	relay := &mockRelay{}
	api := newNewsAPI(t, relay)

	api.Get("/api/news?provider=newsapi&q=golang&cat=science&page=3")

	require.Len(t, relay.calls, 1)
	assert.Equal(t, domain.ProviderNewsAPI, relay.calls[0].provider)
	assert.Equal(t, domain.SearchIntent{QueryText: "golang", Category: "science"}, relay.calls[0].intent)
	assert.Equal(t, 3, relay.calls[0].page)
}

func TestNewsHandler_UnknownProviderMeansGNews(t *testing.T) {
	relay := &mockRelay{}
	api := newNewsAPI(t, relay)

	api.Get("/api/news?provider=bing")

	require.Len(t, relay.calls, 1)
	assert.Equal(t, domain.ProviderGNews, relay.calls[0].provider)
}

func TestNewsHandler_PassesUpstreamThrough(t *testing.T) {
	upstream := `{"status":"error","code":"rateLimited","message":"Too many requests"}`
	relay := &mockRelay{
		forwardFunc: func(ctx context.Context, provider domain.ProviderName, intent domain.SearchIntent, page int) (*news.RelayResponse, error) {
			return &news.RelayResponse{StatusCode: 429, ContentType: "application/json; charset=utf-8", Body: []byte(upstream)}, nil
		},
	}
	api := newNewsAPI(t, relay)

	resp := api.Get("/api/news?provider=newsapi")

	assert.Equal(t, 429, resp.Code)
	assert.Equal(t, upstream, resp.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", resp.Header().Get("Content-Type"))
}

func TestNewsHandler_InvalidPage(t *testing.T) {
	for _, page := range []string{"0", "-2", "two", "1.5"} {
		t.Run(page, func(t *testing.T) {
			relay := &mockRelay{}
			api := newNewsAPI(t, relay)

			resp := api.Get("/api/news?page=" + page)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Equal(t, "page must be a positive integer", decodeMessage(t, resp.Body.Bytes()))
			assert.Empty(t, relay.calls)
		})
	}
}

func TestNewsHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"missing newsapi key", &coreerrors.MissingCredentialError{Provider: "NewsAPI"}, 400, "Missing NewsAPI key"},
		{"missing gnews key", &coreerrors.MissingCredentialError{Provider: "GNews"}, 400, "Missing GNews API key"},
		{"transport failure", &coreerrors.NetworkError{Provider: "GNews", Cause: errors.New("dial tcp: timeout")}, 500, "dial tcp: timeout"},
		{"empty error text", errors.New(""), 500, "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			relay := &mockRelay{
				forwardFunc: func(ctx context.Context, provider domain.ProviderName, intent domain.SearchIntent, page int) (*news.RelayResponse, error) {
					return nil, tt.err
				},
			}
			api := newNewsAPI(t, relay)

			resp := api.Get("/api/news")

			assert.Equal(t, tt.status, resp.Code)
			assert.Equal(t, tt.message, decodeMessage(t, resp.Body.Bytes()))
			assert.Contains(t, resp.Header().Get("Content-Type"), "application/json")
		})
	}
}

// TestNewsHandler_MissingNewsAPIKeyEndToEnd wires the real relay with no NewsAPI key
func TestNewsHandler_MissingNewsAPIKeyEndToEnd(t *testing.T) {
	upstreamHits := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamHits++
	}))
	defer upstream.Close()

	deps := interfaces.Dependencies{HTTPClient: nil}
	relay := news.NewRelay(deps,
		providers.NewGNews(upstream.URL, "g-key"),
		providers.NewNewsAPI(upstream.URL, ""),
	)
	api := newNewsAPI(t, relay)

	resp := api.Get("/api/news?provider=newsapi")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"message":"Missing NewsAPI key"}`, resp.Body.String())
	assert.Zero(t, upstreamHits)
}

func TestNewsHandler_ServerErrorLogsRequestID(t *testing.T) {
	logger := &recordingLogger{}
	relay := &mockRelay{
		forwardFunc: func(ctx context.Context, provider domain.ProviderName, intent domain.SearchIntent, page int) (*news.RelayResponse, error) {
			return nil, &coreerrors.NetworkError{Provider: "GNews", Cause: errors.New("connection reset")}
		},
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestLoggingMiddleware(logger))
	api := humachi.New(router, huma.DefaultConfig("Test", "1.0.0"))
	NewNewsHandler(relay, logger).RegisterRoutes(api)

	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	entry, ok := logger.find("News proxy failed")
	require.True(t, ok)
	assert.Equal(t, "error", entry.level)
	assert.Equal(t, "req-42", entry.fields["request_id"])
	assert.Equal(t, "connection reset", entry.fields["error"])
}
