// ABOUTME: Key-hiding news proxy handler for the Huma API
// ABOUTME: Attaches the server-held key, forwards once, and mirrors the upstream reply

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"newsfeed-api/api/middleware"
	"newsfeed-api/core/domain"
	"newsfeed-api/core/errors"
	"newsfeed-api/core/interfaces"
	"newsfeed-api/core/news"
	"newsfeed-api/pkg/utils/parse"
)

const jsonContentType = "application/json"

// Relay forwards one request to an upstream news provider
type Relay interface {
	Forward(ctx context.Context, provider domain.ProviderName, intent domain.SearchIntent, page int) (*news.RelayResponse, error)
}

// NewsHandler serves GET /api/news
type NewsHandler struct {
	relay  Relay
	logger interfaces.Logger
}

// NewNewsHandler creates a new news proxy handler
func NewNewsHandler(relay Relay, logger interfaces.Logger) *NewsHandler {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &NewsHandler{relay: relay, logger: logger}
}

// RegisterRoutes registers the proxy route
func (h *NewsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getNews",
		Method:      http.MethodGet,
		Path:        "/api/news",
		Summary:     "Search news through the key-hiding proxy",
		Description: "Forwards a search to GNews or NewsAPI with the server-held key and returns the upstream reply unchanged",
		Tags:        []string{"News"},
	}, h.GetNews)
}

// NewsInput defines the proxy query parameters. Page is kept as text so
// malformed values produce the proxy's own {message} error.
type NewsInput struct {
	Provider string `query:"provider" default:"gnews" doc:"Upstream provider: gnews or newsapi; anything else means gnews"`
	Query    string `query:"q" doc:"Free-text query; takes precedence over cat"`
	Category string `query:"cat" doc:"Category used as the query when q is empty"`
	Page     string `query:"page" default:"1" doc:"1-based page number"`
}

// NewsOutput carries the upstream status, content type and body verbatim
type NewsOutput struct {
	Status      int
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// GetNews handles the GET /api/news endpoint
func (h *NewsHandler) GetNews(ctx context.Context, input *NewsInput) (*NewsOutput, error) {
	page, ok := parse.PositiveInt(input.Page)
	if !ok {
		return h.fail(ctx, &errors.ValidationError{Field: "page", Message: "page must be a positive integer"}), nil
	}

	provider := domain.ProviderFromID(input.Provider)
	intent := domain.SearchIntent{QueryText: input.Query, Category: input.Category}

	resp, err := h.relay.Forward(ctx, provider, intent, page)
	if err != nil {
		return h.fail(ctx, err), nil
	}

	return &NewsOutput{
		Status:      resp.StatusCode,
		ContentType: resp.ContentType,
		Body:        resp.Body,
	}, nil
}

func (h *NewsHandler) fail(ctx context.Context, err error) *NewsOutput {
	status, body := toProxyError(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("News proxy failed", map[string]interface{}{
			"request_id": middleware.RequestIDFromContext(ctx),
			"error":      err.Error(),
		})
	}
	return &NewsOutput{
		Status:      status,
		ContentType: jsonContentType,
		Body:        body,
	}
}
