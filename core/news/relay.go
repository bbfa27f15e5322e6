// ABOUTME: Relay forwards one proxy request to the chosen upstream with the server-held key attached
// ABOUTME: The upstream status and body are returned untouched for verbatim passthrough

package news

import (
	"context"
	"io"

	"newsfeed-api/core/domain"
	"newsfeed-api/core/errors"
	"newsfeed-api/core/interfaces"
	"newsfeed-api/core/providers"
)

// defaultContentType is used when the upstream omits Content-Type
const defaultContentType = "application/json"

// KeyedProvider is a provider that may or may not hold a credential
type KeyedProvider interface {
	providers.Provider
	HasKey() bool
}

// RelayResponse is an upstream reply as received
type RelayResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Relay performs exactly one outbound call per request
type Relay struct {
	gnews      KeyedProvider
	newsapi    KeyedProvider
	httpClient interfaces.HTTPClient
	logger     interfaces.Logger
}

// NewRelay creates a relay over the two upstream adapters
func NewRelay(deps interfaces.Dependencies, gnews, newsapi KeyedProvider) *Relay {
	logger := deps.Logger
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Relay{
		gnews:      gnews,
		newsapi:    newsapi,
		httpClient: deps.HTTPClient,
		logger:     logger,
	}
}

// Forward sends the request for intent and page to provider. Any provider
// other than NewsAPI selects GNews. A missing key yields MissingCredentialError
// without an outbound call.
func (r *Relay) Forward(ctx context.Context, provider domain.ProviderName, intent domain.SearchIntent, page int) (*RelayResponse, error) {
	if page < 1 {
		return nil, &errors.ValidationError{Field: "page", Message: "page must be a positive integer"}
	}

	target := r.gnews
	if provider == domain.ProviderNewsAPI {
		target = r.newsapi
	}
	name := target.Name().String()

	if !target.HasKey() {
		r.logger.Warn("Proxy request without configured key", map[string]interface{}{
			"provider": name,
		})
		return nil, &errors.MissingCredentialError{Provider: name}
	}

	req := domain.NewPageRequest(intent, page)
	resp, err := r.httpClient.Get(ctx, target.BuildURL(req))
	if err != nil {
		return nil, &errors.NetworkError{Provider: name, Cause: err}
	}
	body := resp.Body()
	defer body.Close()

	data, err := io.ReadAll(io.LimitReader(body, maxBodyBytes))
	if err != nil {
		return nil, &errors.NetworkError{Provider: name, Cause: err}
	}

	contentType := resp.Header("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	r.logger.Debug("Relayed upstream response", map[string]interface{}{
		"provider": name,
		"status":   resp.StatusCode(),
		"bytes":    len(data),
	})

	return &RelayResponse{
		StatusCode:  resp.StatusCode(),
		ContentType: contentType,
		Body:        data,
	}, nil
}
