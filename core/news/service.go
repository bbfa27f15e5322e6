// ABOUTME: Fetch orchestrator calls the primary provider and falls back once on a rejected key
// ABOUTME: Resolves every provider-level failure into a core error before it reaches the view state

package news

import (
	"context"
	"fmt"
	"io"

	"newsfeed-api/core/domain"
	"newsfeed-api/core/errors"
	"newsfeed-api/core/interfaces"
	"newsfeed-api/core/providers"
)

// maxBodyBytes bounds how much of an upstream body is read
const maxBodyBytes = 4 << 20

// Service fetches pages of news from a primary provider with a one-shot
// fallback to a secondary provider.
type Service struct {
	primary    providers.Provider
	secondary  providers.Provider
	httpClient interfaces.HTTPClient
	logger     interfaces.Logger
}

// NewService creates a fetch orchestrator. primary is normally GNews and
// secondary NewsAPI.
func NewService(deps interfaces.Dependencies, primary, secondary providers.Provider) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Service{
		primary:    primary,
		secondary:  secondary,
		httpClient: deps.HTTPClient,
		logger:     logger,
	}
}

// upstreamReply is one provider response
type upstreamReply struct {
	status    int
	envelope  *providers.Envelope
	decodeErr error
}

// Fetch returns one page of normalized articles for intent.
// The secondary provider is tried exactly once, and only when the primary
// rejects its key.
func (s *Service) Fetch(ctx context.Context, intent domain.SearchIntent, page int) (*domain.FetchResult, error) {
	if page < 1 {
		return nil, &errors.ValidationError{Field: "page", Message: "page must be at least 1"}
	}

	req := domain.NewPageRequest(intent, page)

	provider := s.primary
	reply, err := s.call(ctx, provider, req)
	if err != nil {
		return nil, err
	}

	if providers.KeyRejected(reply.status, reply.envelope) {
		signal := &errors.ProviderKeyInvalidError{
			Provider:   provider.Name().String(),
			StatusCode: reply.status,
			Reason:     reply.envelope.FirstError(),
		}
		s.logger.Warn("Primary provider rejected its key, falling back", map[string]interface{}{
			"provider": provider.Name().String(),
			"fallback": s.secondary.Name().String(),
			"error":    signal.Error(),
		})

		provider = s.secondary
		reply, err = s.call(ctx, provider, req)
		if err != nil {
			return nil, err
		}
	}

	if reply.status < 200 || reply.status > 299 {
		upstreamErr := &errors.UpstreamError{
			Provider:   provider.Name().String(),
			StatusCode: reply.status,
			Message:    reply.envelope.Message,
		}
		s.logger.Error("Upstream request failed", map[string]interface{}{
			"provider": provider.Name().String(),
			"status":   reply.status,
			"error":    upstreamErr.Error(),
		})
		return nil, upstreamErr
	}

	if reply.decodeErr != nil {
		return nil, &errors.NetworkError{
			Provider: provider.Name().String(),
			Cause:    fmt.Errorf("invalid response from %s: %w", provider.Name(), reply.decodeErr),
		}
	}

	articles := make([]domain.Article, 0, len(reply.envelope.Articles))
	for _, raw := range reply.envelope.Articles {
		articles = append(articles, provider.Normalize(raw))
	}

	s.logger.Debug("Fetched page", map[string]interface{}{
		"provider": provider.Name().String(),
		"term":     intent.EffectiveTerm(),
		"page":     page,
		"articles": len(articles),
	})

	return domain.NewFetchResult(articles, provider.Name(), req.PageSize), nil
}

// call performs one request against provider and decodes the body leniently
func (s *Service) call(ctx context.Context, provider providers.Provider, req domain.PageRequest) (*upstreamReply, error) {
	resp, err := s.httpClient.Get(ctx, provider.BuildURL(req))
	if err != nil {
		s.logger.Error("Upstream request failed", map[string]interface{}{
			"provider": provider.Name().String(),
			"error":    err.Error(),
		})
		return nil, &errors.NetworkError{Provider: provider.Name().String(), Cause: err}
	}
	body := resp.Body()
	defer body.Close()

	data, err := io.ReadAll(io.LimitReader(body, maxBodyBytes))
	if err != nil {
		return nil, &errors.NetworkError{Provider: provider.Name().String(), Cause: err}
	}

	env, decodeErr := providers.DecodeEnvelope(data)
	return &upstreamReply{
		status:    resp.StatusCode(),
		envelope:  env,
		decodeErr: decodeErr,
	}, nil
}
