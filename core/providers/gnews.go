// ABOUTME: GNews v4 search adapter building token-authenticated request URLs
// ABOUTME: Lead images come from the GNews image field

package providers

import (
	"net/url"
	"strconv"

	"newsfeed-api/core/domain"
)

// DefaultGNewsBaseURL is the public GNews API host
const DefaultGNewsBaseURL = "https://gnews.io"

// GNews adapts the GNews v4 search endpoint
type GNews struct {
	baseURL string
	apiKey  string
}

// NewGNews creates a GNews adapter. An empty baseURL selects DefaultGNewsBaseURL.
func NewGNews(baseURL, apiKey string) *GNews {
	if baseURL == "" {
		baseURL = DefaultGNewsBaseURL
	}
	return &GNews{baseURL: trimBase(baseURL), apiKey: apiKey}
}

// Name implements Provider
func (g *GNews) Name() domain.ProviderName {
	return domain.ProviderGNews
}

// HasKey reports whether an API key is configured
func (g *GNews) HasKey() bool {
	return g.apiKey != ""
}

// BuildURL implements Provider
func (g *GNews) BuildURL(req domain.PageRequest) string {
	params := url.Values{}
	params.Set("q", req.Intent.EffectiveTerm())
	params.Set("lang", "en")
	params.Set("max", strconv.Itoa(req.PageSize))
	params.Set("page", strconv.Itoa(req.Page))
	params.Set("token", g.apiKey)
	return g.baseURL + "/api/v4/search?" + params.Encode()
}

// Normalize implements Provider
func (g *GNews) Normalize(raw RawArticle) domain.Article {
	return normalize(raw, raw.Image)
}
