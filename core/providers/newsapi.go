// ABOUTME: NewsAPI v2 everything adapter building apiKey-authenticated request URLs
// ABOUTME: Lead images come from the NewsAPI urlToImage field

package providers

import (
	"net/url"
	"strconv"

	"newsfeed-api/core/domain"
)

// DefaultNewsAPIBaseURL is the public NewsAPI host
const DefaultNewsAPIBaseURL = "https://newsapi.org"

// NewsAPI adapts the NewsAPI v2 everything endpoint
type NewsAPI struct {
	baseURL string
	apiKey  string
}

// NewNewsAPI creates a NewsAPI adapter. An empty baseURL selects DefaultNewsAPIBaseURL.
func NewNewsAPI(baseURL, apiKey string) *NewsAPI {
	if baseURL == "" {
		baseURL = DefaultNewsAPIBaseURL
	}
	return &NewsAPI{baseURL: trimBase(baseURL), apiKey: apiKey}
}

// Name implements Provider
func (n *NewsAPI) Name() domain.ProviderName {
	return domain.ProviderNewsAPI
}

// HasKey reports whether an API key is configured
func (n *NewsAPI) HasKey() bool {
	return n.apiKey != ""
}

// BuildURL implements Provider
func (n *NewsAPI) BuildURL(req domain.PageRequest) string {
	params := url.Values{}
	params.Set("q", req.Intent.EffectiveTerm())
	params.Set("language", "en")
	params.Set("pageSize", strconv.Itoa(req.PageSize))
	params.Set("page", strconv.Itoa(req.Page))
	params.Set("apiKey", n.apiKey)
	return n.baseURL + "/v2/everything?" + params.Encode()
}

// Normalize implements Provider
func (n *NewsAPI) Normalize(raw RawArticle) domain.Article {
	return normalize(raw, raw.URLToImage)
}
