// ABOUTME: Proxy wrapper that sends provider requests to the key-hiding /api/news endpoint
// ABOUTME: Request URLs carry provider, query, category and page but never a key

package providers

import (
	"net/url"
	"strconv"

	"newsfeed-api/core/domain"
)

// proxied routes a provider's requests through the key-hiding proxy.
// The proxy attaches the key, so no credential leaves the server.
type proxied struct {
	Provider
	proxyURL string
}

// ViaProxy wraps p so that BuildURL targets the proxy's /api/news endpoint.
// Normalization is unchanged because the proxy returns upstream bodies verbatim.
func ViaProxy(p Provider, proxyURL string) Provider {
	return &proxied{Provider: p, proxyURL: trimBase(proxyURL)}
}

// BuildURL implements Provider
func (p *proxied) BuildURL(req domain.PageRequest) string {
	params := url.Values{}
	params.Set("provider", p.Name().ID())
	params.Set("q", req.Intent.QueryText)
	params.Set("cat", req.Intent.Category)
	params.Set("page", strconv.Itoa(req.Page))
	return p.proxyURL + "/api/news?" + params.Encode()
}
