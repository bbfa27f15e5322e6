// ABOUTME: Fetch result model and provider identifiers
// ABOUTME: A full page is the only signal that more results may exist

package domain

// ProviderName identifies an upstream news API
type ProviderName string

const (
	// ProviderGNews is the primary provider
	ProviderGNews ProviderName = "GNews"

	// ProviderNewsAPI is the fallback provider
	ProviderNewsAPI ProviderName = "NewsAPI"
)

// ID returns the lowercase identifier used by the proxy's provider parameter
func (p ProviderName) ID() string {
	switch p {
	case ProviderNewsAPI:
		return "newsapi"
	case ProviderGNews:
		return "gnews"
	default:
		return ""
	}
}

// String implements fmt.Stringer
func (p ProviderName) String() string {
	return string(p)
}

// ProviderFromID maps a proxy provider parameter to a provider.
// Anything other than "newsapi" selects GNews.
func ProviderFromID(id string) ProviderName {
	if id == ProviderNewsAPI.ID() {
		return ProviderNewsAPI
	}
	return ProviderGNews
}

// FetchResult is one successfully fetched page
type FetchResult struct {
	// Articles holds the normalized articles in provider order
	Articles []Article

	// Provider is the provider that ultimately served the page
	Provider ProviderName

	// HasMore is true when the page was full
	HasMore bool
}

// NewFetchResult builds a result, deriving HasMore from the page size
func NewFetchResult(articles []Article, provider ProviderName, pageSize int) *FetchResult {
	if articles == nil {
		articles = []Article{}
	}
	return &FetchResult{
		Articles: articles,
		Provider: provider,
		HasMore:  len(articles) == pageSize,
	}
}
