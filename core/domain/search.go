// ABOUTME: Search intent and paging models shared by adapters, orchestrator and view state
// ABOUTME: Computes the effective search term that every provider receives

package domain

const (
	// DefaultSearchTerm is used when neither a query nor a category is active
	DefaultSearchTerm = "latest"

	// PageSize is the number of articles requested per page
	PageSize = 8
)

// Categories lists the category filters offered to readers
var Categories = []string{"technology", "business", "sports", "health", "science", "general"}

// SearchIntent is the reader's current search/category selection.
// At most one of QueryText and Category is active at a time.
type SearchIntent struct {
	// QueryText is free-text search input
	QueryText string `json:"q"`

	// Category is one of Categories, or empty
	Category string `json:"cat"`
}

// EffectiveTerm returns the query text, else the category, else DefaultSearchTerm
func (i SearchIntent) EffectiveTerm() string {
	if i.QueryText != "" {
		return i.QueryText
	}
	if i.Category != "" {
		return i.Category
	}
	return DefaultSearchTerm
}

// WithQuery returns an intent searching for q with the category cleared
func (i SearchIntent) WithQuery(q string) SearchIntent {
	return SearchIntent{QueryText: q}
}

// WithCategory returns an intent filtered by category with the query cleared
func (i SearchIntent) WithCategory(category string) SearchIntent {
	return SearchIntent{Category: category}
}

// IsKnownCategory reports whether name is one of Categories
func IsKnownCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// PageRequest is one page of results for an intent
type PageRequest struct {
	Intent   SearchIntent
	Page     int
	PageSize int
}

// NewPageRequest builds a request for the given page using PageSize
func NewPageRequest(intent SearchIntent, page int) PageRequest {
	return PageRequest{
		Intent:   intent,
		Page:     page,
		PageSize: PageSize,
	}
}
