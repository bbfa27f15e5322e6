// ABOUTME: Article domain model is the provider-independent shape the reader renders
// ABOUTME: Articles are produced only by provider adapters and never mutated afterwards

package domain

import (
	"strconv"
	"time"
)

// UnknownSource is shown when an article carries no source name
const UnknownSource = "Unknown"

// Source identifies the publication an article came from
type Source struct {
	// Name is the publication name, empty when the provider omitted it
	Name string `json:"name"`
}

// Article is a normalized news article.
// Empty strings mean the provider did not supply the field.
type Article struct {
	// Title is the article headline
	Title string `json:"title"`

	// Description is the article summary (falls back to the provider's content field)
	Description string `json:"description"`

	// Image is the URL of the lead image
	Image string `json:"image"`

	// URL links to the full article
	URL string `json:"url"`

	// Source is the originating publication
	Source Source `json:"source"`

	// PublishedAt is the publication time; zero when absent or unparseable
	PublishedAt time.Time `json:"publishedAt,omitempty"`
}

// HasImage reports whether the article carries a lead image.
// Renderers show a placeholder when it does not.
func (a Article) HasImage() bool {
	return a.Image != ""
}

// SourceLabel returns the source name or UnknownSource when absent
func (a Article) SourceLabel() string {
	if a.Source.Name == "" {
		return UnknownSource
	}
	return a.Source.Name
}

// Key returns a rendering key for the article at the given list position.
// URLs may repeat or be missing, so the index is always part of the key.
func (a Article) Key(index int) string {
	id := a.URL
	if id == "" {
		id = strconv.Itoa(index)
	}
	return id + "-" + strconv.Itoa(index)
}
