// ABOUTME: Provider adapter contract and the raw response shapes shared by GNews and NewsAPI
// ABOUTME: Adapters build upstream URLs and normalize raw articles; they never retry or cache

package providers

import (
	"bytes"
	"encoding/json"
	"strings"

	"newsfeed-api/core/domain"
	"newsfeed-api/pkg/utils/html"
	timeutil "newsfeed-api/pkg/utils/time"
)

// Provider adapts one upstream news API to the common article shape
type Provider interface {
	// Name returns the provider's display name
	Name() domain.ProviderName

	// BuildURL returns the full request URL for a page of results
	BuildURL(req domain.PageRequest) string

	// Normalize maps a raw upstream article to a domain article
	Normalize(raw RawArticle) domain.Article
}

// RawSource is the upstream source object. Both providers send a name.
type RawSource struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// RawArticle is the union of GNews and NewsAPI article fields
type RawArticle struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	URL         string     `json:"url"`
	Image       string     `json:"image"`
	URLToImage  string     `json:"urlToImage"`
	PublishedAt string     `json:"publishedAt"`
	Source      *RawSource `json:"source"`
}

// Envelope is the union of the GNews and NewsAPI response bodies
type Envelope struct {
	// Articles is absent on most error responses
	Articles []RawArticle `json:"articles"`

	// Message carries NewsAPI error text
	Message string `json:"message"`

	// Errors carries GNews error entries, strings or objects
	Errors []json.RawMessage `json:"errors"`

	// Status is NewsAPI's "ok" / "error"
	Status string `json:"status"`
}

// DecodeEnvelope parses a response body. Bodies that are not JSON objects yield
// an empty envelope together with the decode error.
func DecodeEnvelope(body []byte) (*Envelope, error) {
	env := &Envelope{}
	if len(body) == 0 {
		return env, nil
	}
	if err := json.Unmarshal(body, env); err != nil {
		return &Envelope{}, err
	}
	return env, nil
}

// objectText is how a non-string error object reads once stringified
const objectText = "[object Object]"

// FirstError returns the first GNews error entry as text, or "" when there is none.
// Strings are unquoted, objects read as objectText and other values keep their JSON text.
func (e *Envelope) FirstError() string {
	if e == nil || len(e.Errors) == 0 {
		return ""
	}
	raw := bytes.TrimSpace(e.Errors[0])
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	if len(raw) > 0 && raw[0] == '{' {
		return objectText
	}
	return string(raw)
}

// KeyRejected reports whether a response means the provider's key is invalid:
// a 401 status, or a first error entry containing "invalid" in any case.
func KeyRejected(status int, env *Envelope) bool {
	if status == 401 {
		return true
	}
	return strings.Contains(strings.ToLower(env.FirstError()), "invalid")
}

// normalize applies the rules shared by both adapters
func normalize(raw RawArticle, image string) domain.Article {
	description := raw.Description
	if description == "" {
		description = html.TrimTruncationMarker(raw.Content)
	}

	article := domain.Article{
		Title:       raw.Title,
		Description: html.StripHTML(description),
		Image:       image,
		URL:         raw.URL,
		PublishedAt: timeutil.ParseFlexibleTime(raw.PublishedAt),
	}
	if raw.Source != nil {
		article.Source = domain.Source{Name: raw.Source.Name}
	}
	return article
}

func trimBase(base string) string {
	return strings.TrimRight(base, "/")
}
