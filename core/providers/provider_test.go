package providers

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsfeed-api/core/domain"
)

func parseURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestGNews_BuildURL(t *testing.T) {
	g := NewGNews("", "gnews-key")
	req := domain.NewPageRequest(domain.SearchIntent{QueryText: "golang"}, 2)

	u := parseURL(t, g.BuildURL(req))

	assert.Equal(t, "gnews.io", u.Host)
	assert.Equal(t, "/api/v4/search", u.Path)
	q := u.Query()
	assert.Equal(t, "golang", q.Get("q"))
	assert.Equal(t, "en", q.Get("lang"))
	assert.Equal(t, "8", q.Get("max"))
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "gnews-key", q.Get("token"))
}

func TestNewsAPI_BuildURL(t *testing.T) {
	n := NewNewsAPI("http://localhost:9999/", "newsapi-key")
	req := domain.NewPageRequest(domain.SearchIntent{Category: "sports"}, 1)

	u := parseURL(t, n.BuildURL(req))

	assert.Equal(t, "localhost:9999", u.Host)
	assert.Equal(t, "/v2/everything", u.Path)
	q := u.Query()
	assert.Equal(t, "sports", q.Get("q"))
	assert.Equal(t, "en", q.Get("language"))
	assert.Equal(t, "8", q.Get("pageSize"))
	assert.Equal(t, "1", q.Get("page"))
	assert.Equal(t, "newsapi-key", q.Get("apiKey"))
}

func TestBuildURL_DefaultTermForEmptyIntent(t *testing.T) {
	req := domain.NewPageRequest(domain.SearchIntent{}, 1)

	for _, p := range []Provider{NewGNews("", "k"), NewNewsAPI("", "k")} {
		u := parseURL(t, p.BuildURL(req))
		assert.Equal(t, domain.DefaultSearchTerm, u.Query().Get("q"), p.Name())
	}
}

func TestViaProxy_BuildURL(t *testing.T) {
	p := ViaProxy(NewNewsAPI("", "secret"), "https://news.example.com/")
	req := domain.NewPageRequest(domain.SearchIntent{QueryText: "space x"}, 3)

	u := parseURL(t, p.BuildURL(req))

	assert.Equal(t, "news.example.com", u.Host)
	assert.Equal(t, "/api/news", u.Path)
	q := u.Query()
	assert.Equal(t, "newsapi", q.Get("provider"))
	assert.Equal(t, "space x", q.Get("q"))
	assert.Equal(t, "", q.Get("cat"))
	assert.Equal(t, "3", q.Get("page"))
	assert.NotContains(t, u.RawQuery, "secret")
	assert.Equal(t, domain.ProviderNewsAPI, p.Name())
}

func TestGNews_Normalize(t *testing.T) {
	g := NewGNews("", "")
	raw := RawArticle{
		Title:       "Title",
		Description: "Desc",
		URL:         "https://example.com/a",
		Image:       "https://example.com/a.jpg",
		URLToImage:  "https://example.com/ignored.jpg",
		PublishedAt: "2025-02-03T10:20:30Z",
		Source:      &RawSource{Name: "Example"},
	}

	article := g.Normalize(raw)

	assert.Equal(t, domain.Article{
		Title:       "Title",
		Description: "Desc",
		Image:       "https://example.com/a.jpg",
		URL:         "https://example.com/a",
		Source:      domain.Source{Name: "Example"},
		PublishedAt: time.Date(2025, 2, 3, 10, 20, 30, 0, time.UTC),
	}, article)
}

func TestNewsAPI_Normalize(t *testing.T) {
	n := NewNewsAPI("", "")
	raw := RawArticle{
		Title:      "Title",
		Content:    "<p>Body text</p> [+1200 chars]",
		URL:        "https://example.com/b",
		URLToImage: "https://example.com/b.jpg",
	}

	article := n.Normalize(raw)

	assert.Equal(t, "Body text", article.Description)
	assert.Equal(t, "https://example.com/b.jpg", article.Image)
	assert.Equal(t, "", article.Source.Name)
	assert.Equal(t, domain.UnknownSource, article.SourceLabel())
}

func TestNormalize_MissingFields(t *testing.T) {
	article := NewGNews("", "").Normalize(RawArticle{URL: "https://example.com/c"})

	assert.Empty(t, article.Title)
	assert.Empty(t, article.Description)
	assert.False(t, article.HasImage())
	assert.Equal(t, domain.Source{}, article.Source)
	assert.True(t, article.PublishedAt.IsZero())
}

func TestDecodeEnvelope(t *testing.T) {
	env, err := DecodeEnvelope([]byte(`{"totalArticles":2,"articles":[{"title":"a"},{"title":"b"}]}`))
	require.NoError(t, err)
	assert.Len(t, env.Articles, 2)

	env, err = DecodeEnvelope(nil)
	require.NoError(t, err)
	assert.Empty(t, env.Articles)

	env, err = DecodeEnvelope([]byte("<html>bad gateway</html>"))
	assert.Error(t, err)
	require.NotNil(t, env)
	assert.Empty(t, env.Articles)
}

func TestEnvelope_FirstError(t *testing.T) {
	env, err := DecodeEnvelope([]byte(`{"errors":["You did not provide an API key."]}`))
	require.NoError(t, err)
	assert.Equal(t, "You did not provide an API key.", env.FirstError())

	env, err = DecodeEnvelope([]byte(`{"errors":{"bad":"shape"}}`))
	assert.Error(t, err)
	assert.Equal(t, "", env.FirstError())

	env, err = DecodeEnvelope([]byte(`{"errors":[{"code":"invalid_token"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "[object Object]", env.FirstError())

	env, err = DecodeEnvelope([]byte(`{"errors":[42]}`))
	require.NoError(t, err)
	assert.Equal(t, "42", env.FirstError())

	var nilEnv *Envelope
	assert.Equal(t, "", nilEnv.FirstError())
}

func TestKeyRejected(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected bool
	}{
		{"401", 401, `{}`, true},
		{"invalid error entry", 403, `{"errors":["Your API key is INVALID"]}`, true},
		{"object entry mentioning invalid", 400, `{"errors":[{"message":"Invalid key"}]}`, false},
		{"other error entry", 403, `{"errors":["Daily quota reached"]}`, false},
		{"only second entry invalid", 400, `{"errors":["quota","invalid"]}`, false},
		{"ok", 200, `{"articles":[]}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, _ := DecodeEnvelope([]byte(tt.body))
			assert.Equal(t, tt.expected, KeyRejected(tt.status, env))
		})
	}
}
