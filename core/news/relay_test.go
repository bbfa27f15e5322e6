package news

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsfeed-api/core/domain"
	coreerrors "newsfeed-api/core/errors"
	"newsfeed-api/core/interfaces"
	"newsfeed-api/core/providers"
)

func newTestRelay(client interfaces.HTTPClient, gnewsKey, newsapiKey string) *Relay {
	deps := interfaces.Dependencies{HTTPClient: client}
	return NewRelay(deps, providers.NewGNews(gnewsBase, gnewsKey), providers.NewNewsAPI(newsapiBase, newsapiKey))
}

func TestRelay_ForwardsVerbatim(t *testing.T) {
	body := `{"totalArticles":1,"articles":[{"title":"<b>raw</b>"}]}`
	client := routeClient(&mockResponse{
		statusCode: 200,
		body:       body,
		headers:    map[string]string{"Content-Type": "application/json; charset=utf-8"},
	}, nil)
	relay := newTestRelay(client, "g-key", "")

	resp, err := relay.Forward(context.Background(), domain.ProviderGNews, domain.SearchIntent{QueryText: "go"}, 2)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, body, string(resp.Body))
	assert.Equal(t, "application/json; charset=utf-8", resp.ContentType)

	calls := client.calls()
	require.Len(t, calls, 1)
	u, err := url.Parse(calls[0])
	require.NoError(t, err)
	assert.Equal(t, "/api/v4/search", u.Path)
	assert.Equal(t, "go", u.Query().Get("q"))
	assert.Equal(t, "2", u.Query().Get("page"))
	assert.Equal(t, "g-key", u.Query().Get("token"))
}

func TestRelay_MirrorsUpstreamErrorStatus(t *testing.T) {
	client := routeClient(nil, &mockResponse{statusCode: 426, body: `{"status":"error","message":"Upgrade required"}`})
	relay := newTestRelay(client, "", "n-key")

	resp, err := relay.Forward(context.Background(), domain.ProviderNewsAPI, domain.SearchIntent{Category: "sports"}, 1)

	require.NoError(t, err)
	assert.Equal(t, 426, resp.StatusCode)
	assert.Equal(t, `{"status":"error","message":"Upgrade required"}`, string(resp.Body))
	assert.Equal(t, defaultContentType, resp.ContentType)

	u, err := url.Parse(client.calls()[0])
	require.NoError(t, err)
	assert.Equal(t, "/v2/everything", u.Path)
	assert.Equal(t, "sports", u.Query().Get("q"))
	assert.Equal(t, "n-key", u.Query().Get("apiKey"))
}

func TestRelay_MissingKey(t *testing.T) {
	tests := []struct {
		name     string
		provider domain.ProviderName
		message  string
	}{
		{"newsapi", domain.ProviderNewsAPI, "Missing NewsAPI key"},
		{"gnews", domain.ProviderGNews, "Missing GNews API key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockHTTPClient{}
			relay := newTestRelay(client, "", "")

			_, err := relay.Forward(context.Background(), tt.provider, domain.SearchIntent{}, 1)

			require.Error(t, err)
			assert.True(t, coreerrors.IsMissingCredential(err))
			assert.Equal(t, tt.message, err.Error())
			assert.Empty(t, client.calls())
		})
	}
}

func TestRelay_UnknownProviderMeansGNews(t *testing.T) {
	client := routeClient(&mockResponse{statusCode: 200, body: `{}`}, nil)
	relay := newTestRelay(client, "g-key", "n-key")

	_, err := relay.Forward(context.Background(), domain.ProviderName("bing"), domain.SearchIntent{}, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, countPrefix(client.calls(), gnewsBase))
}

func TestRelay_TransportFailure(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return nil, errors.New("connection reset")
		},
	}
	relay := newTestRelay(client, "g-key", "")

	_, err := relay.Forward(context.Background(), domain.ProviderGNews, domain.SearchIntent{}, 1)

	require.Error(t, err)
	assert.True(t, coreerrors.IsNetwork(err))
	assert.Equal(t, "connection reset", err.Error())
	assert.Len(t, client.calls(), 1)
}

func TestRelay_RejectsPageBelowOne(t *testing.T) {
	client := &mockHTTPClient{}
	relay := newTestRelay(client, "g-key", "")

	_, err := relay.Forward(context.Background(), domain.ProviderGNews, domain.SearchIntent{}, 0)

	assert.True(t, coreerrors.IsValidation(err))
	assert.Empty(t, client.calls())
}
