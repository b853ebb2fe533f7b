package media

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"

	"github.com/bodega-labs/chatwatch/internal/adapter"
)

// Client searches the GIF source for candidate URLs
//
//go:generate mockgen -source=client.go -destination=../mocks/media.go -package=mocks -mock_names=Client=MockMediaClient
type Client interface {
	// Search returns candidate GIF URLs for a keyword; an empty slice means
	// the source had no match, not an error
	Search(ctx context.Context, keyword string) ([]string, error)
}

// searchResponse mirrors the GIF source search payload
type searchResponse struct {
	Data []struct {
		URL string `json:"bitly_gif_url"`
	} `json:"data"`
}

type httpClient struct {
	http    adapter.HTTPClient
	baseURL string
	apiKey  string
	limit   int
}

// NewHTTPClient creates a GIF search client
func NewHTTPClient(http adapter.HTTPClient, baseURL, apiKey string, limit int) Client {
	return &httpClient{
		http:    http,
		baseURL: baseURL,
		apiKey:  apiKey,
		limit:   limit,
	}
}

// Search implements Client
func (c *httpClient) Search(ctx context.Context, keyword string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/v1/gifs/search?api_key=%s&q=%s&limit=%d&rating=g&lang=en",
		c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(keyword), c.limit)

	var resp searchResponse
	if err := c.http.Get(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("failed to search gifs for %q: %w", keyword, err)
	}

	urls := make([]string, 0, len(resp.Data))
	for _, item := range resp.Data {
		if item.URL != "" {
			urls = append(urls, item.URL)
		}
	}
	return urls, nil
}

// Pick returns one candidate at random, or "" when there are none
func Pick(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	return candidates[rand.Intn(len(candidates))]
}
