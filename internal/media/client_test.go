package media

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHTTPClient struct {
	body    string
	err     error
	lastURL string
}

func (s *stubHTTPClient) Get(_ context.Context, url string, result interface{}) error {
	s.lastURL = url
	if s.err != nil {
		return s.err
	}
	return json.Unmarshal([]byte(s.body), result)
}

func (s *stubHTTPClient) Post(_ context.Context, _ string, _ string, _ map[string]string, _ io.Reader) ([]byte, error) {
	return nil, errors.New("not implemented")
}

func TestSearchReturnsCandidates(t *testing.T) {
	http := &stubHTTPClient{body: `{"data": [
		{"bitly_gif_url": "https://gif.example.com/a"},
		{"bitly_gif_url": "https://gif.example.com/b"}
	]}`}
	client := NewHTTPClient(http, "https://api.gifs.example.com", "key123", 10)

	urls, err := client.Search(context.Background(), "space cats")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://gif.example.com/a", "https://gif.example.com/b"}, urls)

	// Keyword and limit are encoded into the query.
	assert.True(t, strings.Contains(http.lastURL, "q=space+cats"))
	assert.True(t, strings.Contains(http.lastURL, "limit=10"))
}

func TestSearchEmptyResult(t *testing.T) {
	client := NewHTTPClient(&stubHTTPClient{body: `{"data": []}`}, "https://api.gifs.example.com", "k", 10)

	urls, err := client.Search(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestSearchTransportError(t *testing.T) {
	client := NewHTTPClient(&stubHTTPClient{err: errors.New("timeout")}, "https://api.gifs.example.com", "k", 10)

	_, err := client.Search(context.Background(), "cats")
	assert.Error(t, err)
}

func TestPick(t *testing.T) {
	assert.Empty(t, Pick(nil))
	assert.Equal(t, "only", Pick([]string{"only"}))

	candidates := []string{"a", "b", "c"}
	assert.Contains(t, candidates, Pick(candidates))
}
