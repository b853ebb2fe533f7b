package quotes

import (
	"context"
	"fmt"
	"net/url"

	"github.com/bodega-labs/chatwatch/internal/adapter"
	"github.com/bodega-labs/chatwatch/internal/domain"
)

// Client retrieves quotes from the upstream quote source
//
//go:generate mockgen -source=client.go -destination=../mocks/quotes.go -package=mocks -mock_names=Client=MockQuoteClient
type Client interface {
	// GetQuote fetches the current quote for one symbol. A symbol unknown to
	// the source yields a quote whose fields hold the unknown sentinel, not
	// an error.
	GetQuote(ctx context.Context, symbol string) (domain.Quote, error)
}

// quoteResponse mirrors the upstream quote payload. Pointer fields
// distinguish an absent value from a zero one.
type quoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol               string   `json:"symbol"`
			RegularMarketPrice   *float64 `json:"regularMarketPrice"`
			RegularMarketDayLow  *float64 `json:"regularMarketDayLow"`
			RegularMarketDayHigh *float64 `json:"regularMarketDayHigh"`
		} `json:"result"`
	} `json:"quoteResponse"`
}

type httpClient struct {
	http    adapter.HTTPClient
	baseURL string
}

// NewHTTPClient creates a quote client over the HTTP quote source
func NewHTTPClient(http adapter.HTTPClient, baseURL string) Client {
	return &httpClient{http: http, baseURL: baseURL}
}

// GetQuote implements Client
func (c *httpClient) GetQuote(ctx context.Context, symbol string) (domain.Quote, error) {
	endpoint := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", c.baseURL, url.QueryEscape(symbol))

	var resp quoteResponse
	if err := c.http.Get(ctx, endpoint, &resp); err != nil {
		return domain.Quote{}, fmt.Errorf("failed to fetch quote for %s: %w", symbol, err)
	}

	quote := domain.Quote{
		Symbol:  symbol,
		Price:   domain.QuoteUnknown,
		DayLow:  domain.QuoteUnknown,
		DayHigh: domain.QuoteUnknown,
	}

	for _, result := range resp.QuoteResponse.Result {
		if result.Symbol != symbol {
			continue
		}
		if result.RegularMarketPrice != nil {
			quote.Price = *result.RegularMarketPrice
		}
		if result.RegularMarketDayLow != nil {
			quote.DayLow = *result.RegularMarketDayLow
		}
		if result.RegularMarketDayHigh != nil {
			quote.DayHigh = *result.RegularMarketDayHigh
		}
		break
	}

	return quote, nil
}
