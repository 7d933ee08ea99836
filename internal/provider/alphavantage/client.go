package alphavantage

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	financialdata "github.com/quantra/financial-data-service/internal/infrastructure/postgresql/financialdata"
	"github.com/quantra/financial-data-service/pkg/errors"
	"github.com/quantra/financial-data-service/pkg/util"
)

const defaultBaseURL = "https://www.alphavantage.co"

// defaultLookback bounds how far back fetched rows are kept.
const defaultLookback = 14 * 24 * time.Hour

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=alphavantage_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the Alpha Vantage API.
type Client struct {
	// baseURL is the base URL for the API.
	baseURL string
	// apiKey authenticates every request.
	apiKey string
	// httpClient performs the HTTP requests.
	httpClient HTTPClient
	// timeout bounds a single series fetch. Zero disables the bound.
	timeout time.Duration
	// lookback drops rows whose date is older than now minus this window.
	lookback time.Duration
	// now supplies the current time, swappable for tests.
	now func() time.Time
}

// ClientOption is a configuration option for the Alpha Vantage client.
type ClientOption func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout bounds each series fetch with a per-request deadline.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithLookback sets how far back fetched rows are kept.
func WithLookback(lookback time.Duration) ClientOption {
	return func(c *Client) {
		c.lookback = lookback
	}
}

// WithClock sets the time source used to compute the lookback cutoff.
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient creates a new Alpha Vantage API client.
func NewClient(apiKey string, options ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key must not be empty")
	}

	client := &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
		lookback:   defaultLookback,
		now:        time.Now,
	}
	for _, option := range options {
		option(client)
	}
	return client, nil
}

// GetDailySeries fetches the daily price series for a symbol in CSV form,
// keeping only rows dated within the lookback window. The cutoff boundary
// itself is kept. A row that fails to decode aborts the whole fetch.
func (c *Client) GetDailySeries(ctx context.Context, symbol string) ([]*financialdata.FinancialData, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	params := url.Values{}
	params.Set("function", "TIME_SERIES_DAILY_ADJUSTED")
	params.Set("apikey", c.apiKey)
	params.Set("symbol", symbol)
	params.Set("datatype", "csv")

	endpoint := fmt.Sprintf("%s/query?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, errors.TracerFromError(fmt.Errorf("creating request: %w", err)).WithCode(errors.FetchTransportError)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.TracerFromError(fmt.Errorf("performing request: %w", err)).WithCode(errors.FetchTransportError)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, errors.NewTracer(fmt.Sprintf("unexpected status code: %d", res.StatusCode)).WithCode(errors.FetchTransportError)
	}

	cutoff := util.Midnight(c.now().Add(-c.lookback))
	rows, err := decodeDailySeries(res.Body, symbol, cutoff)
	if err != nil {
		return nil, errors.TracerFromError(fmt.Errorf("decoding daily series: %w", err)).WithCode(errors.FetchDecodeError)
	}

	return rows, nil
}
