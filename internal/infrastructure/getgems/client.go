package getgems

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/Tore489/getgems-bot/internal/domain"
	"github.com/Tore489/getgems-bot/internal/domain/entity"
	"github.com/Tore489/getgems-bot/pkg/contextx"
	"github.com/Tore489/getgems-bot/pkg/errcodes"
	"github.com/Tore489/getgems-bot/pkg/httpx"
	"github.com/Tore489/getgems-bot/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	onSalePath = "/v1/nfts/offchain/on-sale/gifts"

	defaultTimeout = 10 * time.Second

	// Upstream error pages can be huge; keep only a snippet for the error.
	maxErrorBodyLen = 200

	httpDumpMaxLen = 2048
)

// Client talks to the Getgems public API. The underlying *http.Client is
// created lazily on first use and shared by all requests; http.Transport
// handles concurrent connection reuse on its own.
type Client struct {
	baseURL   string
	apiKey    string
	timeout   time.Duration
	httpDebug bool

	mu         sync.Mutex
	httpClient *http.Client
}

type Option func(*Client)

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPDebug dumps every request and response into the log, with
// credentials masked.
func WithHTTPDebug(enabled bool) Option {
	return func(c *Client) {
		c.httpDebug = enabled
	}
}

func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		timeout: defaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// client returns the shared HTTP client, establishing it on first use.
func (c *Client) client() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.httpClient == nil {
		var transport http.RoundTripper = http.DefaultTransport

		if c.httpDebug {
			transport = httpx.NewLoggingRoundTripper(
				transport,
				httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
				httpx.WithLogFieldMaxLen(httpDumpMaxLen),
			)
		}

		c.httpClient = &http.Client{
			Transport: httpx.NewAPIKeyRoundTripper(transport, c.apiKey),
		}
	}

	return c.httpClient
}

// Close drops idle upstream connections. Safe to call at any time; the next
// request re-establishes the transport transparently.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
		c.httpClient = nil
	}
}

type onSaleResponse struct {
	Response struct {
		Items []entity.Listing `json:"items"`
	} `json:"response"`
}

// OnSale fetches the current batch of on-sale gift listings. A missing or
// malformed items list degrades to an empty batch rather than failing.
func (c *Client) OnSale(ctx context.Context) ([]entity.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+onSalePath, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := c.client().Do(req)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.UpstreamUnavailable, "getgems request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, newFetchError(resp)
	}

	var envelope onSaleResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		logger(ctx).Warn("malformed getgems payload, treating as empty", logx.Error(err))
		return []entity.Listing{}, nil
	}

	if envelope.Response.Items == nil {
		return []entity.Listing{}, nil
	}

	return envelope.Response.Items, nil
}

// FetchError is a non-success upstream response. The poll loop recovers
// from it by skipping the cycle.
type FetchError struct {
	Status int
	Body   string
}

func newFetchError(resp *http.Response) *FetchError {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen)) //nolint:errcheck

	return &FetchError{
		Status: resp.StatusCode,
		Body:   strings.TrimSpace(string(snippet)),
	}
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("getgems %d: %s", e.Status, e.Body)
}
