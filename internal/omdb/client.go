package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"boxoffice/internal/logging"
	"boxoffice/internal/services"
)

// Lookup defines the OMDb operations the CLI depends on.
type Lookup interface {
	Search(ctx context.Context, query, apiKey string, opts SearchOptions) []SearchResult
	GetDetails(ctx context.Context, externalID, apiKey string) *DetailRecord
}

// Client provides access to the OMDb API. It holds no per-request state and
// is safe for concurrent use.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	logger      *slog.Logger
	maxAttempts int
	backoff     time.Duration
}

var _ Lookup = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger sets the logger used for failure reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMaxAttempts overrides how many requests a detail lookup may issue.
// Values below one are ignored.
func WithMaxAttempts(attempts int) Option {
	return func(c *Client) {
		if attempts >= 1 {
			c.maxAttempts = attempts
		}
	}
}

// WithRetryBackoff sets a fixed pause between detail attempts. The default
// retries immediately.
func WithRetryBackoff(backoff time.Duration) Option {
	return func(c *Client) {
		if backoff > 0 {
			c.backoff = backoff
		}
	}
}

// New creates an OMDb client. The API key is supplied per call so a client
// can be built before the user has configured one.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, services.Wrap(services.ErrConfiguration, "omdb", "new client", "base url required", nil)
	}
	if parsed, err := url.Parse(baseURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, services.Wrap(services.ErrConfiguration, "omdb", "new client", fmt.Sprintf("invalid base url %q", baseURL), err)
	}
	client := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		logger:      logging.NewNop(),
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(client)
	}
	client.logger = logging.NewComponentLogger(client.logger, "omdb")
	return client, nil
}

// get issues one GET against the API root and decodes the JSON body into
// target. Every failure is marked transient.
func (c *Client) get(ctx context.Context, operation string, params url.Values, target any) error {
	endpoint, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "omdb", operation, "parse omdb url", err)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return services.Wrap(services.ErrTransient, "omdb", operation, "build request", redactURLError(err))
	}
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return services.Wrap(services.ErrTransient, "omdb", operation,
			fmt.Sprintf("execute request (latency=%v)", latency), redactURLError(err))
	}
	defer resp.Body.Close()

	logging.WithContext(ctx, c.logger).Debug("omdb request complete",
		logging.String("operation", operation),
		logging.Int("status", resp.StatusCode),
		logging.Duration("latency", latency),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return services.Wrap(services.ErrTransient, "omdb", operation,
			fmt.Sprintf("omdb returned %d (latency=%v)", resp.StatusCode, latency), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return services.Wrap(services.ErrTransient, "omdb", operation, "decode response", err)
	}
	return nil
}

// redactURLError hides the api key that net/http echoes back in *url.Error.
func redactURLError(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	parsed, parseErr := url.Parse(urlErr.URL)
	if parseErr != nil {
		urlErr.URL = "(redacted)"
		return err
	}
	query := parsed.Query()
	if query.Has("apikey") {
		query.Set("apikey", "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	urlErr.URL = parsed.String()
	return err
}
