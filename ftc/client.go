// Package ftc is a typed client for the FIRST Tech Challenge Events API.
//
// Every operation validates its arguments against the API's documented
// parameter rules before any request is built, so illegal option
// combinations fail without touching the network. Responses are returned
// as raw JSON for callers to decode into their own types.
package ftc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Prorickey/first/season"
)

const (
	defaultBaseURL = "https://ftc-api.firstinspires.org"
	apiVersion     = "v2.0"

	defaultTimeout = 30 * time.Second
)

// Client talks to the FTC Events API for a single season. It is immutable
// after construction and safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	season     season.Season
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a Client during construction.
type Option func(*Client)

// WithSeason selects the season the client queries. The default is the
// most recent supported season.
func WithSeason(s season.Season) Option {
	return func(c *Client) {
		c.season = s
	}
}

// WithBaseURL overrides the API host, mainly for testing.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the request timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client authenticating with token, as produced by
// CreateToken. The token is required; the season defaults to the latest
// supported one and must be a registry member when supplied.
func NewClient(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, &ConfigurationError{Field: "token"}
	}

	client := &Client{
		baseURL:    defaultBaseURL,
		token:      token,
		season:     season.Latest(),
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if !client.season.Valid() {
		return nil, &ConfigurationError{Field: "season"}
	}

	return client, nil
}

// Season returns the season this client was configured with.
func (c *Client) Season() season.Season {
	return c.season
}

// get performs a single authenticated GET against the versioned API.
// path is relative to the version segment; q may be nil.
func (c *Client) get(ctx context.Context, path string, q *query) (json.RawMessage, error) {
	requestURL := fmt.Sprintf("%s/%s%s", c.baseURL, apiVersion, path)
	if !q.Empty() {
		requestURL += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Basic "+c.token)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("url", requestURL).Msg("Requesting FTC Events API")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return json.RawMessage(body), nil
}

// statusText extracts the reason phrase from the response status line,
// falling back to the standard text for the code.
func statusText(resp *http.Response) string {
	prefix := fmt.Sprintf("%d ", resp.StatusCode)
	if text := strings.TrimPrefix(resp.Status, prefix); text != "" && text != resp.Status {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
