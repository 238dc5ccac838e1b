// Package catalog fetches the podcast catalog from the remote API.
// The catalog is fetched once at startup; there is no retry loop and no
// caching here. Failures are reported to the caller, who owns the
// loading/error/ready presentation.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/podgrid/podgrid/internal/config"
	"github.com/podgrid/podgrid/internal/models"
	"github.com/podgrid/podgrid/internal/util"
)

var (
	// ErrRateLimited indicates the API rejected the request for rate
	// limiting reasons.
	ErrRateLimited = errors.New("catalog api rate limit exceeded")

	// ErrBadStatus indicates the API answered with an unexpected status.
	ErrBadStatus = errors.New("unexpected response from catalog api")
)

const defaultUserAgent = "podgrid/1.0 (+https://github.com/podgrid/podgrid)"

// showsPath is the endpoint returning the full podcast list.
const showsPath = "/shows"

// Loader is the data-source collaborator the TUI consumes: one
// operation, fetch everything. Tests substitute a stub.
type Loader interface {
	Fetch(ctx context.Context) ([]models.Podcast, error)
}

// Client is a rate-limited HTTP client for the catalog API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	userAgent  string
	sessionID  string
}

// NewClient creates a catalog client from the API configuration.
func NewClient(cfg config.APIConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = config.Default().API.BaseURL
	}
	if cfg.TimeoutSeconds < 1 {
		cfg.TimeoutSeconds = 10
	}
	if cfg.RequestsPerMinute < 1 {
		cfg.RequestsPerMinute = 60
	}

	return &Client{
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), 1),
		baseURL:    cfg.BaseURL,
		userAgent:  defaultUserAgent,
		sessionID:  util.NewSessionID(),
	}
}

// SessionID returns the identifier attached to this client's requests.
func (c *Client) SessionID() string {
	return c.sessionID
}

// Fetch downloads the full podcast list. The wire format is a JSON
// array of show objects with an RFC3339 updated timestamp.
func (c *Client) Fetch(ctx context.Context) ([]models.Podcast, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+showsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Session-ID", c.sessionID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}

	var podcasts []models.Podcast
	if err := json.NewDecoder(resp.Body).Decode(&podcasts); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	return podcasts, nil
}
