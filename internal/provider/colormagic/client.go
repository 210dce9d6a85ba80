package colormagic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"palettehub/internal/config"
	"palettehub/internal/domain"
	"palettehub/internal/port"
)

// Client implements port.PaletteProvider against the ColorMagic HTTP API.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a ColorMagic client from provider config.
func NewClient(cfg *config.ColorMagicConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// NewClientWithBaseURL creates a client pointing at a custom endpoint (for testing).
func NewClientWithBaseURL(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Search queries the catalog. Timeouts and non-2xx responses surface as
// domain.ErrUpstreamUnavailable so callers can retry without risking
// duplicate writes.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]port.RawPalette, error) {
	endpoint := c.baseURL + "/palette/search?" + url.Values{
		"q":     {query},
		"limit": {strconv.Itoa(limit)},
	}.Encode()

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var results []port.RawPalette
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// FetchByID retrieves one catalog entry, returning domain.ErrNotFound when
// the provider does not know the id.
func (c *Client) FetchByID(ctx context.Context, externalID string) (*port.RawPalette, error) {
	endpoint := c.baseURL + "/palette/" + url.PathEscape(externalID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrUpstreamUnavailable, err)
	}

	var raw port.RawPalette
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decoding palette response: %w", err)
	}
	return &raw, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrUpstreamUnavailable, err)
	}
	return body, nil
}
