package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/robert-malhotra/reach-tile-matcher/internal/stac"
)

const (
	// DefaultBaseURL is the CMR-STAC endpoint for the LP DAAC cloud provider,
	// which hosts the HLS collections.
	DefaultBaseURL = "https://cmr.earthdata.nasa.gov/stac/LPCLOUD"

	// DefaultPageSize is the default number of items requested per page.
	DefaultPageSize = 250

	// MaxPageSize is the largest page size CMR-STAC accepts.
	MaxPageSize = 2000
)

// Client handles communication with a STAC API item search endpoint.
type Client struct {
	baseURL    string
	pageSize   int
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a new STAC API client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		pageSize: DefaultPageSize,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter: rate.NewLimiter(rate.Inf, 1),
		logger:  slog.Default(),
	}
}

// WithLogger sets a custom logger for the client.
func (c *Client) WithLogger(logger *slog.Logger) *Client {
	c.logger = logger
	return c
}

// WithPageSize sets the number of items requested per page.
func (c *Client) WithPageSize(size int) *Client {
	if size > 0 && size <= MaxPageSize {
		c.pageSize = size
	}
	return c
}

// WithRateLimit spaces requests at least interval apart. Zero disables the limit.
func (c *Client) WithRateLimit(interval time.Duration) *Client {
	if interval <= 0 {
		c.limiter = rate.NewLimiter(rate.Inf, 1)
	} else {
		c.limiter = rate.NewLimiter(rate.Every(interval), 1)
	}
	return c
}

// Search performs an item search and follows "next" links until the last
// page, returning every item in catalog order.
func (c *Client) Search(ctx context.Context, params *SearchParams) ([]*stac.Item, error) {
	req, err := params.toRequest(c.pageSize)
	if err != nil {
		return nil, fmt.Errorf("invalid search parameters: %w", err)
	}
	body, err := req.Body()
	if err != nil {
		return nil, err
	}

	page, err := c.fetch(ctx, http.MethodPost, c.baseURL+"/search", body)
	if err != nil {
		return nil, err
	}

	items := page.Features
	pages := 1
	seen := make(map[string]bool)

	for next := page.NextLink(); next != nil; next = page.NextLink() {
		method, nextBody, err := nextRequest(next, body)
		if err != nil {
			return nil, err
		}

		key := method + " " + next.Href + " " + string(nextBody)
		if seen[key] {
			return nil, fmt.Errorf("%w: pagination loop at %s", ErrExternalService, next.Href)
		}
		seen[key] = true

		page, err = c.fetch(ctx, method, next.Href, nextBody)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Features...)
		pages++
	}

	c.logger.DebugContext(ctx, "catalog search completed",
		slog.String("intersects", params.wkt()),
		slog.String("datetime", params.Datetime),
		slog.Int("items", len(items)),
		slog.Int("pages", pages),
	)

	return items, nil
}

// fetch requests one search page.
func (c *Client) fetch(ctx context.Context, method, url string, body []byte) (*stac.ItemCollection, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	c.logger.DebugContext(ctx, "executing catalog search",
		slog.String("method", method),
		slog.String("url", url),
	)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/geo+json")
	req.Header.Set("User-Agent", "reach-tile-matcher/1.0")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "catalog request failed",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: request failed: %w", ErrExternalService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.ErrorContext(ctx, "catalog returned non-200 status",
			slog.Int("status_code", resp.StatusCode),
			slog.String("response_body", string(respBody)),
		)
		return nil, fmt.Errorf("%w: status %d: %s", ErrExternalService, resp.StatusCode, string(respBody))
	}

	var page stac.ItemCollection
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		c.logger.ErrorContext(ctx, "failed to decode catalog response",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: failed to decode search page: %w", ErrExternalService, err)
	}

	return &page, nil
}

// nextRequest builds the method and body for a "next" link. POST links carry
// their own body, optionally merged into the original request body.
func nextRequest(link *stac.Link, original []byte) (string, []byte, error) {
	if !strings.EqualFold(link.Method, http.MethodPost) {
		return http.MethodGet, nil, nil
	}

	if link.Body == nil {
		return http.MethodPost, original, nil
	}

	merge, _ := link.AdditionalFields["merge"].(bool)
	if !merge {
		body, err := json.Marshal(link.Body)
		if err != nil {
			return "", nil, fmt.Errorf("failed to encode next page body: %w", err)
		}
		return http.MethodPost, body, nil
	}

	fields := map[string]any{}
	if err := json.Unmarshal(original, &fields); err != nil {
		return "", nil, fmt.Errorf("failed to decode original search body: %w", err)
	}
	overrides, ok := link.Body.(map[string]any)
	if !ok {
		return "", nil, fmt.Errorf("%w: next link body is %T, want object", ErrExternalService, link.Body)
	}
	for k, v := range overrides {
		fields[k] = v
	}
	body, err := json.Marshal(fields)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode next page body: %w", err)
	}
	return http.MethodPost, body, nil
}
