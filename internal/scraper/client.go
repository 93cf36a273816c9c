// Package scraper composes platform search strings and talks to the external
// scraping collaborator over HTTP.
package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jonesrussell/gigfeed/internal/config"
	"github.com/jonesrussell/gigfeed/internal/domain"
)

// maxErrorBodyBytes limits how much of a collaborator error body is read
// back into error messages.
const maxErrorBodyBytes = 4 * 1024

// Client is an HTTP client for the scrape collaborator. The collaborator
// exposes a single search endpoint returning a JSON array of raw records;
// any failure is returned to the caller, which absorbs it into the fallback
// path rather than propagating it.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new scraper client from configuration.
func NewClient(cfg *config.ScraperConfig) *Client {
	base := strings.TrimRight(cfg.URL, "/")
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}

	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Search runs the composed search string against the collaborator, bounded
// by limit. The collaborator returns records in chronological-descending
// order; that order is preserved. A single attempt, no retries.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]domain.RawRecord, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&limit=%s",
		c.baseURL, url.QueryEscape(query), strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build scrape request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scrape request failed: %w", err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodyBytes))
		return nil, fmt.Errorf("scraper returned error [%d]: %s", res.StatusCode, string(body))
	}

	var records []domain.RawRecord
	if decodeErr := json.NewDecoder(res.Body).Decode(&records); decodeErr != nil {
		return nil, fmt.Errorf("decode scrape response: %w", decodeErr)
	}

	return records, nil
}

// Ping checks collaborator reachability for readiness reporting. The service
// stays usable without it; the fallback dataset covers outages.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return fmt.Errorf("build ping request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("scraper ping failed: %w", err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("scraper unhealthy [%d]", res.StatusCode)
	}

	return nil
}
