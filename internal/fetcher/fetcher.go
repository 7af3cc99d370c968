// Package fetcher retrieves paginated product data from the OpenFoodFacts
// search API.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/maicaalmonte/nutricalculator/internal/model"
)

const (
	defaultBaseURL = "https://world.openfoodfacts.org"
	searchPath     = "/cgi/search.pl"
	httpTimeout    = 15 * time.Second

	// DefaultPageDelay is the fixed pause between consecutive page requests,
	// keeping us inside the public API's request budget.
	DefaultPageDelay = time.Second
)

// Client fetches product pages from OpenFoodFacts with a shared HTTP client.
type Client struct {
	baseURL   string
	pageDelay time.Duration
	httpc     *http.Client
	log       *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithPageDelay overrides the inter-page delay.
func WithPageDelay(d time.Duration) Option {
	return func(c *Client) { c.pageDelay = d }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// New constructs a Client.
func New(log *zap.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:   defaultBaseURL,
		pageDelay: DefaultPageDelay,
		httpc:     &http.Client{Timeout: httpTimeout},
		log:       log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// searchResponse mirrors the top-level OpenFoodFacts search response.
type searchResponse struct {
	Products []model.RawProduct `json:"products"`
	Count    int                `json:"count"`
}

// Fetch retrieves up to maxPages pages of pageSize products each, starting at
// page 1 and preserving source order. It stops early when a page comes back
// short — the signal that the dataset is exhausted.
//
// On a page error Fetch stops and returns everything accumulated so far along
// with the error, so callers can tell "exhausted" from "failed mid-fetch".
// The partial result is always usable.
func (c *Client) Fetch(ctx context.Context, pageSize, maxPages int) ([]model.RawProduct, error) {
	var products []model.RawProduct

	for page := 1; page <= maxPages; page++ {
		batch, err := c.fetchPage(ctx, page, pageSize)
		if err != nil {
			c.log.Warn("page fetch failed, returning partial result",
				zap.Int("page", page),
				zap.Int("accumulated", len(products)),
				zap.Error(err))
			return products, fmt.Errorf("page %d: %w", page, err)
		}
		products = append(products, batch...)
		if len(batch) < pageSize {
			break // last page
		}
		if page < maxPages {
			if err := c.wait(ctx); err != nil {
				return products, err
			}
		}
	}

	return products, nil
}

// wait blocks for the inter-page delay, aborting early on context cancel.
func (c *Client) wait(ctx context.Context) error {
	if c.pageDelay <= 0 {
		return nil
	}
	t := time.NewTimer(c.pageDelay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) fetchPage(ctx context.Context, page, pageSize int) ([]model.RawProduct, error) {
	params := url.Values{}
	params.Set("search_terms", "")
	params.Set("search_simple", "1")
	params.Set("action", "process")
	params.Set("json", "true")
	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(pageSize))

	reqURL := c.baseURL + searchPath + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openfoodfacts returned %d", resp.StatusCode)
	}

	var apiResp searchResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	return apiResp.Products, nil
}
