// Package news is a thin pass-through client for a NewsAPI-style headlines
// endpoint. Results are forwarded as-is: no caching, no processing.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const httpTimeout = 15 * time.Second

// Article is a single headline as served by the upstream API.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Client fetches top headlines.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// NewClient constructs a Client for the given NewsAPI-compatible base URL.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: httpTimeout},
	}
}

type headlinesResponse struct {
	Status   string    `json:"status"`
	Articles []Article `json:"articles"`
}

// TopHeadlines returns the current headline list.
func (c *Client) TopHeadlines(ctx context.Context) ([]Article, error) {
	params := url.Values{}
	params.Set("country", "us")
	params.Set("apiKey", c.apiKey)

	reqURL := c.baseURL + "/v2/top-headlines?" + params.Encode()
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
		return nil, fmt.Errorf("news API returned %d", resp.StatusCode)
	}

	var hr headlinesResponse
	if err := json.Unmarshal(body, &hr); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if hr.Status != "ok" {
		return nil, fmt.Errorf("news API status %q", hr.Status)
	}
	return hr.Articles, nil
}
