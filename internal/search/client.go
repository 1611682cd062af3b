// Package search issues code-search queries against the GitHub search API.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// API headers required by the GitHub code-search endpoint.
const (
	acceptHeader = "application/vnd.github+json"
	apiVersion   = "2022-11-28"
)

// Result is a parsed code-search response.
type Result struct {
	TotalCount int    `json:"total_count"`
	Items      []Item `json:"items"`
}

// Item is a single matching file.
type Item struct {
	Name       string     `json:"name"`
	HTMLURL    string     `json:"html_url"`
	Repository Repository `json:"repository"`
}

// Repository identifies the repository owning a matched file.
type Repository struct {
	FullName string `json:"full_name"`
}

// Client performs authenticated code searches. Exactly one request is issued
// per Search call; pagination and retry are intentionally absent.
type Client struct {
	searchURL string
	token     string
	http      *http.Client
}

// NewClient creates a search client for the given code-search endpoint.
func NewClient(searchURL, token string) *Client {
	return &Client{
		searchURL: searchURL,
		token:     token,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

// Search runs a single code-search query and returns the parsed response.
// Any non-2xx status or transport error is returned as an error with no items.
func (c *Client) Search(ctx context.Context, query string) (*Result, error) {
	u, err := url.Parse(c.searchURL)
	if err != nil {
		return nil, fmt.Errorf("invalid search URL: %w", err)
	}
	q := u.Query()
	q.Set("q", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("github search returned HTTP %d: %s", resp.StatusCode, string(body))
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	return &result, nil
}
