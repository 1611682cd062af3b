// Package fetch retrieves raw file content for GitHub blob URLs.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SnippetLimit is the maximum number of bytes of a file returned as a snippet.
const SnippetLimit = 2500

// Fetcher retrieves a bounded prefix of a file's raw text. Requests are
// unauthenticated; raw.githubusercontent.com serves public content without auth.
type Fetcher struct {
	http *http.Client
}

// NewFetcher creates a raw content fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// RawURL converts a GitHub blob URL to its raw-content URL:
// the github.com host becomes raw.githubusercontent.com and the /blob path
// segment is dropped. The marker sits between the repository name and the
// ref, so it is removed by segment position; owners or repositories whose
// names start with "blob" stay intact.
func RawURL(htmlURL string) string {
	raw := strings.Replace(htmlURL, "https://github.com", "https://raw.githubusercontent.com", 1)

	// scheme + empty + host + owner + repo + marker + remainder
	const segments = 7
	parts := strings.SplitN(raw, "/", segments)
	if len(parts) == segments && parts[5] == "blob" {
		return strings.Join(append(parts[:5], parts[6]), "/")
	}
	return raw
}

// Fetch downloads the file behind a blob HTML URL and returns up to
// SnippetLimit bytes of its content. Any non-200 status is an error.
func (f *Fetcher) Fetch(ctx context.Context, htmlURL string) (string, error) {
	rawURL := RawURL(htmlURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create fetch request: %w", err)
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch raw content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("raw content fetch returned HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, SnippetLimit))
	if err != nil {
		return "", fmt.Errorf("read raw content: %w", err)
	}

	return string(body), nil
}
