// Package github provides repository metadata lookups used to enrich
// search results with context about the owning repository.
package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v81/github"
)

// Client wraps the GitHub API client for repository lookups.
type Client struct {
	*github.Client
}

// NewClient creates a GitHub client authenticated with the given token.
// An empty token yields an unauthenticated client (60 requests/hour).
func NewClient(token string) *Client {
	ghClient := github.NewClient(nil)
	if token != "" {
		ghClient = ghClient.WithAuthToken(token)
	}
	return &Client{Client: ghClient}
}

// RepoDetails is the subset of repository metadata shown alongside results.
type RepoDetails struct {
	FullName    string
	Description string
	Language    string
	Stars       int
	SizeKB      int
}

// ParseFullName splits "owner/repo" into its parts.
func ParseFullName(fullName string) (string, string, error) {
	parts := strings.Split(fullName, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository name: %s (expected owner/repo)", fullName)
	}
	return parts[0], parts[1], nil
}

// GetDetails fetches metadata for the repository named "owner/repo".
func (c *Client) GetDetails(ctx context.Context, fullName string) (*RepoDetails, error) {
	owner, repo, err := ParseFullName(fullName)
	if err != nil {
		return nil, err
	}

	r, _, err := c.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("get repository %s: %w", fullName, err)
	}

	return &RepoDetails{
		FullName:    r.GetFullName(),
		Description: r.GetDescription(),
		Language:    r.GetLanguage(),
		Stars:       r.GetStargazersCount(),
		SizeKB:      r.GetSize(),
	}, nil
}
