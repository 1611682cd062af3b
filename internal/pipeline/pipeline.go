// Package pipeline orchestrates the search → fetch → analyze flow.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/john14759/SC4052-cloud-assignments/internal/github"
	"github.com/john14759/SC4052-cloud-assignments/internal/search"
)

// MaxItems is how many search results are fetched and analyzed per run.
const MaxItems = 3

// Searcher runs a code-search query.
type Searcher interface {
	Search(ctx context.Context, query string) (*search.Result, error)
}

// ContentFetcher retrieves a snippet of raw file content for a blob URL.
type ContentFetcher interface {
	Fetch(ctx context.Context, htmlURL string) (string, error)
}

// SnippetAnalyzer runs an instruction prompt over a snippet.
type SnippetAnalyzer interface {
	Analyze(ctx context.Context, snippet, prompt string) (string, error)
}

// RepoLookup fetches repository metadata for display. Optional.
type RepoLookup interface {
	GetDetails(ctx context.Context, fullName string) (*github.RepoDetails, error)
}

// ItemResult holds the outcome for one search result item. Exactly one of
// Snippet/FetchErr is set, and when Snippet is set, one of Analysis/AnalyzeErr.
type ItemResult struct {
	FileName   string
	Repository string
	HTMLURL    string
	Snippet    string
	Analysis   string
	FetchErr   string
	AnalyzeErr string
	RepoInfo   *github.RepoDetails
}

// Failed reports whether the item produced neither snippet nor analysis.
func (r ItemResult) Failed() bool {
	return r.FetchErr != "" || r.AnalyzeErr != ""
}

// Report is the result of one search-analyze cycle.
type Report struct {
	Query      string
	TotalCount int
	Items      []ItemResult
	Duration   time.Duration
}

// Pipeline wires the search client, content fetcher and analyzer together.
// Items are processed strictly one at a time; an individual item's failure is
// recorded on that item and never aborts the batch.
type Pipeline struct {
	searcher Searcher
	fetcher  ContentFetcher
	analyzer SnippetAnalyzer
	repos    RepoLookup
	logger   *slog.Logger
}

// NewPipeline creates a pipeline. repos may be nil to skip repository
// enrichment; logger may be nil for the default logger.
func NewPipeline(searcher Searcher, fetcher ContentFetcher, analyzer SnippetAnalyzer, repos RepoLookup, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		searcher: searcher,
		fetcher:  fetcher,
		analyzer: analyzer,
		repos:    repos,
		logger:   logger,
	}
}

// Run executes one full cycle for the session: build the enhanced query,
// search once, then fetch and analyze up to MaxItems results with the
// session's selected prompt. The report is stored on the session.
func (p *Pipeline) Run(ctx context.Context, sess *Session, query string, filters search.Filters) (*Report, error) {
	start := time.Now()

	enhanced := search.BuildQuery(query, filters)
	p.logger.Info("Searching GitHub", "session", sess.ID, "query", enhanced)

	result, err := p.searcher.Search(ctx, enhanced)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	report := &Report{
		Query:      enhanced,
		TotalCount: result.TotalCount,
	}

	items := result.Items
	if len(items) > MaxItems {
		items = items[:MaxItems]
	}

	promptText := sess.Prompt()
	for _, item := range items {
		report.Items = append(report.Items, p.processItem(ctx, item, promptText))
	}

	report.Duration = time.Since(start)
	p.logger.Info("Analysis complete",
		"session", sess.ID,
		"total", report.TotalCount,
		"processed", len(report.Items),
		"duration", report.Duration,
	)

	sess.LastReport = report
	return report, nil
}

// processItem runs the fetch → analyze steps for a single search result.
func (p *Pipeline) processItem(ctx context.Context, item search.Item, promptText string) ItemResult {
	res := ItemResult{
		FileName:   item.Name,
		Repository: item.Repository.FullName,
		HTMLURL:    item.HTMLURL,
	}

	if p.repos != nil {
		info, err := p.repos.GetDetails(ctx, item.Repository.FullName)
		if err != nil {
			// Enrichment is best effort; the item still gets analyzed.
			p.logger.Warn("Repository lookup failed", "repo", item.Repository.FullName, "error", err)
		} else {
			res.RepoInfo = info
		}
	}

	snippet, err := p.fetcher.Fetch(ctx, item.HTMLURL)
	if err != nil {
		p.logger.Warn("Content fetch failed", "file", item.Name, "error", err)
		res.FetchErr = err.Error()
		return res
	}
	res.Snippet = snippet

	analysis, err := p.analyzer.Analyze(ctx, snippet, promptText)
	if err != nil {
		p.logger.Warn("Analysis failed", "file", item.Name, "error", err)
		res.AnalyzeErr = err.Error()
		return res
	}
	res.Analysis = analysis

	p.logger.Info("Analyzed file", "file", item.Name, "repo", item.Repository.FullName)
	return res
}
