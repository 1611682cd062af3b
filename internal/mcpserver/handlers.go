package mcpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/john14759/SC4052-cloud-assignments/internal/pipeline"
	"github.com/john14759/SC4052-cloud-assignments/internal/prompt"
	"github.com/john14759/SC4052-cloud-assignments/internal/search"
)

// makeSearchHandler creates the search_code tool handler. It builds the
// enhanced query from the free text and qualifiers, then issues exactly one
// code-search request.
func makeSearchHandler(searcher pipeline.Searcher) func(
	context.Context, *mcp.CallToolRequest, SearchCodeInput,
) (*mcp.CallToolResult, SearchCodeOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchCodeInput) (
		*mcp.CallToolResult, SearchCodeOutput, error,
	) {
		filters := search.Filters{
			Extension:    input.Extension,
			Path:         input.Path,
			MinRepoSize:  input.MinRepoSize,
			MinFollowers: input.MinFollowers,
			Language:     input.Language,
		}
		if input.PushedAfter != "" {
			date, err := time.Parse("2006-01-02", input.PushedAfter)
			if err != nil {
				return nil, SearchCodeOutput{}, fmt.Errorf("invalid pushed_after date %q: %w", input.PushedAfter, err)
			}
			filters.PushedAfter = &date
		}

		query := search.BuildQuery(input.Query, filters)
		result, err := searcher.Search(ctx, query)
		if err != nil {
			return nil, SearchCodeOutput{}, fmt.Errorf("search failed: %w", err)
		}

		items := make([]SearchCodeItem, 0, len(result.Items))
		for _, item := range result.Items {
			items = append(items, SearchCodeItem{
				Name:       item.Name,
				Repository: item.Repository.FullName,
				HTMLURL:    item.HTMLURL,
			})
		}

		return nil, SearchCodeOutput{
			Query:      query,
			TotalCount: result.TotalCount,
			Items:      items,
		}, nil
	}
}

// makeAnalyzeHandler creates the analyze_code tool handler.
/// Analysis flow: fetch the bounded raw snippet, select the preset, run one
// completion. An explicit analysis_type/complexity applies to this call only
// and leaves the configured defaults untouched.
func makeAnalyzeHandler(
	fetcher pipeline.ContentFetcher,
	analyzer pipeline.SnippetAnalyzer,
	catalog *prompt.Catalog,
	sel *selection,
) func(context.Context, *mcp.CallToolRequest, AnalyzeCodeInput) (*mcp.CallToolResult, AnalyzeCodeOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeCodeInput) (
		*mcp.CallToolResult, AnalyzeCodeOutput, error,
	) {
		t, level := sel.get()
		if input.AnalysisType != "" {
			t = prompt.ParseAnalysisType(input.AnalysisType)
		}
		if input.Complexity != "" {
			level = prompt.ParseComplexity(input.Complexity)
		}

		snippet, err := fetcher.Fetch(ctx, input.HTMLURL)
		if err != nil {
			return nil, AnalyzeCodeOutput{}, fmt.Errorf("content fetch failed: %w", err)
		}

		promptText := catalog.Get(t, level)
		analysis, err := analyzer.Analyze(ctx, snippet, promptText)
		if err != nil {
			return nil, AnalyzeCodeOutput{}, fmt.Errorf("analysis failed: %w", err)
		}

		return nil, AnalyzeCodeOutput{
			Snippet:      snippet,
			Analysis:     analysis,
			AnalysisType: string(t),
			Complexity:   string(level),
		}, nil
	}
}

// makeConfigureHandler creates the configure_analysis tool handler, the only
// place the default selection changes.
func makeConfigureHandler(sel *selection) func(
	context.Context, *mcp.CallToolRequest, ConfigureAnalysisInput,
) (*mcp.CallToolResult, ConfigureAnalysisOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ConfigureAnalysisInput) (
		*mcp.CallToolResult, ConfigureAnalysisOutput, error,
	) {
		t, level := sel.get()
		if input.AnalysisType != "" {
			t = prompt.ParseAnalysisType(input.AnalysisType)
		}
		if input.Complexity != "" {
			level = prompt.ParseComplexity(input.Complexity)
		}
		sel.set(t, level)

		return nil, ConfigureAnalysisOutput{
			AnalysisType: string(t),
			Complexity:   string(level),
		}, nil
	}
}

// makePromptHandler creates the get_prompt tool handler.
func makePromptHandler(catalog *prompt.Catalog) func(
	context.Context, *mcp.CallToolRequest, GetPromptInput,
) (*mcp.CallToolResult, GetPromptOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetPromptInput) (
		*mcp.CallToolResult, GetPromptOutput, error,
	) {
		text := catalog.Get(prompt.ParseAnalysisType(input.AnalysisType), prompt.ParseComplexity(input.Complexity))
		return nil, GetPromptOutput{Prompt: text}, nil
	}
}
