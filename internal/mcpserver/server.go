package mcpserver

import (
	"context"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/john14759/SC4052-cloud-assignments/internal/pipeline"
	"github.com/john14759/SC4052-cloud-assignments/internal/prompt"
)

// selection holds the server's default analysis preset. It changes only via
// the configure_analysis tool; tool handlers may be dispatched concurrently,
// so access is mutex-guarded.
type selection struct {
	mu    sync.Mutex
	atype prompt.AnalysisType
	level prompt.Complexity
}

func newSelection() *selection {
	return &selection{atype: prompt.Documentation, level: prompt.Basic}
}

func (s *selection) get() (prompt.AnalysisType, prompt.Complexity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.atype, s.level
}

func (s *selection) set(t prompt.AnalysisType, level prompt.Complexity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.atype = t
	s.level = level
}

// Server wraps the MCP server with its dependencies.
type Server struct {
	server    *mcp.Server
	selection *selection
}

// Config holds server dependencies.
type Config struct {
	Searcher pipeline.Searcher
	Fetcher  pipeline.ContentFetcher
	Analyzer pipeline.SnippetAnalyzer
	Catalog  *prompt.Catalog
}

// NewServer creates a configured MCP server with tools registered.
func NewServer(cfg *Config) *Server {
	impl := &mcp.Implementation{
		Name:    "github-code-analyzer",
		Version: "v0.1.0",
	}

	server := mcp.NewServer(impl, nil)
	sel := newSelection()

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_code",
		Description: "Search GitHub code with optional qualifiers (extension, path, repo size, owner followers, pushed date, language). Returns the first page of matching files; use analyze_code on a returned html_url.",
	}, makeSearchHandler(cfg.Searcher))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_code",
		Description: "Fetch a GitHub file's raw content and run the selected analysis prompt over it. Produces generated documentation or an AI-generation assessment. An analysis_type/complexity given here applies to this call only; use configure_analysis to change the defaults.",
	}, makeAnalyzeHandler(cfg.Fetcher, cfg.Analyzer, cfg.Catalog, sel))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "configure_analysis",
		Description: "Set the default analysis type and complexity used by analyze_code when a call does not specify them.",
	}, makeConfigureHandler(sel))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_prompt",
		Description: "Return the preset instruction text for an analysis type and complexity tier.",
	}, makePromptHandler(cfg.Catalog))

	return &Server{
		server:    server,
		selection: sel,
	}
}

// Run starts the server with stdio transport (blocks until client disconnects).
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
