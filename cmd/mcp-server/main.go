// Package main provides the MCP server entry point for the code analyzer.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/john14759/SC4052-cloud-assignments/internal/config"
	"github.com/john14759/SC4052-cloud-assignments/internal/fetch"
	"github.com/john14759/SC4052-cloud-assignments/internal/llm"
	"github.com/john14759/SC4052-cloud-assignments/internal/mcpserver"
	"github.com/john14759/SC4052-cloud-assignments/internal/prompt"
	"github.com/john14759/SC4052-cloud-assignments/internal/search"
)

func main() {
	// Load .env file if present (local development), ignore if missing
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Create context that cancels on SIGTERM/SIGINT
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	analyzer, err := llm.NewAnalyzer(cfg.Azure)
	if err != nil {
		log.Fatalf("failed to create analyzer: %v", err)
	}

	server := mcpserver.NewServer(&mcpserver.Config{
		Searcher: search.NewClient(cfg.GitHub.SearchURL, cfg.GitHub.Token),
		Fetcher:  fetch.NewFetcher(),
		Analyzer: analyzer,
		Catalog:  prompt.NewCatalog(),
	})

	log.Println("Starting GitHub Code Analyzer MCP Server (stdio mode)...")
	if err := server.Run(ctx); err != nil {
		log.Printf("server error: %v", err)
		os.Exit(1)
	}
}
