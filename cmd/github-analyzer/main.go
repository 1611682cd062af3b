// Package main provides the GitHub code analyzer CLI.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/john14759/SC4052-cloud-assignments/internal/config"
	"github.com/john14759/SC4052-cloud-assignments/internal/fetch"
	"github.com/john14759/SC4052-cloud-assignments/internal/github"
	"github.com/john14759/SC4052-cloud-assignments/internal/llm"
	"github.com/john14759/SC4052-cloud-assignments/internal/pipeline"
	"github.com/john14759/SC4052-cloud-assignments/internal/search"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "github-analyzer",
	Short: "GitHub code search and analysis tool",
	Long: `Search GitHub's code-search API with compound qualifiers, fetch the raw
content of matching files and run an LLM prompt over each snippet to produce
generated documentation or an AI-generated-code assessment.

Environment variables (required unless noted):
  GITHUB_API_URL                GitHub code-search endpoint
  GITHUB_API_KEY                GitHub bearer token
  AZURE_OPENAI_ENDPOINT         Azure OpenAI endpoint
  AZURE_OPENAI_APIKEY           Azure OpenAI API key
  AZURE_OPENAI_DEPLOYMENT_NAME  Chat deployment name
  AZURE_OPENAI_API_VERSION      Azure OpenAI API version
  AZURE_OPENAI_MODEL_NAME       Model name (optional, informational)`,
}

func init() {
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newPromptsCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func main() {
	// Load .env file if present (local development), ignore if missing
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("github-analyzer version %s\n", version)
		},
	}
}

// newPipeline builds the full search → fetch → analyze pipeline from the
// environment configuration.
func newPipeline(cfg *config.Config) (*pipeline.Pipeline, error) {
	analyzer, err := llm.NewAnalyzer(cfg.Azure)
	if err != nil {
		return nil, fmt.Errorf("create analyzer: %w", err)
	}

	return pipeline.NewPipeline(
		search.NewClient(cfg.GitHub.SearchURL, cfg.GitHub.Token),
		fetch.NewFetcher(),
		analyzer,
		github.NewClient(cfg.GitHub.Token),
		nil,
	), nil
}
