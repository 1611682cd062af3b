package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/john14759/SC4052-cloud-assignments/internal/config"
	"github.com/john14759/SC4052-cloud-assignments/internal/pipeline"
	"github.com/john14759/SC4052-cloud-assignments/internal/prompt"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		filters    filterFlags
		mode       string
		complexity string
	)

	cmd := &cobra.Command{
		Use:   "analyze [query]",
		Short: "Search GitHub code and analyze the first matches with an LLM",
		Long: `Runs the full pipeline: search GitHub code with the given query and
qualifiers, fetch the raw content of the first matches and run the selected
analysis prompt over each snippet. At most three results are processed, one
at a time; a single item's failure never aborts the batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}

			f, err := filters.toFilters()
			if err != nil {
				return err
			}

			p, err := newPipeline(cfg)
			if err != nil {
				return err
			}

			sess := pipeline.NewSession()
			sess.Select(prompt.ParseAnalysisType(mode), prompt.ParseComplexity(complexity))

			fmt.Printf("Analysis: %s (%s)\n", sess.AnalysisType, sess.Complexity)
			report, err := p.Run(ctx, sess, args[0], f)
			if err != nil {
				return err
			}

			printReport(report)
			return nil
		},
	}

	filters.register(cmd)
	cmd.Flags().StringVar(&mode, "mode", string(prompt.Documentation), "analysis mode: \"Documentation\" or \"AI Detection\"")
	cmd.Flags().StringVar(&complexity, "complexity", string(prompt.Basic), "prompt complexity: basic, detailed or advanced")

	return cmd
}

func printReport(report *pipeline.Report) {
	fmt.Printf("Query: %s\n", report.Query)

	if len(report.Items) == 0 {
		fmt.Println("No results found")
		return
	}
	fmt.Printf("Found %d results, analyzing the first %d\n", report.TotalCount, len(report.Items))

	for i, item := range report.Items {
		fmt.Println()
		fmt.Println(strings.Repeat("=", 72))
		fmt.Printf("%d. %s (Repo: %s)\n", i+1, item.FileName, item.Repository)
		fmt.Printf("   %s\n", item.HTMLURL)
		if info := item.RepoInfo; info != nil {
			fmt.Printf("   %s | stars: %d", info.Language, info.Stars)
			if info.Description != "" {
				fmt.Printf(" | %s", info.Description)
			}
			fmt.Println()
		}

		if item.FetchErr != "" {
			fmt.Printf("\nFailed to retrieve code content: %s\n", item.FetchErr)
			continue
		}

		fmt.Println()
		fmt.Println("--- Retrieved code ---")
		fmt.Println(item.Snippet)

		fmt.Println("--- Analysis ---")
		if item.AnalyzeErr != "" {
			fmt.Printf("Failed to analyze code: %s\n", item.AnalyzeErr)
			continue
		}
		fmt.Println(item.Analysis)
	}

	fmt.Println()
	fmt.Printf("Done in %s\n", report.Duration.Round(10*time.Millisecond))
}
