package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/john14759/SC4052-cloud-assignments/internal/config"
	"github.com/john14759/SC4052-cloud-assignments/internal/search"
)

func newSearchCmd() *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search GitHub code without running any analysis",
		Args:  cobra.ExactArgs(1),
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

			client := search.NewClient(cfg.GitHub.SearchURL, cfg.GitHub.Token)
			query := search.BuildQuery(args[0], f)

			fmt.Printf("Query: %s\n", query)
			result, err := client.Search(ctx, query)
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			if len(result.Items) == 0 {
				fmt.Println("No results found")
				return nil
			}

			fmt.Printf("Found %d results:\n\n", result.TotalCount)
			for i, item := range result.Items {
				fmt.Printf("%d. %s (Repo: %s)\n", i+1, item.Name, item.Repository.FullName)
				fmt.Printf("   %s\n", item.HTMLURL)
			}

			return nil
		},
	}

	filters.register(cmd)
	return cmd
}
