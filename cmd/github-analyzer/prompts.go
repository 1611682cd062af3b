package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/john14759/SC4052-cloud-assignments/internal/prompt"
)

func newPromptsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompts",
		Short: "Print the analysis prompt presets",
		Run: func(cmd *cobra.Command, args []string) {
			catalog := prompt.NewCatalog()
			for _, t := range prompt.AnalysisTypes {
				for _, level := range prompt.Complexities {
					fmt.Printf("--- %s / %s ---\n", t, level)
					fmt.Println(catalog.Get(t, level))
					fmt.Println()
				}
			}
		},
	}
}
