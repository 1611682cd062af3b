package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/john14759/SC4052-cloud-assignments/internal/search"
)

// filterFlags holds the optional search refinement flags shared by the
// analyze and search commands.
type filterFlags struct {
	extension    string
	path         string
	minRepoSize  int
	minFollowers int
	pushedAfter  string
	language     string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.extension, "extension", "", "file extension qualifier (e.g. py)")
	cmd.Flags().StringVar(&f.path, "path", "", "directory path qualifier (e.g. /src/)")
	cmd.Flags().IntVar(&f.minRepoSize, "min-repo-size", 0, "minimum repository size in KB")
	cmd.Flags().IntVar(&f.minFollowers, "min-followers", 0, "minimum owner follower count")
	cmd.Flags().StringVar(&f.pushedAfter, "pushed-after", "", "minimum last-pushed date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.language, "language", "", "language qualifier (e.g. Python)")
}

func (f *filterFlags) toFilters() (search.Filters, error) {
	filters := search.Filters{
		Extension:    f.extension,
		Path:         f.path,
		MinRepoSize:  f.minRepoSize,
		MinFollowers: f.minFollowers,
		Language:     f.language,
	}
	if f.pushedAfter != "" {
		date, err := time.Parse("2006-01-02", f.pushedAfter)
		if err != nil {
			return search.Filters{}, fmt.Errorf("invalid --pushed-after date %q (expected YYYY-MM-DD)", f.pushedAfter)
		}
		filters.PushedAfter = &date
	}
	return filters, nil
}
