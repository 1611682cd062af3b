package search

import (
	"fmt"
	"strings"
	"time"
)

// Filters narrows a code search with optional GitHub qualifiers.
// Zero values contribute no qualifier token.
type Filters struct {
	Extension    string     // file extension, e.g. "py"
	Path         string     // directory path substring, e.g. "/src/"
	MinRepoSize  int        // minimum repository size in KB
	MinFollowers int        // minimum owner follower count
	PushedAfter  *time.Time // minimum last-pushed date
	Language     string     // language name, e.g. "Python"
}

// Qualifiers returns the qualifier tokens for the set filters, in fixed order:
// extension, path, repository size, followers, pushed date, language.
// Field contents are passed through verbatim; GitHub rejects malformed
// qualifiers itself, so no escaping or validation is done here.
func (f Filters) Qualifiers() []string {
	var tokens []string
	if f.Extension != "" {
		tokens = append(tokens, fmt.Sprintf("extension:%s", f.Extension))
	}
	if f.Path != "" {
		tokens = append(tokens, fmt.Sprintf("path:%s", f.Path))
	}
	if f.MinRepoSize > 0 {
		tokens = append(tokens, fmt.Sprintf("repo:>=%d", f.MinRepoSize))
	}
	if f.MinFollowers > 0 {
		tokens = append(tokens, fmt.Sprintf("user:>=%d followers", f.MinFollowers))
	}
	if f.PushedAfter != nil {
		tokens = append(tokens, fmt.Sprintf("pushed:>=%s", f.PushedAfter.Format("2006-01-02")))
	}
	if f.Language != "" {
		tokens = append(tokens, fmt.Sprintf("language:%s", f.Language))
	}
	return tokens
}

// BuildQuery combines the user's free-text query with the filter qualifiers.
func BuildQuery(query string, f Filters) string {
	tokens := f.Qualifiers()
	if len(tokens) == 0 {
		return query
	}
	return query + " " + strings.Join(tokens, " ")
}
