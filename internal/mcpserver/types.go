// Package mcpserver exposes the code search and analysis core as MCP tools.
package mcpserver

// SearchCodeInput defines the input parameters for the search_code tool.
type SearchCodeInput struct {
	// Query is the free-text code search query.
	Query string `json:"query" jsonschema:"required,description=Free-text GitHub code search query"`
	// Extension limits results to a file extension (e.g. py).
	Extension string `json:"extension,omitempty" jsonschema:"description=File extension qualifier (e.g. py)"`
	// Path limits results to a directory path substring (e.g. /src/).
	Path string `json:"path,omitempty" jsonschema:"description=Directory path qualifier (e.g. /src/)"`
	// MinRepoSize limits results to repositories of at least this size in KB.
	MinRepoSize int `json:"min_repo_size,omitempty" jsonschema:"minimum=0,description=Minimum repository size in KB"`
	// MinFollowers limits results to owners with at least this many followers.
	MinFollowers int `json:"min_followers,omitempty" jsonschema:"minimum=0,description=Minimum owner follower count"`
	// PushedAfter limits results to repositories pushed on or after this date (YYYY-MM-DD).
	PushedAfter string `json:"pushed_after,omitempty" jsonschema:"description=Minimum last-pushed date in YYYY-MM-DD form"`
	// Language limits results to a language (e.g. Python).
	Language string `json:"language,omitempty" jsonschema:"description=Language qualifier (e.g. Python)"`
}

// SearchCodeOutput contains the search results.
type SearchCodeOutput struct {
	// Query is the enhanced query actually sent to GitHub.
	Query string `json:"query"`
	// TotalCount is the total number of matches reported by GitHub.
	TotalCount int `json:"total_count"`
	// Items are the first page of matching files.
	Items []SearchCodeItem `json:"items"`
}

// SearchCodeItem is one matching file.
type SearchCodeItem struct {
	Name       string `json:"name"`
	Repository string `json:"repository"`
	HTMLURL    string `json:"html_url"`
}

// AnalyzeCodeInput defines the input parameters for the analyze_code tool.
type AnalyzeCodeInput struct {
	// HTMLURL is the GitHub blob URL of the file to analyze.
	HTMLURL string `json:"html_url" jsonschema:"required,description=GitHub blob URL of the file (https://github.com/OWNER/REPO/blob/REF/PATH)"`
	// AnalysisType selects the analysis mode. Defaults to the configured selection.
	AnalysisType string `json:"analysis_type,omitempty" jsonschema:"description=Analysis mode: Documentation or AI Detection"`
	// Complexity selects the prompt tier. Defaults to the configured selection.
	Complexity string `json:"complexity,omitempty" jsonschema:"description=Prompt complexity: basic; detailed or advanced"`
}

// AnalyzeCodeOutput contains the analysis of one file.
type AnalyzeCodeOutput struct {
	// Snippet is the analyzed prefix of the file's raw content.
	Snippet string `json:"snippet"`
	// Analysis is the model's response text.
	Analysis string `json:"analysis"`
	// AnalysisType and Complexity record the preset actually used for this call.
	AnalysisType string `json:"analysis_type"`
	Complexity   string `json:"complexity"`
}

// ConfigureAnalysisInput defines the input parameters for the configure_analysis tool.
type ConfigureAnalysisInput struct {
	// AnalysisType sets the default analysis mode. Unset fields keep their current value.
	AnalysisType string `json:"analysis_type,omitempty" jsonschema:"description=Default analysis mode: Documentation or AI Detection"`
	// Complexity sets the default prompt tier.
	Complexity string `json:"complexity,omitempty" jsonschema:"description=Default prompt complexity: basic; detailed or advanced"`
}

// ConfigureAnalysisOutput echoes the selection now in effect.
type ConfigureAnalysisOutput struct {
	AnalysisType string `json:"analysis_type"`
	Complexity   string `json:"complexity"`
}

// GetPromptInput defines the input parameters for the get_prompt tool.
type GetPromptInput struct {
	// AnalysisType selects the analysis mode.
	AnalysisType string `json:"analysis_type" jsonschema:"required,description=Analysis mode: Documentation or AI Detection"`
	// Complexity selects the prompt tier.
	Complexity string `json:"complexity" jsonschema:"required,description=Prompt complexity: basic; detailed or advanced"`
}

// GetPromptOutput contains the preset instruction text.
type GetPromptOutput struct {
	Prompt string `json:"prompt"`
}
