// Package config loads the application configuration from the environment.
// All required values are read once at startup; a missing value is fatal.
package config

import (
	"fmt"
	"os"
	"strings"
)

// GitHubConfig contains GitHub code-search API settings.
type GitHubConfig struct {
	// SearchURL is the full code-search endpoint, e.g. https://api.github.com/search/code
	SearchURL string
	// Token is the bearer token sent on every search request.
	Token string
}

// AzureOpenAIConfig contains chat-completion endpoint settings.
type AzureOpenAIConfig struct {
	Endpoint   string
	APIKey     string
	Deployment string
	APIVersion string
	// ModelName is informational only; the deployment selects the model on Azure.
	ModelName string
}

// Config is the full application configuration.
type Config struct {
	GitHub GitHubConfig
	Azure  AzureOpenAIConfig
}

// Environment variable names read by FromEnv.
const (
	EnvGitHubAPIURL    = "GITHUB_API_URL"
	EnvGitHubAPIKey    = "GITHUB_API_KEY"
	EnvAzureEndpoint   = "AZURE_OPENAI_ENDPOINT"
	EnvAzureAPIKey     = "AZURE_OPENAI_APIKEY"
	EnvAzureDeployment = "AZURE_OPENAI_DEPLOYMENT_NAME"
	EnvAzureAPIVersion = "AZURE_OPENAI_API_VERSION"
	EnvAzureModelName  = "AZURE_OPENAI_MODEL_NAME"
)

// FromEnv reads configuration from environment variables.
// It returns an error naming every missing required variable so a misconfigured
// environment can be fixed in one pass.
func FromEnv() (*Config, error) {
	cfg := &Config{
		GitHub: GitHubConfig{
			SearchURL: os.Getenv(EnvGitHubAPIURL),
			Token:     os.Getenv(EnvGitHubAPIKey),
		},
		Azure: AzureOpenAIConfig{
			Endpoint:   os.Getenv(EnvAzureEndpoint),
			APIKey:     os.Getenv(EnvAzureAPIKey),
			Deployment: os.Getenv(EnvAzureDeployment),
			APIVersion: os.Getenv(EnvAzureAPIVersion),
			ModelName:  os.Getenv(EnvAzureModelName),
		},
	}

	var missing []string
	for _, v := range []struct {
		name, value string
	}{
		{EnvGitHubAPIURL, cfg.GitHub.SearchURL},
		{EnvGitHubAPIKey, cfg.GitHub.Token},
		{EnvAzureEndpoint, cfg.Azure.Endpoint},
		{EnvAzureAPIKey, cfg.Azure.APIKey},
		{EnvAzureDeployment, cfg.Azure.Deployment},
		{EnvAzureAPIVersion, cfg.Azure.APIVersion},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}
