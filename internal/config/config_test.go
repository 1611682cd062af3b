package config

import (
	"strings"
	"testing"
)

func setFullEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvGitHubAPIURL, "https://api.github.com/search/code")
	t.Setenv(EnvGitHubAPIKey, "gh-token")
	t.Setenv(EnvAzureEndpoint, "https://example.openai.azure.com")
	t.Setenv(EnvAzureAPIKey, "azure-key")
	t.Setenv(EnvAzureDeployment, "gpt-4o")
	t.Setenv(EnvAzureAPIVersion, "2024-02-01")
	t.Setenv(EnvAzureModelName, "gpt-4o")
}

func TestFromEnv(t *testing.T) {
	setFullEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}

	if cfg.GitHub.SearchURL != "https://api.github.com/search/code" {
		t.Errorf("GitHub.SearchURL = %q", cfg.GitHub.SearchURL)
	}
	if cfg.GitHub.Token != "gh-token" {
		t.Errorf("GitHub.Token = %q", cfg.GitHub.Token)
	}
	if cfg.Azure.Deployment != "gpt-4o" {
		t.Errorf("Azure.Deployment = %q", cfg.Azure.Deployment)
	}
	if cfg.Azure.APIVersion != "2024-02-01" {
		t.Errorf("Azure.APIVersion = %q", cfg.Azure.APIVersion)
	}
}

func TestFromEnv_MissingRequired(t *testing.T) {
	setFullEnv(t)
	t.Setenv(EnvGitHubAPIKey, "")
	t.Setenv(EnvAzureAPIVersion, "")

	_, err := FromEnv()
	if err == nil {
		t.Fatal("FromEnv() expected error for missing variables")
	}
	// Every missing variable should be named in one error.
	for _, name := range []string{EnvGitHubAPIKey, EnvAzureAPIVersion} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not mention %s", err, name)
		}
	}
	if strings.Contains(err.Error(), EnvGitHubAPIURL) {
		t.Errorf("error %q mentions a variable that was set", err)
	}
}

func TestFromEnv_ModelNameOptional(t *testing.T) {
	setFullEnv(t)
	t.Setenv(EnvAzureModelName, "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if cfg.Azure.ModelName != "" {
		t.Errorf("Azure.ModelName = %q, want empty", cfg.Azure.ModelName)
	}
}
