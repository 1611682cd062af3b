// Package llm runs analysis prompts against an Azure OpenAI chat deployment.
package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"

	"github.com/john14759/SC4052-cloud-assignments/internal/config"
)

// temperature favors varied phrasing over determinism, which suits
// qualitative documentation and analysis text.
const temperature = 0.7

// Analyzer submits (prompt, snippet) instructions as single chat completions.
type Analyzer struct {
	client     openai.Client
	deployment string
}

// NewAnalyzer creates an analyzer bound to the configured Azure deployment.
func NewAnalyzer(cfg config.AzureOpenAIConfig) (*Analyzer, error) {
	if cfg.Endpoint == "" || cfg.APIKey == "" || cfg.Deployment == "" {
		return nil, fmt.Errorf("azure openai endpoint, api key and deployment are required")
	}

	client := openai.NewClient(
		azure.WithEndpoint(cfg.Endpoint, cfg.APIVersion),
		azure.WithAPIKey(cfg.APIKey),
	)

	return &Analyzer{
		client:     client,
		deployment: cfg.Deployment,
	}, nil
}

// BuildInstruction composes the single user message sent to the model:
// the preset prompt, a blank line, then the snippet.
func BuildInstruction(prompt, snippet string) string {
	return fmt.Sprintf("%s\n\n%s", prompt, snippet)
}

// Analyze runs one chat completion over the snippet with the given prompt and
// returns the model's response text verbatim.
func (a *Analyzer) Analyze(ctx context.Context, snippet, prompt string) (string, error) {
	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(BuildInstruction(prompt, snippet)),
		},
		Model:       openai.ChatModel(a.deployment),
		Temperature: openai.Float(temperature),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("chat completion returned empty content")
	}

	return content, nil
}
