package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	perplexityBaseURL      = "https://api.perplexity.ai"
	defaultPerplexityModel = "sonar-pro"
)

// PerplexityClient talks to Perplexity's OpenAI-compatible chat endpoint.
type PerplexityClient struct {
	client *openai.Client
	model  openai.ChatModel
}

func NewPerplexityClient(cfg Settings) *PerplexityClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = perplexityBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultPerplexityModel
	}
	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(baseURL),
	)
	return &PerplexityClient{
		client: &client,
		model:  openai.ChatModel(model),
	}
}

func (c *PerplexityClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
	})

	if err != nil {
		return "", fmt.Errorf("perplexity API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from perplexity")
	}

	return resp.Choices[0].Message.Content, nil
}
