package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicMaxTokens = 4096

// AnthropicClient is the Claude-backed variant of the completion client.
type AnthropicClient struct {
	client *anthropic.Client
	model  anthropic.Model
}

func NewAnthropicClient(cfg Settings) *AnthropicClient {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	model := anthropic.Model("claude-haiku-4-5")
	if cfg.Model != "" {
		model = anthropic.Model(cfg.Model)
	}
	client := anthropic.NewClient(opts...)
	return &AnthropicClient{
		client: &client,
		model:  model,
	}
}

func (c *AnthropicClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: anthropicMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})

	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("no response from anthropic")
	}

	return resp.Content[0].Text, nil
}
