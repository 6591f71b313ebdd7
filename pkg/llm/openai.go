package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// openAITemperature balances novelty against format adherence. Fixed, not
// operator-tunable.
const openAITemperature = 0.7

// OpenAIClient is the OpenAI-backed variant of the completion client.
type OpenAIClient struct {
	client *openai.Client
	model  openai.ChatModel
}

func NewOpenAIClient(cfg Settings) *OpenAIClient {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	model := openai.ChatModelGPT4oMini
	if cfg.Model != "" {
		model = openai.ChatModel(cfg.Model)
	}
	client := openai.NewClient(opts...)
	return &OpenAIClient{
		client: &client,
		model:  model,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Temperature: openai.Float(openAITemperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
	})

	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	return resp.Choices[0].Message.Content, nil
}
