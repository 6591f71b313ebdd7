package llm

import (
	"context"
	"fmt"
)

const (
	ProviderPerplexity = "perplexity"
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
)

// systemPrompt pins every backend to the same instruction-following stance.
const systemPrompt = "You are a helpful assistant. Be precise and follow instructions EXACTLY."

// CompletionClient sends one prompt and returns the top completion's text.
// Failures come back as error values the caller branches on.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Settings configures a concrete client. Model and BaseURL fall back to
// per-provider defaults when empty.
type Settings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// NewClient builds the client for the configured provider. Perplexity is
// the default backend.
func NewClient(cfg Settings) (CompletionClient, error) {
	switch cfg.Provider {
	case "", ProviderPerplexity:
		return NewPerplexityClient(cfg), nil
	case ProviderOpenAI:
		return NewOpenAIClient(cfg), nil
	case ProviderAnthropic:
		return NewAnthropicClient(cfg), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

// APIKeyEnv names the environment variable holding the key for a provider.
func APIKeyEnv(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return "PERPLEXITY_API_KEY"
	}
}
