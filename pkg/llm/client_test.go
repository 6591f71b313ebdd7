package llm

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestNewClient_ProviderSelection(t *testing.T) {
	client, err := NewClient(Settings{Provider: ProviderPerplexity, APIKey: "k"})
	assert.Equal(t, nil, err)
	if _, ok := client.(*PerplexityClient); !ok {
		t.Errorf("expected *PerplexityClient, got %T", client)
	}

	client, err = NewClient(Settings{APIKey: "k"})
	assert.Equal(t, nil, err)
	if _, ok := client.(*PerplexityClient); !ok {
		t.Errorf("expected *PerplexityClient for empty provider, got %T", client)
	}

	client, err = NewClient(Settings{Provider: ProviderOpenAI, APIKey: "k"})
	assert.Equal(t, nil, err)
	if _, ok := client.(*OpenAIClient); !ok {
		t.Errorf("expected *OpenAIClient, got %T", client)
	}

	client, err = NewClient(Settings{Provider: ProviderAnthropic, APIKey: "k"})
	assert.Equal(t, nil, err)
	if _, ok := client.(*AnthropicClient); !ok {
		t.Errorf("expected *AnthropicClient, got %T", client)
	}
}

func TestNewClient_UnknownProvider(t *testing.T) {
	_, err := NewClient(Settings{Provider: "gemini", APIKey: "k"})
	assert.NotEqual(t, nil, err)
}

func TestAPIKeyEnv(t *testing.T) {
	assert.Equal(t, "PERPLEXITY_API_KEY", APIKeyEnv(ProviderPerplexity))
	assert.Equal(t, "PERPLEXITY_API_KEY", APIKeyEnv(""))
	assert.Equal(t, "OPENAI_API_KEY", APIKeyEnv(ProviderOpenAI))
	assert.Equal(t, "ANTHROPIC_API_KEY", APIKeyEnv(ProviderAnthropic))
}
