package factory

import (
	"testing"

	"ai-notes-hub/pkg/llm/ollama"
	"ai-notes-hub/pkg/llm/openai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider(t *testing.T) {
	p, err := NewLLMProvider(ProviderConfig{Provider: "openai", Model: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.IsType(t, &openai.OpenAIProvider{}, p)

	p, err = NewLLMProvider(ProviderConfig{Provider: "ollama", Model: "llama3"})
	require.NoError(t, err)
	assert.IsType(t, &ollama.OllamaProvider{}, p)
	assert.Equal(t, ollama.DefaultBaseURL, p.(*ollama.OllamaProvider).BaseURL)

	_, err = NewLLMProvider(ProviderConfig{Provider: "bard"})
	assert.EqualError(t, err, "unsupported LLM provider: bard")
}
