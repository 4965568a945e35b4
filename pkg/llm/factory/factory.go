package factory

import (
	"fmt"

	"ai-notes-hub/pkg/llm"
	"ai-notes-hub/pkg/llm/ollama"
	"ai-notes-hub/pkg/llm/openai"
)

type ProviderConfig struct {
	Provider      string
	Model         string
	APIKey        string
	OpenAIBaseURL string
	OllamaBaseURL string
}

func NewLLMProvider(cfg ProviderConfig) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "openai", "":
		return openai.NewOpenAIProvider(cfg.APIKey, cfg.OpenAIBaseURL, cfg.Model), nil
	case "ollama":
		return ollama.NewOllamaProvider(cfg.OllamaBaseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
