package notegen

import (
	"context"
	"fmt"

	"ai-notes-hub/internal/constant"
	"ai-notes-hub/pkg/llm"
)

type GeneratorConfig struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Model:       constant.DefaultModel,
		Temperature: constant.DefaultTemperature,
		MaxTokens:   constant.DefaultMaxTokens,
	}
}

// Generator turns a topic into a validated draft with exactly one
// upstream call. It never retries.
type Generator struct {
	provider llm.LLMProvider
	prompts  *PromptBuilder
	cfg      GeneratorConfig
}

func NewGenerator(provider llm.LLMProvider, prompts *PromptBuilder, cfg GeneratorConfig) *Generator {
	if prompts == nil {
		prompts = NewPromptBuilder()
	}
	return &Generator{
		provider: provider,
		prompts:  prompts,
		cfg:      cfg,
	}
}

// Generate returns the raw completion text for topic.
func (g *Generator) Generate(ctx context.Context, topic string) (string, error) {
	opts := []llm.Option{
		llm.WithTemperature(g.cfg.Temperature),
		llm.WithMaxTokens(g.cfg.MaxTokens),
	}
	if g.cfg.Model != "" {
		opts = append(opts, llm.WithModel(g.cfg.Model))
	}

	raw, err := g.provider.Chat(ctx, g.prompts.Build(topic), opts...)
	if err != nil {
		return "", NewPipelineError(KindGeneration, fmt.Errorf("chat completion: %w", err))
	}
	if raw == "" {
		return "", NewPipelineError(KindGeneration, ErrEmptyResponse)
	}

	return raw, nil
}

// Draft is the result of a successful generation together with how the
// model output was interpreted.
type Draft struct {
	Response *AIResponse
	Kind     ResponseKind
}

// GenerateNote runs generate, normalize and output validation. Output
// failures are reported as generation errors.
func (g *Generator) GenerateNote(ctx context.Context, topic string) (*Draft, error) {
	raw, err := g.Generate(ctx, topic)
	if err != nil {
		return nil, err
	}

	normalized := Normalize(raw, topic)

	resp, err := CheckOutput(normalized.Value)
	if err != nil {
		return nil, NewPipelineError(KindGeneration, err)
	}

	return &Draft{Response: resp, Kind: normalized.Kind}, nil
}
