package notegen

import (
	"strings"

	"ai-notes-hub/internal/constant"
	"ai-notes-hub/pkg/llm"
)

// PromptBuilder holds the prompt wording so it can change without
// touching the pipeline.
type PromptBuilder struct {
	systemPrompt string
	userTemplate string
}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		systemPrompt: constant.NoteGenerationSystemPromptV1,
		userTemplate: constant.NoteGenerationUserPromptV1,
	}
}

func NewCustomPromptBuilder(systemPrompt, userTemplate string) *PromptBuilder {
	return &PromptBuilder{
		systemPrompt: systemPrompt,
		userTemplate: userTemplate,
	}
}

// Build returns the system instruction followed by the user instruction.
func (b *PromptBuilder) Build(topic string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: b.systemPrompt},
		{Role: llm.RoleUser, Content: fillTopic(b.userTemplate, topic)},
	}
}

func fillTopic(template, topic string) string {
	return strings.ReplaceAll(template, constant.TopicPlaceholder, topic)
}
