package notegen

import (
	"testing"

	"ai-notes-hub/internal/constant"
	"ai-notes-hub/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptBuilderBuild(t *testing.T) {
	messages := NewPromptBuilder().Build("100% {weird} topic")

	require.Len(t, messages, 2)
	assert.Equal(t, llm.RoleSystem, messages[0].Role)
	assert.Equal(t, constant.NoteGenerationSystemPromptV1, messages[0].Content)
	assert.Contains(t, messages[0].Content, `"title"`)
	assert.Equal(t, llm.RoleUser, messages[1].Role)
	assert.Equal(t, "Please create a comprehensive note about: 100% {weird} topic", messages[1].Content)
}

func TestCustomPromptBuilder(t *testing.T) {
	messages := NewCustomPromptBuilder("be brief", "Topic: {topic}. Again: {topic}").Build("go")

	assert.Equal(t, "be brief", messages[0].Content)
	assert.Equal(t, "Topic: go. Again: go", messages[1].Content)
}
