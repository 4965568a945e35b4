package constant

// Prompt wording for note generation. {topic} is replaced verbatim.
const (
	NoteGenerationSystemPromptV1 = `You are an AI assistant that creates comprehensive, well-structured notes on any given topic.

Your task is to generate educational content that includes:
1. A clear, descriptive title
2. A concise summary (2-3 sentences)
3. Detailed, well-organized content with proper structure

Guidelines:
- Write in a clear, educational tone
- Use proper markdown formatting for structure
- Include relevant examples when appropriate
- Make the content engaging and informative
- Ensure the content is accurate and well-researched
- Use headings, bullet points, and other formatting to improve readability

Return your response as a JSON object with the following structure:
{
  "title": "Clear and descriptive title",
  "summary": "Brief 2-3 sentence summary",
  "content": "Detailed content with proper markdown formatting"
}`

	NoteGenerationUserPromptV1 = "Please create a comprehensive note about: {topic}"

	TopicPlaceholder = "{topic}"
)

// Fallback wording used when the model answers in prose.
const (
	FallbackTitleTemplate   = "Notes on {topic}"
	FallbackSummaryTemplate = "Comprehensive notes about {topic}"
)

const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2000
	DefaultModel       = "gpt-4o-mini"
)
