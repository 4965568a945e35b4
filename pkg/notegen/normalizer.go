package notegen

import (
	"encoding/json"
	"strings"

	"ai-notes-hub/internal/constant"
)

type ResponseKind int

const (
	Structured ResponseKind = iota
	Freeform
)

func (k ResponseKind) String() string {
	switch k {
	case Structured:
		return "structured"
	case Freeform:
		return "freeform"
	default:
		return "unknown"
	}
}

// NormalizedResponse is the model output after the first interpretation
// pass. Value is unchecked; output validation decides whether it is usable.
type NormalizedResponse struct {
	Kind  ResponseKind
	Value any
}

// Normalize decodes raw as JSON when possible and otherwise extracts
// title and summary from markdown prose.
func Normalize(raw, topic string) NormalizedResponse {
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
		return NormalizedResponse{Kind: Structured, Value: decoded}
	}

	return NormalizedResponse{Kind: Freeform, Value: extractFreeform(raw, topic)}
}

func extractFreeform(raw, topic string) map[string]any {
	lines := strings.Split(raw, "\n")

	titleIndex := -1
	for i, line := range lines {
		if strings.HasPrefix(line, "# ") {
			titleIndex = i
			break
		}
	}

	title := ""
	if titleIndex >= 0 {
		title = strings.TrimPrefix(lines[titleIndex], "# ")
	}
	if title == "" {
		title = fillTopic(constant.FallbackTitleTemplate, topic)
	}

	summaryStart := titleIndex + 1
	summaryEnd := paragraphEnd(lines, summaryStart)

	summary := fillTopic(constant.FallbackSummaryTemplate, topic)
	if summaryEnd > summaryStart {
		summary = strings.TrimSpace(strings.Join(lines[summaryStart:summaryEnd], " "))
	}

	return map[string]any{
		"title":   title,
		"summary": summary,
		"content": raw,
	}
}

// paragraphEnd finds the first blank line after start that is followed by
// a non-blank line or by the end of the text. Returns -1 if there is none.
func paragraphEnd(lines []string, start int) int {
	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "" {
			continue
		}
		if i+1 >= len(lines) || strings.TrimSpace(lines[i+1]) != "" {
			return i
		}
	}
	return -1
}
