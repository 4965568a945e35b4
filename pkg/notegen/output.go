package notegen

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AIResponse is a validated draft ready to become a Note.
type AIResponse struct {
	Title   string `json:"title" validate:"required"`
	Summary string `json:"summary" validate:"required"`
	Content string `json:"content" validate:"required"`
}

var outputMessages = map[string]string{
	"Title":   "Title is required",
	"Summary": "Summary is required",
	"Content": "Content is required",
}

var requiredFields = []string{"title", "summary", "content"}

// ValidateAIResponse reports whether v is an object whose title, summary
// and content are non-empty strings.
func ValidateAIResponse(v any) bool {
	obj, ok := v.(map[string]any)
	if !ok || obj == nil {
		return false
	}

	for _, key := range requiredFields {
		value, present := obj[key]
		if !present {
			return false
		}
		s, isString := value.(string)
		if !isString || s == "" {
			return false
		}
	}

	return true
}

// ParseAIResponse runs the schema check: decode into AIResponse, then
// struct validation.
func ParseAIResponse(v any) (*AIResponse, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode AI response: %w", err)
	}

	var resp AIResponse
	if err := json.Unmarshal(encoded, &resp); err != nil {
		return nil, fmt.Errorf("decode AI response: %w", err)
	}

	if err := validate.Struct(resp); err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return nil, err
		}
		messages := make([]string, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			messages = append(messages, outputMessages[fe.Field()])
		}
		return nil, errors.New(strings.Join(messages, ", "))
	}

	return &resp, nil
}

// OutputError is returned when either output check rejects the draft.
type OutputError struct {
	PredicatePassed bool
	SchemaErr       error
}

func (e *OutputError) Error() string {
	if !e.PredicatePassed {
		return "invalid AI response structure"
	}
	return fmt.Sprintf("AI response validation failed: %v", e.SchemaErr)
}

func (e *OutputError) Unwrap() error {
	return e.SchemaErr
}

// Divergent is true when the predicate and the schema disagreed.
func (e *OutputError) Divergent() bool {
	return e.PredicatePassed != (e.SchemaErr == nil)
}

// CheckOutput requires both the predicate and the schema check to pass.
func CheckOutput(v any) (*AIResponse, error) {
	predicateOK := ValidateAIResponse(v)
	resp, schemaErr := ParseAIResponse(v)

	if predicateOK && schemaErr == nil {
		return resp, nil
	}

	return nil, &OutputError{PredicatePassed: predicateOK, SchemaErr: schemaErr}
}
