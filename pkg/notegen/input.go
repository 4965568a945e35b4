package notegen

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// GenerationRequest is the only accepted shape for a generation call.
type GenerationRequest struct {
	Topic string `json:"topic" validate:"required,max=200"`
}

var inputMessages = map[string]string{
	"Topic.required": "Topic is required",
	"Topic.max":      "Topic must be less than 200 characters",
}

// ParseGenerationRequest decodes a raw request body and validates it.
// Unknown keys are dropped; a non-string topic is reported as such.
func ParseGenerationRequest(body []byte) (*GenerationRequest, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, NewValidationError("Invalid request body")
	}

	var req GenerationRequest
	if topic, ok := raw["topic"]; ok {
		if err := json.Unmarshal(topic, &req.Topic); err != nil {
			return nil, NewValidationError("Topic must be a string")
		}
	}

	return ValidateGenerationRequest(req)
}

// ValidateGenerationRequest checks the topic length on the raw string,
// without trimming.
func ValidateGenerationRequest(req GenerationRequest) (*GenerationRequest, error) {
	err := validate.Struct(req)
	if err == nil {
		return &GenerationRequest{Topic: req.Topic}, nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return nil, NewValidationError(err.Error())
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		msg, ok := inputMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		messages = append(messages, msg)
	}

	return nil, NewValidationError(messages...)
}
