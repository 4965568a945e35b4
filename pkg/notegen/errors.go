package notegen

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorKind string

const (
	KindValidation  ErrorKind = "ValidationError"
	KindGeneration  ErrorKind = "GenerationError"
	KindPersistence ErrorKind = "PersistenceError"
	KindUnknown     ErrorKind = "UnknownError"
)

var (
	ErrEmptyResponse = errors.New("empty response")
)

// ValidationError carries one message per violated constraint.
type ValidationError struct {
	Messages []string
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// PipelineError tags a failure with the stage category it belongs to.
type PipelineError struct {
	Kind ErrorKind
	Err  error
}

func NewPipelineError(kind ErrorKind, err error) *PipelineError {
	return &PipelineError{Kind: kind, Err: err}
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// KindOf reports the kind of err; anything untagged is unknown.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var pErr *PipelineError
	if errors.As(err, &pErr) {
		return pErr.Kind
	}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return KindValidation
	}

	return KindUnknown
}
