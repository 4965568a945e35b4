package nats

import (
	"testing"

	"ai-notes-hub/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "notes.NOTE_GENERATED", Subject(events.TypeNoteGenerated))
	assert.Equal(t, "notes.EXCEPTION_CAPTURED", Subject(events.TypeExceptionCaptured))
}

func TestCloseWithoutConnection(t *testing.T) {
	p := &Publisher{}
	assert.NotPanics(t, p.Close)
}
