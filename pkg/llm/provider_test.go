package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyOptions(t *testing.T) {
	defaults := Options{Temperature: 0.7, Model: "base"}

	got := Apply(defaults, WithTemperature(0.2), WithMaxTokens(2000), WithModel("gpt-4o-mini"))

	assert.Equal(t, 0.2, got.Temperature)
	assert.Equal(t, 2000, got.MaxTokens)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, 0.7, defaults.Temperature, "defaults must not be mutated")
}
