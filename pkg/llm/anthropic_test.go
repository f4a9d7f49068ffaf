package llm

import (
	"errors"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/go-playground/assert/v2"
)

func TestNewAnthropicClientModel(t *testing.T) {
	client := NewAnthropicClient("test-key")

	assert.Equal(t, anthropic.ModelClaude3_5HaikuLatest, client.model)
}

func TestAnthropicUnreachableIsUnavailable(t *testing.T) {
	c := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL("http://127.0.0.1:1"),
		option.WithMaxRetries(0),
	)
	client := &AnthropicClient{client: &c, model: anthropic.ModelClaude3_5HaikuLatest}

	_, err := client.Complete("프롬프트")

	assert.Equal(t, true, errors.Is(err, ErrUnavailable))
}
