package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicClient is a generation-only oracle. Anthropic has no embeddings
// endpoint, so it is paired with the OpenAI or Ollama embedder.
type AnthropicClient struct {
	client *anthropic.Client
	model  anthropic.Model
}

func NewAnthropicClient(apiKey string) *AnthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicClient{
		client: &client,
		model:  anthropic.ModelClaude3_5HaikuLatest,
	}
}

func (c *AnthropicClient) Complete(prompt string) (string, error) {
	resp, err := c.client.Messages.New(context.Background(), anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 1024,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})

	if err != nil {
		return "", fmt.Errorf("%w: anthropic: %v", ErrUnavailable, err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("%w: no response from anthropic", ErrUnavailable)
	}

	return resp.Content[0].Text, nil
}
