package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIClient struct {
	client     *openai.Client
	model      openai.ChatModel
	embedModel openai.EmbeddingModel
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client:     &client,
		model:      openai.ChatModelGPT4oMini,
		embedModel: openai.EmbeddingModelTextEmbedding3Small,
	}
}

func (c *OpenAIClient) Complete(prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(context.Background(), openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})

	if err != nil {
		return "", fmt.Errorf("%w: openai: %v", ErrUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no response from openai", ErrUnavailable)
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) Embed(text string) ([]float64, error) {
	resp, err := c.client.Embeddings.New(context.Background(), openai.EmbeddingNewParams{
		Model: c.embedModel,
		Input: openai.EmbeddingNewParamsInputUnion{
			OfString: openai.String(text),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("%w: openai embeddings: %v", ErrUnavailable, err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("%w: no embedding from openai", ErrUnavailable)
	}

	return resp.Data[0].Embedding, nil
}
