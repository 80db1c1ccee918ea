package evaluator

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// OpenAIGenerator implements TextGenerator against the OpenAI chat
// completion API, asking for a JSON object response.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	return &OpenAIGenerator{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a system design evaluation engine. Always answer with a single JSON object."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
