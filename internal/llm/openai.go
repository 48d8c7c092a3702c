package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// chatCompleter mirrors the single go-openai method this adapter uses,
// so tests can substitute a fake without a live server.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIClient adapts any OpenAI-compatible chat-completions backend
// (vLLM, LM Studio, the hosted API) to the Client interface.
type OpenAIClient struct {
	Inner       chatCompleter
	Model       string
	Temperature float32
	TopP        float32
}

// NewOpenAIClient builds the adapter. A custom BaseURL points it at a
// local OpenAI-compatible server; the key may be a placeholder for
// servers that ignore authentication.
func NewOpenAIClient(opts Options) *OpenAIClient {
	cfg := openai.DefaultConfig(opts.APIKey)
	if base := strings.TrimRight(opts.BaseURL, "/"); base != "" {
		cfg.BaseURL = base + "/v1"
	}
	return &OpenAIClient{
		Inner:       openai.NewClientWithConfig(cfg),
		Model:       opts.Model,
		Temperature: opts.Temperature,
		TopP:        opts.TopP,
	}
}

func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.Inner.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.Temperature,
		TopP:        c.TopP,
		N:           1,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
