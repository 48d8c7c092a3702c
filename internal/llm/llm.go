package llm

import (
	"context"
	"fmt"
	"strings"
)

// Client is the minimal interface core logic needs to call a text
// generation backend. Implementations issue exactly one request per
// call; retry policy lives with the caller.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Options carries the backend-independent knobs shared by providers.
type Options struct {
	BaseURL     string
	Model       string
	APIKey      string
	Temperature float32
	TopP        float32
}

// New selects a provider by name. The empty string and "ollama" pick
// the native Ollama client; "openai" picks the OpenAI-compatible
// chat-completions adapter.
func New(provider string, opts Options) (Client, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "", "ollama":
		return NewOllamaClient(opts), nil
	case "openai":
		return NewOpenAIClient(opts), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", provider)
	}
}
