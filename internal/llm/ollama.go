package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// OllamaClient talks to a locally hosted Ollama server through its
// /api/generate endpoint. Streaming is always disabled: the caller
// wants one complete letter, not tokens.
type OllamaClient struct {
	BaseURL     string
	Model       string
	Temperature float32
	TopP        float32
	// HTTPClient is replaceable in tests. Nil falls back to a client
	// with a generation-sized timeout.
	HTTPClient *http.Client
}

// NewOllamaClient applies defaults for anything Options leaves empty.
func NewOllamaClient(opts Options) *OllamaClient {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = "http://localhost:11434"
	}
	return &OllamaClient{
		BaseURL:     base,
		Model:       opts.Model,
		Temperature: opts.Temperature,
		TopP:        opts.TopP,
	}
}

type generateRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	Stream      bool    `json:"stream"`
	Temperature float32 `json:"temperature"`
	TopP        float32 `json:"top_p"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Generate posts the prompt and returns the model's response text.
// A non-200 status surfaces the status code and body verbatim so the
// operator sees exactly what the server said.
func (c *OllamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Model:       c.Model,
		Prompt:      prompt,
		Stream:      false,
		Temperature: c.Temperature,
		TopP:        c.TopP,
	})
	if err != nil {
		return "", fmt.Errorf("encode generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Minute}
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call ollama: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read ollama response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, string(body))
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode ollama response: %w", err)
	}
	return out.Response, nil
}
