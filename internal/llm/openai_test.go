package llm

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

type fakeChatCompleter struct {
	gotReq openai.ChatCompletionRequest
	resp   openai.ChatCompletionResponse
	err    error
}

func (f *fakeChatCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.gotReq = req
	return f.resp, f.err
}

func TestOpenAIGenerate(t *testing.T) {
	fake := &fakeChatCompleter{
		resp: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "Dear Hiring Team,"}},
			},
		},
	}
	c := &OpenAIClient{Inner: fake, Model: "gpt-test", Temperature: 0.7, TopP: 0.9}

	out, err := c.Generate(context.Background(), "write a letter")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out != "Dear Hiring Team," {
		t.Fatalf("out = %q", out)
	}
	if fake.gotReq.Model != "gpt-test" {
		t.Errorf("model = %q", fake.gotReq.Model)
	}
	if len(fake.gotReq.Messages) != 1 || fake.gotReq.Messages[0].Content != "write a letter" {
		t.Errorf("messages = %+v", fake.gotReq.Messages)
	}
}

func TestOpenAIGenerateErrors(t *testing.T) {
	c := &OpenAIClient{Inner: &fakeChatCompleter{err: errors.New("backend down")}, Model: "m"}
	if _, err := c.Generate(context.Background(), "p"); err == nil {
		t.Fatal("expected error")
	}

	c = &OpenAIClient{Inner: &fakeChatCompleter{}, Model: "m"}
	if _, err := c.Generate(context.Background(), "p"); err == nil {
		t.Fatal("expected error on zero choices")
	}
}
