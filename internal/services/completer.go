package services

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"portfolio-backend/internal/models"
)

// CompletionRequest is the outbound payload for one non-streaming call.
// History roles are already normalized to "user"/"assistant".
type CompletionRequest struct {
	Model        string
	SystemPrompt string
	History      []models.ChatMessage
	UserMessage  string
	Temperature  float64
	MaxTokens    int64
}

// Completer issues a single chat completion against a hosted provider.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type openAICompleter struct {
	client openai.Client
}

func newOpenAICompleter(apiKey string) *openAICompleter {
	return &openAICompleter{client: openai.NewClient(option.WithAPIKey(apiKey))}
}

func (c *openAICompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.History)+2)
	messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	for _, m := range req.History {
		if m.Role == "assistant" {
			messages = append(messages, openai.AssistantMessage(m.Content))
		} else {
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}
	messages = append(messages, openai.UserMessage(req.UserMessage))

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(req.Model),
		Messages:    messages,
		Temperature: openai.Float(req.Temperature),
		MaxTokens:   openai.Int(req.MaxTokens),
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}
	content := completion.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty response content")
	}
	return content, nil
}
