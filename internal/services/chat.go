package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/knowledge"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/prompt"
)

const (
	// Model used when the client omits one entirely.
	defaultModel = "gpt-4"
	// Model substituted for values outside the allow-list.
	fallbackModel = "gpt-3.5-turbo"

	// Fixed generation budget; deliberately not configurable.
	temperature     = 0.8
	maxOutputTokens = 500

	// Inner provider deadline. Must stay below the 25s route timeout so the
	// inner deadline always fires first.
	completionTimeout = 20 * time.Second
)

// allowedModels is the fixed model allow-list. Anything else is silently
// replaced by fallbackModel before it reaches the provider.
var allowedModels = map[string]bool{
	"gpt-4":               true,
	"gpt-3.5-turbo":       true,
	"gpt-4-turbo-preview": true,
}

// ResolveModel maps a client-supplied model to one the provider accepts. An
// omitted model means the default; an unrecognized one is silently replaced,
// never rejected.
func ResolveModel(model string) string {
	if model == "" {
		return defaultModel
	}
	if allowedModels[model] {
		return model
	}
	return fallbackModel
}

// ChatService orchestrates one assistant turn: compose the system prompt,
// issue a single bounded completion call, and classify failures. It holds no
// per-request state.
type ChatService struct {
	apiKey    string
	completer Completer
	timeout   time.Duration
}

func NewChatService(apiKey string) *ChatService {
	return &ChatService{
		apiKey:    apiKey,
		completer: newOpenAICompleter(apiKey),
		timeout:   completionTimeout,
	}
}

// Ask handles a validated chat request and returns the reply plus the
// illustration the composer picked, or a typed error.
func (s *ChatService) Ask(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	if s.apiKey == "" {
		return models.ChatResponse{}, &ConfigError{Message: "AI service is not configured"}
	}

	category := knowledge.ResolveCategory(req.Category)
	model := ResolveModel(req.Model)
	system, image := prompt.Compose(req.Message, category, req.SelectedProject)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	reply, err := s.completer.Complete(ctx, CompletionRequest{
		Model:        model,
		SystemPrompt: system,
		History:      normalizeHistory(req.Messages),
		UserMessage:  req.Message,
		Temperature:  temperature,
		MaxTokens:    maxOutputTokens,
	})
	latency := time.Since(start)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Warn().Dur("latency", latency).Str("model", model).Msg("completion timed out")
			return models.ChatResponse{}, &TimeoutError{Message: "Request timed out, please try again"}
		}
		log.Error().Err(err).Dur("latency", latency).Str("model", model).Msg("completion failed")
		return models.ChatResponse{}, &ProviderError{Message: "Error communicating with AI service", Err: err}
	}

	log.Info().Dur("latency", latency).Str("model", model).Str("category", category).Msg("completion ok")
	return models.ChatResponse{Reply: reply, Image: image}, nil
}

// normalizeHistory maps local roles onto the provider's. Older site clients
// send "bot" for assistant turns.
func normalizeHistory(history []models.ChatMessage) []models.ChatMessage {
	out := make([]models.ChatMessage, 0, len(history))
	for _, m := range history {
		role := "user"
		if m.Role == "assistant" || m.Role == "bot" {
			role = "assistant"
		}
		out = append(out, models.ChatMessage{Role: role, Content: m.Content})
	}
	return out
}
