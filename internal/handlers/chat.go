package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

type chatService interface {
	Ask(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)
}

type ChatHandler struct {
	chat chatService
}

func NewChatHandler(chat chatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Ask serves POST /api/chat.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Message is required"})
		return
	}

	resp, err := h.chat.Ask(r.Context(), req)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeErrorResponse(w http.ResponseWriter, err error) {
	switch e := err.(type) {
	case *services.ConfigError:
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: e.Message})
	case *services.TimeoutError:
		writeJSON(w, http.StatusRequestTimeout, models.ErrorResponse{Error: e.Message})
	case *services.ProviderError:
		msg := e.Message
		if underlying := e.Unwrap(); underlying != nil {
			msg = fmt.Sprintf("%s: %v", e.Message, underlying)
		}
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: msg})
	default:
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to process chat message"})
	}
}
