package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

type fakeChatService struct {
	calls int
	resp  models.ChatResponse
	err   error
}

func (f *fakeChatService) Ask(_ context.Context, _ models.ChatRequest) (models.ChatResponse, error) {
	f.calls++
	return f.resp, f.err
}

func postChat(t *testing.T, h *ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Ask(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var e models.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&e))
	return e
}

func TestChatHandler_Success(t *testing.T) {
	fake := &fakeChatService{resp: models.ChatResponse{Reply: "Hi!", Image: "/images/chat/design.webp"}}
	h := NewChatHandler(fake)

	rr := postChat(t, h, `{"message":"what about the design system?","model":"gpt-4"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp models.ChatResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Hi!", resp.Reply)
	assert.Equal(t, "/images/chat/design.webp", resp.Image)
	assert.Equal(t, 1, fake.calls)
}

func TestChatHandler_MissingMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"empty message", `{"message":""}`},
		{"whitespace message", `{"message":"   "}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeChatService{}
			h := NewChatHandler(fake)

			rr := postChat(t, h, tc.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, "Message is required", decodeError(t, rr).Error)
			assert.Zero(t, fake.calls, "no provider call may happen for an invalid request")
		})
	}
}

func TestChatHandler_InvalidJSON(t *testing.T) {
	fake := &fakeChatService{}
	h := NewChatHandler(fake)

	rr := postChat(t, h, `{"message":`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, fake.calls)
}

func TestChatHandler_Timeout(t *testing.T) {
	fake := &fakeChatService{err: &services.TimeoutError{Message: "Request timed out, please try again"}}
	h := NewChatHandler(fake)

	rr := postChat(t, h, `{"message":"hello"}`)

	assert.Equal(t, http.StatusRequestTimeout, rr.Code)
	assert.Contains(t, decodeError(t, rr).Error, "timed out")
}

func TestChatHandler_ConfigError(t *testing.T) {
	fake := &fakeChatService{err: &services.ConfigError{Message: "AI service is not configured"}}
	h := NewChatHandler(fake)

	rr := postChat(t, h, `{"message":"hello"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "AI service is not configured", decodeError(t, rr).Error)
}

func TestChatHandler_ProviderErrorCarriesUnderlyingMessage(t *testing.T) {
	fake := &fakeChatService{err: &services.ProviderError{
		Message: "Error communicating with AI service",
		Err:     assert.AnError,
	}}
	h := NewChatHandler(fake)

	rr := postChat(t, h, `{"message":"hello"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decodeError(t, rr).Error
	assert.Contains(t, body, "Error communicating with AI service")
	assert.Contains(t, body, assert.AnError.Error())
}

func TestChatHandler_SuccessOmitsEmptyImage(t *testing.T) {
	fake := &fakeChatService{resp: models.ChatResponse{Reply: "Hi!"}}
	h := NewChatHandler(fake)

	rr := postChat(t, h, `{"message":"tell me about yourself"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(rr.Body.Bytes()), &raw))
	_, present := raw["image"]
	assert.False(t, present, "image key must be absent, not an empty sentinel")
}
