package models

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant" ("bot" accepted from older clients)
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message         string        `json:"message"`
	Messages        []ChatMessage `json:"messages"`
	Category        string        `json:"category"`
	Model           string        `json:"model"`
	SelectedProject string        `json:"selectedProject"`
}

// ChatResponse is the reply from the assistant. Image is a site-relative
// asset path and is omitted entirely when no illustration was selected.
type ChatResponse struct {
	Reply string `json:"reply"`
	Image string `json:"image,omitempty"`
}

// ErrorResponse is the flat error body returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
