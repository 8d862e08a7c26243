package chat

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/chat"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/pkg/openai"
)

type ChatServiceImpl struct {
	client *openai.Client
}

func NewChatService(client *openai.Client) chat.ChatService {
	return &ChatServiceImpl{client: client}
}

// Complete forwards the message to the upstream model and returns its text.
// Upstream errors pass through untouched; the handler turns them into the
// HTTP 500 error body.
func (s *ChatServiceImpl) Complete(ctx context.Context, req chat.CompletionRequest) (*chat.CompletionResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, chat.ErrMissingMessage
	}

	requestID := uuid.NewString()
	slog.Debug("chat completion requested", "request_id", requestID, "message_len", len(req.Message))

	text, err := s.client.Complete(ctx, req.Message)
	if err != nil {
		slog.Error("chat completion failed", "request_id", requestID, "error", err)
		return nil, err
	}

	return &chat.CompletionResponse{Text: text}, nil
}
