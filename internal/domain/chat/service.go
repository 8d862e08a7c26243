package chat

import "context"

// ChatService is a single request/response pass-through to the upstream
// language model. No retries, no streaming; upstream failures are returned
// verbatim to the caller.
type ChatService interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}
