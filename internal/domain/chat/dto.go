package chat

// CompletionRequest is the assistant request body. Context is an optional
// free-form object accepted for forward compatibility; the proxy ignores it
// and forwards only the message.
type CompletionRequest struct {
	Message string         `json:"message"`
	Context map[string]any `json:"context,omitempty"`
}

// CompletionResponse carries the assistant's reply text.
type CompletionResponse struct {
	Text string `json:"text"`
}
