package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/chat"
)

type ChatHandler interface {
	// Complete proxies a message to the language model
	Complete(w http.ResponseWriter, r *http.Request)
}

type chatHandlerImpl struct {
	chatService chat.ChatService
}

func NewChatHandler(chatService chat.ChatService) ChatHandler {
	return &chatHandlerImpl{chatService: chatService}
}

// Complete handles POST /chat. The wire shape is the dashboard's contract:
// {"text": ...} on success, {"error": ...} otherwise, without the standard
// envelope. Any upstream failure comes back verbatim with a 500.
func (h *chatHandlerImpl) Complete(w http.ResponseWriter, r *http.Request) {
	var req chat.CompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeChatError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	result, err := h.chatService.Complete(r.Context(), req)
	if err != nil {
		if errors.Is(err, chat.ErrMissingMessage) {
			writeChatError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeChatError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeChatJSON(w, http.StatusOK, result)
}

func writeChatJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeChatError(w http.ResponseWriter, statusCode int, message string) {
	writeChatJSON(w, statusCode, map[string]string{"error": message})
}
