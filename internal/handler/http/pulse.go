package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/pulse"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/handler/http/response"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/pkg/sse"
)

type PulseHandler interface {
	// GetSnapshot returns the combined dashboard payload
	GetSnapshot(w http.ResponseWriter, r *http.Request)
	// ListEmployees returns the roster, optionally filtered by ?search=
	ListEmployees(w http.ResponseWriter, r *http.Request)
	// ListExceptions returns the ranked exception feed
	ListExceptions(w http.ResponseWriter, r *http.Request)
	// GetHeader returns header counts and status sentence
	GetHeader(w http.ResponseWriter, r *http.Request)
	// Dismiss hides an exception id
	Dismiss(w http.ResponseWriter, r *http.Request)
	// Snooze hides an exception id for a duration
	Snooze(w http.ResponseWriter, r *http.Request)
	// Events streams snapshot updates over SSE
	Events(w http.ResponseWriter, r *http.Request)
}

type pulseHandlerImpl struct {
	pulseService pulse.PulseService
	hub          *sse.Hub
}

func NewPulseHandler(pulseService pulse.PulseService, hub *sse.Hub) PulseHandler {
	return &pulseHandlerImpl{pulseService: pulseService, hub: hub}
}

// GetSnapshot handles GET /workforce/snapshot
func (h *pulseHandlerImpl) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	result, err := h.pulseService.GetSnapshot(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListEmployees handles GET /workforce/employees
func (h *pulseHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	result, err := h.pulseService.ListEmployees(r.Context(), search)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListExceptions handles GET /workforce/exceptions
func (h *pulseHandlerImpl) ListExceptions(w http.ResponseWriter, r *http.Request) {
	result, err := h.pulseService.ListExceptions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetHeader handles GET /workforce/header
func (h *pulseHandlerImpl) GetHeader(w http.ResponseWriter, r *http.Request) {
	result, err := h.pulseService.GetHeader(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Dismiss handles POST /workforce/exceptions/{id}/dismiss
func (h *pulseHandlerImpl) Dismiss(w http.ResponseWriter, r *http.Request) {
	exceptionID := chi.URLParam(r, "id")

	if err := h.pulseService.Dismiss(r.Context(), exceptionID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Exception dismissed", nil)
}

// Snooze handles POST /workforce/exceptions/{id}/snooze
func (h *pulseHandlerImpl) Snooze(w http.ResponseWriter, r *http.Request) {
	exceptionID := chi.URLParam(r, "id")

	var req pulse.SnoozeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body", nil)
		return
	}

	result, err := h.pulseService.Snooze(r.Context(), exceptionID, req.Duration)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Events handles GET /workforce/events. Streams one SSE message per
// simulation tick until the client disconnects.
func (h *pulseHandlerImpl) Events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	events, cleanup := h.hub.Subscribe()
	defer cleanup()

	// Send the current snapshot immediately so new clients do not wait a
	// full tick for their first paint.
	if snapshot, err := h.pulseService.GetSnapshot(r.Context()); err == nil {
		writeEvent(w, "snapshot", snapshot)
		flusher.Flush()
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-events:
			if !open {
				return
			}
			writeEvent(w, event.Event, event.Data)
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, event string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload)
}
