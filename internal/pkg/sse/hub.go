package sse

import (
	"sync"
)

// Event is a server-sent event payload.
type Event struct {
	Event string
	Data  interface{}
}

// Hub broadcasts events to every connected dashboard. There is no auth in
// this build, so subscribers are not keyed; everyone sees the same stream.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan Event]struct{}),
	}
}

// Subscribe registers a subscriber and returns its channel plus a cleanup
// function the caller must invoke when done.
func (h *Hub) Subscribe() (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)
	h.subscribers[ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers, ch)
		close(ch)
	}

	return ch, cleanup
}

// Broadcast sends an event to all subscribers. A subscriber with a full
// channel is skipped rather than blocking the sender.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// SubscriberCount returns the number of active subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
