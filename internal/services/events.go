package services

import (
	"sync"

	"github.com/sitedesk/sitedesk/internal/store"
)

// WorkspaceEvent is a real-time state-change notification pushed to
// connected dashboard clients.
type WorkspaceEvent struct {
	Entity    string `json:"entity"` // project, task, deal, message, notification
	Action    string `json:"action"` // created, updated, deleted
	ID        int64  `json:"id"`
	ProjectID int64  `json:"project_id,omitempty"`
}

// EventHub manages SSE client connections and event broadcasting. It also
// implements store.EventSink so the store can publish directly into it.
type EventHub struct {
	clients map[string]chan WorkspaceEvent
	mu      sync.RWMutex
}

// NewEventHub creates a new event hub instance
func NewEventHub() *EventHub {
	return &EventHub{
		clients: make(map[string]chan WorkspaceEvent),
	}
}

// Subscribe registers a new client and returns a channel for receiving events
func (h *EventHub) Subscribe(clientID string) <-chan WorkspaceEvent {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Buffered so a slow reader never blocks a store mutation
	ch := make(chan WorkspaceEvent, 100)
	h.clients[clientID] = ch
	return ch
}

// Unsubscribe removes a client from the hub
func (h *EventHub) Unsubscribe(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.clients[clientID]; ok {
		close(ch)
		delete(h.clients, clientID)
	}
}

// Publish broadcasts a store change to all connected clients. Satisfies
// store.EventSink.
func (h *EventHub) Publish(ev store.ChangeEvent) {
	h.Broadcast(WorkspaceEvent{
		Entity:    ev.Entity,
		Action:    ev.Action,
		ID:        ev.ID,
		ProjectID: ev.ProjectID,
	})
}

// Broadcast sends an event to every connected client.
func (h *EventHub) Broadcast(event WorkspaceEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.clients {
		// Non-blocking send - drop event if client buffer is full
		select {
		case ch <- event:
		default:
			// Client is slow, skip this event
		}
	}
}

// ClientCount returns the number of connected clients
func (h *EventHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
