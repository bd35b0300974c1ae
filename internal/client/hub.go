package client

import (
	"sync"
	"time"
)

// EventType identifies the type of hub event.
type EventType int

const (
	EventServerShutdown EventType = iota
)

// Event is sent from the hub to connected clients.
type Event struct {
	Type EventType
}

// Handle represents one client's registration with a Hub.
type Handle struct {
	ID       int
	Username string
	EventsCh chan Event
}

// Hub tracks connected clients so a server can notify them before it stops.
// Every client plays its own game; the hub shares nothing but the roster.
type Hub struct {
	mu      sync.RWMutex
	clients map[int]*Handle
	nextID  int
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[int]*Handle),
		nextID:  1,
	}
}

// Register adds a client and returns its handle.
func (h *Hub) Register(username string) *Handle {
	h.mu.Lock()
	defer h.mu.Unlock()

	handle := &Handle{
		ID:       h.nextID,
		Username: username,
		EventsCh: make(chan Event, 4),
	}
	h.nextID++
	h.clients[handle.ID] = handle
	return handle
}

// Unregister removes a client and closes its event channel.
func (h *Hub) Unregister(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if handle, ok := h.clients[id]; ok {
		close(handle.EventsCh)
		delete(h.clients, id)
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Shutdown notifies all connected clients and waits for them to disconnect,
// up to the given timeout. It reports whether every client left in time.
func (h *Hub) Shutdown(timeout time.Duration) bool {
	h.mu.RLock()
	for _, handle := range h.clients {
		select {
		case handle.EventsCh <- Event{Type: EventServerShutdown}:
		default:
		}
	}
	h.mu.RUnlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if h.Len() == 0 {
			return true
		}
		select {
		case <-deadline:
			return false
		case <-ticker.C:
		}
	}
}
