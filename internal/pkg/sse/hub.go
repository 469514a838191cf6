// Package sse implements an in-process fan-out hub for server-sent events.
package sse

import "sync"

const streamBuffer = 16

// Event is a named payload pushed to a user's live streams.
type Event struct {
	Name string
	Data any
}

// Hub routes events to the open streams of each user. Publishing never
// blocks: a stream that cannot keep up drops events instead of stalling the
// producer.
type Hub struct {
	mu      sync.RWMutex
	nextID  int
	streams map[string]map[int]chan Event
}

func NewHub() *Hub {
	return &Hub{streams: make(map[string]map[int]chan Event)}
}

// Subscribe opens a stream for userID. The returned cancel func closes the
// stream and must be called exactly once.
func (h *Hub) Subscribe(userID string) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	ch := make(chan Event, streamBuffer)

	if h.streams[userID] == nil {
		h.streams[userID] = make(map[int]chan Event)
	}
	h.streams[userID][id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if userStreams, ok := h.streams[userID]; ok {
			if ch, ok := userStreams[id]; ok {
				delete(userStreams, id)
				close(ch)
			}
			if len(userStreams) == 0 {
				delete(h.streams, userID)
			}
		}
	}

	return ch, cancel
}

// Publish delivers event to every open stream of userID.
func (h *Hub) Publish(userID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.streams[userID] {
		select {
		case ch <- event:
		default:
			// slow consumer, drop
		}
	}
}
