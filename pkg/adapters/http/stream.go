package http

import (
	"fmt"
	"net/http"
	"sync"
)

// SettingsEvent is pushed to a profile's subscribers when its settings change,
// so other open pages can stop or restart their tours. Value is only
// meaningful for "set".
type SettingsEvent struct {
	Type  string `json:"type"`
	Key   string `json:"key,omitempty"`
	Value bool   `json:"value"`
}

// StreamManager handles active SSE connections.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan<- string]struct{} // profile -> set of channels
}

func NewStreamManager() *StreamManager {
	return &StreamManager{
		subscribers: make(map[string]map[chan<- string]struct{}),
	}
}

func (sm *StreamManager) Subscribe(profile string) (chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	if _, ok := sm.subscribers[profile]; !ok {
		sm.subscribers[profile] = make(map[chan<- string]struct{})
	}
	sm.subscribers[profile][ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if subs, ok := sm.subscribers[profile]; ok {
			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(sm.subscribers, profile)
			}
		}
	}
}

// Subscribers returns the number of open streams for profile.
func (sm *StreamManager) Subscribers(profile string) int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.subscribers[profile])
}

// Broadcast sends msg to every stream of profile and returns how many slow
// clients missed it because their buffer was full.
func (sm *StreamManager) Broadcast(profile string, msg string) (dropped int) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for ch := range sm.subscribers[profile] {
		select {
		case ch <- msg:
		default:
			dropped++
		}
	}
	return dropped
}

// SubscribeEvents handles GET /profiles/{profile}/events (SSE).
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request, profile Profile) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.Logger.Error("SubscribeEvents: streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.Streams.Subscribe(profile)
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
