package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/aretw0/doro/pkg/domain"
)

// StreamManager fans state changes out to active SSE connections.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[chan string]struct{}
}

func NewStreamManager() *StreamManager {
	return &StreamManager{
		subscribers: make(map[chan string]struct{}),
	}
}

// Subscribe registers a new listener. The returned func unregisters it and
// closes the channel.
func (sm *StreamManager) Subscribe() (<-chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	sm.subscribers[ch] = struct{}{}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			sm.mu.Lock()
			defer sm.mu.Unlock()
			delete(sm.subscribers, ch)
			close(ch)
		})
	}
}

// Len returns the number of active listeners.
func (sm *StreamManager) Len() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.subscribers)
}

// Broadcast sends msg to every listener without blocking.
func (sm *StreamManager) Broadcast(msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for ch := range sm.subscribers {
		select {
		case ch <- msg:
		default:
			// Slow client
			slog.Warn("SSE: Client buffer full, dropping message")
		}
	}
}

// StateChange is the payload published on every state entry.
type StateChange struct {
	domain.StateEvent
	Kind string `json:"kind"`
}

// Hooks returns lifecycle hooks that publish state entries and exits.
func (sm *StreamManager) Hooks() domain.LifecycleHooks {
	publish := func(kind string, e *domain.StateEvent) {
		data, err := json.Marshal(StateChange{StateEvent: *e, Kind: kind})
		if err != nil {
			slog.Error("SSE: encode state change failed", "err", err)
			return
		}
		sm.Broadcast(string(data))
	}
	return domain.LifecycleHooks{
		OnStateEnter: func(ctx context.Context, e *domain.StateEvent) { publish("enter", e) },
		OnStateExit:  func(ctx context.Context, e *domain.StateEvent) { publish("exit", e) },
	}
}
