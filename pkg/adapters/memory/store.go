package memory

import (
	"context"
	"sync"

	"github.com/aretw0/doro/pkg/ports"
)

// ConfigStore implements ports.ConfigStore and ports.Watchable in memory.
// Safe for concurrent use.
type ConfigStore struct {
	mu       sync.RWMutex
	data     ports.ConfigValues
	watchers []chan struct{}
}

// NewConfigStore creates an empty store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{data: ports.ConfigValues{}}
}

// Load returns a copy of the stored values.
func (s *ConfigStore) Load(ctx context.Context) (ports.ConfigValues, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone(), nil
}

// Save replaces the stored values and notifies watchers.
func (s *ConfigStore) Save(ctx context.Context, values ports.ConfigValues) error {
	// Deep copy to ensure isolation, similar to serialization
	copied := values.Clone()

	s.mu.Lock()
	s.data = copied
	watchers := append([]chan struct{}(nil), s.watchers...)
	s.mu.Unlock()

	for _, ch := range watchers {
		select {
		case ch <- struct{}{}:
		default: // a notification is already pending
		}
	}
	return nil
}

// Watch returns a channel that receives a value after every Save.
// The channel is closed when ctx is done.
func (s *ConfigStore) Watch(ctx context.Context) (<-chan struct{}, error) {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.watchers = append(s.watchers, ch)
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, w := range s.watchers {
			if w == ch {
				s.watchers = append(s.watchers[:i], s.watchers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}
