package memory

import (
	"sort"
	"sync"
)

// Resources implements ports.ResourceProvider using an in-memory map.
// Safe for concurrent use.
type Resources struct {
	mu     sync.RWMutex
	assets map[string][]string
}

// NewResources creates a provider with the given asset lists, keyed by asset key.
func NewResources(data map[string][]string) *Resources {
	r := &Resources{assets: make(map[string][]string)}
	for k, v := range data {
		r.Set(k, v...)
	}
	return r
}

// Set replaces the assets registered under key. No assets removes the key.
func (r *Resources) Set(key string, assets ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(assets) == 0 {
		delete(r.assets, key)
		return
	}
	copied := make([]string, len(assets))
	copy(copied, assets)
	r.assets[key] = copied
}

// Assets returns a copy of the assets registered under key.
func (r *Resources) Assets(key string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list, ok := r.assets[key]
	if !ok {
		return nil
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Keys returns all registered keys, sorted.
func (r *Resources) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.assets))
	for k := range r.assets {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys
}
