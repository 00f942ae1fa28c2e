package ports

import "context"

// ResourceProvider resolves an asset key to the identifiers available for it.
// The returned slice is ordered and may be empty; callers must not modify it.
// A key may hold both animations and audio; domain.KindOf tells them apart.
type ResourceProvider interface {
	Assets(key string) []string
}

// Watchable defines an interface for backends that can notify about changes.
// It is used to hot-reload configuration without restarting the pet.
type Watchable interface {
	// Watch returns a channel that is signaled when the underlying data changes.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
