package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/aretw0/doro/pkg/domain"
)

// Resources implements ports.ResourceProvider by indexing a directory tree.
// Each direct subdirectory of Root is an asset key (e.g. Root/Idle/*.gif)
// and its animation and audio files, sorted by name, are the assets of that key.
// Callers separate the two with domain.KindOf.
// Asset identifiers are absolute file paths.
type Resources struct {
	Root string

	mu     sync.RWMutex
	assets map[string][]string
}

// NewResources indexes root. A missing root yields an empty index.
func NewResources(root string) (*Resources, error) {
	r := &Resources{Root: root}
	if err := r.Rescan(); err != nil {
		return nil, err
	}
	return r, nil
}

// Rescan rebuilds the index from disk.
func (r *Resources) Rescan() error {
	index := make(map[string][]string)

	entries, err := os.ReadDir(r.Root)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to list assets: %w", err)
	}
	absRoot, err := filepath.Abs(r.Root)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		key := entry.Name()
		files, err := os.ReadDir(filepath.Join(r.Root, key))
		if err != nil {
			return fmt.Errorf("failed to list assets of %s: %w", key, err)
		}
		var list []string
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			if _, ok := domain.KindOf(f.Name()); !ok {
				continue
			}
			list = append(list, filepath.Join(absRoot, key, f.Name()))
		}
		if len(list) > 0 {
			sort.Strings(list) // Deterministic order
			index[key] = list
		}
	}

	r.mu.Lock()
	r.assets = index
	r.mu.Unlock()
	return nil
}

// Assets returns the files indexed under key.
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

// Keys returns the indexed keys, sorted.
func (r *Resources) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.assets))
	for k := range r.assets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Watch rescans whenever files change under Root and signals afterwards.
// Key directories created after Watch starts are picked up on the next
// change to Root itself.
func (r *Resources) Watch(ctx context.Context) (<-chan struct{}, error) {
	dirs := []string{r.Root}
	for _, key := range r.Keys() {
		dirs = append(dirs, filepath.Join(r.Root, key))
	}
	raw, err := watchPaths(ctx, dirs, func(string) bool { return true })
	if err != nil {
		return nil, err
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		for range raw {
			if err := r.Rescan(); err != nil {
				continue
			}
			select {
			case out <- struct{}{}:
			default:
			}
		}
	}()
	return out, nil
}
