package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/doro/pkg/ports"
)

// DefaultConfigPath is used when NewConfigStore receives an empty path.
const DefaultConfigPath = "doro.yaml"

// debounce groups bursts of filesystem events (editors write in several steps).
const debounce = 50 * time.Millisecond

// ConfigStore implements ports.ConfigStore and ports.Watchable with a YAML file.
type ConfigStore struct {
	Path string
}

// NewConfigStore creates a store for the YAML file at path.
func NewConfigStore(path string) *ConfigStore {
	if path == "" {
		path = DefaultConfigPath
	}
	return &ConfigStore{Path: path}
}

// Load parses the file. A missing file yields empty values.
func (s *ConfigStore) Load(ctx context.Context) (ports.ConfigValues, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return ports.ConfigValues{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	values := ports.ConfigValues{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", s.Path, err)
	}
	if values == nil {
		values = ports.ConfigValues{}
	}
	return values, nil
}

// Save writes the values atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it to the destination.
func (s *ConfigStore) Save(ctx context.Context, values ports.ConfigValues) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure config directory: %w", err)
	}

	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// 1. Create Temp File
	// we use the same directory to ensure we are on the same filesystem (required for atomic rename)
	tmpFile, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(s.Path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op after a successful rename
	}()

	// 2. Write Data
	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	// 3. Fsync to ensure durability
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}

	// 4. Close File (cannot rename open file on Windows)
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// 5. Atomic Rename
	if err := os.Rename(tmpPath, s.Path); err != nil {
		return fmt.Errorf("failed to rename config file: %w", err)
	}
	return nil
}

// Watch reports changes to the config file. It watches the parent directory
// so that atomic renames and re-creations are seen.
func (s *ConfigStore) Watch(ctx context.Context) (<-chan struct{}, error) {
	abs, err := filepath.Abs(s.Path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	return watchPaths(ctx, []string{filepath.Dir(abs)}, func(name string) bool {
		return filepath.Clean(name) == abs
	})
}

// watchPaths starts an fsnotify watcher on dirs and emits a debounced signal
// for every event accepted by match.
func watchPaths(ctx context.Context, dirs []string, match func(name string) bool) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to start watcher: %w", err)
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	ch := make(chan struct{}, 1)
	go func() {
		defer close(ch)
		defer watcher.Close()

		timer := time.NewTimer(debounce)
		timer.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op == fsnotify.Chmod || !match(evt.Name) {
					continue
				}
				timer.Reset(debounce)
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case <-timer.C:
				select {
				case ch <- struct{}{}:
				default: // a notification is already pending
				}
			}
		}
	}()
	return ch, nil
}
