package redis

import (
	"context"
	"fmt"
	"sort"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/doro/pkg/ports"
)

const defaultPrefix = "doro:config:"

// ConfigStore implements ports.ConfigStore and ports.Watchable using Redis.
// Each section is a hash; values come back as strings and are coerced by
// config.Config on read. Every Save publishes on a change channel.
type ConfigStore struct {
	client *backend.Client
	prefix string
}

type Option func(*ConfigStore)

// WithPrefix sets the key prefix for sections.
func WithPrefix(prefix string) Option {
	return func(s *ConfigStore) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *ConfigStore {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *ConfigStore {
	store := &ConfigStore{
		client: client,
		prefix: defaultPrefix,
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *ConfigStore) key(section string) string {
	return s.prefix + section
}

func (s *ConfigStore) indexKey() string {
	return s.prefix + "sections"
}

func (s *ConfigStore) channel() string {
	return s.prefix + "changed"
}

// Load reads every indexed section hash.
func (s *ConfigStore) Load(ctx context.Context) (ports.ConfigValues, error) {
	sections, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	sort.Strings(sections)

	values := make(ports.ConfigValues, len(sections))
	if len(sections) == 0 {
		return values, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*backend.MapStringStringCmd, len(sections))
	for i, section := range sections {
		cmds[i] = pipe.HGetAll(ctx, s.key(section))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to read config from redis: %w", err)
	}

	for i, section := range sections {
		fields := cmds[i].Val()
		opts := make(map[string]any, len(fields))
		for k, v := range fields {
			opts[k] = v
		}
		values[section] = opts
	}
	return values, nil
}

// Save replaces all sections atomically and notifies watchers.
func (s *ConfigStore) Save(ctx context.Context, values ports.ConfigValues) error {
	old, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return fmt.Errorf("failed to list sections: %w", err)
	}

	pipe := s.client.TxPipeline()

	// 1. Drop the previous sections and the index
	for _, section := range old {
		pipe.Del(ctx, s.key(section))
	}
	pipe.Del(ctx, s.indexKey())

	// 2. Write the new sections
	for section, opts := range values {
		if len(opts) == 0 {
			continue
		}
		fields := make(map[string]any, len(opts))
		for k, v := range opts {
			fields[k] = fmt.Sprint(v)
		}
		pipe.HSet(ctx, s.key(section), fields)
		pipe.SAdd(ctx, s.indexKey(), section)
	}

	// 3. Tell watchers
	pipe.Publish(ctx, s.channel(), "saved")

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Watch subscribes to the change channel. The returned channel is closed
// when ctx is done.
func (s *ConfigStore) Watch(ctx context.Context) (<-chan struct{}, error) {
	sub := s.client.Subscribe(ctx, s.channel())
	// Wait for the subscription to be confirmed so no Save is missed.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer sub.Close()
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-msgs:
				if !ok {
					return
				}
				select {
				case out <- struct{}{}:
				default: // a notification is already pending
				}
			}
		}
	}()
	return out, nil
}

// Ping checks the connection.
func (s *ConfigStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the redis client.
func (s *ConfigStore) Close() error {
	return s.client.Close()
}
