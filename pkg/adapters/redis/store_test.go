package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/doro/pkg/adapters/redis"
	"github.com/aretw0/doro/pkg/config"
	"github.com/aretw0/doro/pkg/ports"
)

func newStore(t *testing.T, opts ...redis.Option) (*redis.ConfigStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	store := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRedisConfigStore_Contract(t *testing.T) {
	store, _ := newStore(t)
	ports.RunConfigStoreContract(t, store)
}

func TestRedisConfigStore_Layout(t *testing.T) {
	store, mr := newStore(t, redis.WithPrefix("pet:"))
	ctx := context.Background()

	require.NoError(t, store.Ping(ctx))
	require.NoError(t, store.Save(ctx, ports.ConfigValues{
		"Random": {"Interval": 7, "WalkWeight": 2},
	}))

	assert.Equal(t, "7", mr.HGet("pet:Random", "Interval"))
	members, err := mr.SMembers("pet:sections")
	require.NoError(t, err)
	assert.Equal(t, []string{"Random"}, members)
}

func TestRedisConfigStore_StringsCoerce(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, ports.ConfigValues{
		config.SectionWorkspace: {config.OptAllowRandomMovement: false},
		config.SectionRandom:    {config.OptInterval: 12},
	}))
	values, err := store.Load(ctx)
	require.NoError(t, err)

	cfg := config.New(values)
	assert.False(t, cfg.Bool(config.SectionWorkspace, config.OptAllowRandomMovement, true))
	assert.Equal(t, 12, cfg.Int(config.SectionRandom, config.OptInterval, 0))
}

func TestRedisConfigStore_Watch(t *testing.T) {
	store, _ := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := store.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), ports.ConfigValues{"Theme": {"Current": "orange"}}))

	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a change notification")
	}

	cancel()
	select {
	case _, ok := <-changes:
		assert.False(t, ok, "channel should be closed after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("channel was not closed")
	}
}
