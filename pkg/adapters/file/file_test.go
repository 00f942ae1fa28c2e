package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/doro/internal/testutils"
	"github.com/aretw0/doro/pkg/adapters/file"
	"github.com/aretw0/doro/pkg/ports"
	contract "github.com/aretw0/doro/pkg/ports/tests"
)

func TestFileConfigStore_Contract(t *testing.T) {
	store := file.NewConfigStore(filepath.Join(t.TempDir(), "nested", "doro.yaml"))
	ports.RunConfigStoreContract(t, store)
}

func TestFileConfigStore_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doro.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Random: [oops"), 0644))

	_, err := file.NewConfigStore(path).Load(context.Background())
	assert.Error(t, err)
}

func TestFileConfigStore_Watch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doro.yaml")
	store := file.NewConfigStore(path)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := store.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("Theme:\n  Current: green\n"), 0644))

	select {
	case <-changes:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a change notification")
	}

	values, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "green", values["Theme"]["Current"])
}

func TestFileResources_Contract(t *testing.T) {
	root := t.TempDir()
	idleA := testutils.WriteAsset(t, root, "Idle", "a.gif")
	idleB := testutils.WriteAsset(t, root, "Idle", "b.PNG")
	click := testutils.WriteAsset(t, root, "Click", "boop.wav")
	testutils.WriteAsset(t, root, "Idle", "notes.txt")
	testutils.WriteAsset(t, root, ".hidden", "x.gif")

	res, err := file.NewResources(root)
	require.NoError(t, err)

	contract.ResourceProviderContractTest(t, res, map[string][]string{
		"Idle":  {idleA, idleB},
		"Click": {click},
	})
	assert.Equal(t, []string{"Click", "Idle"}, res.Keys())
}

func TestFileResources_MissingRoot(t *testing.T) {
	res, err := file.NewResources(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, res.Keys())
}

func TestFileResources_Rescan(t *testing.T) {
	root := t.TempDir()
	res, err := file.NewResources(root)
	require.NoError(t, err)
	assert.Nil(t, res.Assets("Move"))

	walk := testutils.WriteAsset(t, root, "Move", "walk.gif")
	require.NoError(t, res.Rescan())
	assert.Equal(t, []string{walk}, res.Assets("Move"))
}

func TestFileResources_Watch(t *testing.T) {
	root := t.TempDir()
	testutils.WriteAsset(t, root, "Idle", "a.gif")
	res, err := file.NewResources(root)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changes, err := res.Watch(ctx)
	require.NoError(t, err)

	added := testutils.WriteAsset(t, root, "Idle", "b.gif")
	select {
	case <-changes:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a rescan notification")
	}
	assert.Contains(t, res.Assets("Idle"), added)
}
