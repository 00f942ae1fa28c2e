package ports

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunConfigStoreContract runs a suite of tests to verify that a ConfigStore implementation
// adheres to the defined interface contract.
// Stores may return values as strings (e.g. redis hashes), so values are compared by their
// formatted representation.
func RunConfigStoreContract(t *testing.T, store ConfigStore) {
	ctx := context.Background()

	t.Run("Load Empty", func(t *testing.T) {
		values, err := store.Load(ctx)
		require.NoError(t, err, "Load on an empty store should not fail")
		assert.NotNil(t, values)
	})

	t.Run("Save and Load", func(t *testing.T) {
		values := ConfigValues{
			"Workspace": {"AllowRandomMovement": false},
			"Behavior":  {"ClickDurationMs": 1200},
			"Theme":     {"Current": "blue"},
		}
		require.NoError(t, store.Save(ctx, values), "Save should not return error")

		loaded, err := store.Load(ctx)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, "false", fmt.Sprint(loaded["Workspace"]["AllowRandomMovement"]))
		assert.Equal(t, "1200", fmt.Sprint(loaded["Behavior"]["ClickDurationMs"]))
		assert.Equal(t, "blue", fmt.Sprint(loaded["Theme"]["Current"]))
	})

	t.Run("Save Replaces", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, ConfigValues{"Theme": {"Current": "green"}}))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "green", fmt.Sprint(loaded["Theme"]["Current"]))
		assert.NotContains(t, loaded, "Behavior", "options from a previous Save should be gone")
	})
}
