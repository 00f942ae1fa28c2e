package testutils

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/doro"
	"github.com/aretw0/doro/pkg/adapters/memory"
	"github.com/aretw0/doro/pkg/config"
	"github.com/aretw0/doro/pkg/ports"
	"github.com/aretw0/doro/pkg/runner"
	"github.com/aretw0/doro/pkg/scheduler"
)

// WriteAsset creates root/key/name with placeholder content and returns its absolute path.
// It fails the test immediately on error.
func WriteAsset(t *testing.T, root, key, name string) string {
	t.Helper()

	dir := filepath.Join(root, key)
	require.NoError(t, os.MkdirAll(dir, 0755), "Failed to create asset dir")
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644), "Failed to write asset")

	abs, err := filepath.Abs(path)
	require.NoError(t, err, "Failed to get absolute path for asset")
	return abs
}

// RecorderSinks routes every capability to rec.
func RecorderSinks(rec *memory.Recorder) doro.Sinks {
	return doro.Sinks{Animation: rec, Audio: rec, Mover: rec, Info: rec}
}

// ManualPet builds a pet on a manual clock starting at the Unix epoch, with
// every capability recorded by rec and random movement disabled so tests
// only see the transitions they drive. Extra options are applied last.
func ManualPet(rec *memory.Recorder, opts ...doro.Option) *doro.Pet {
	base := []doro.Option{
		doro.WithClock(scheduler.NewManualClock(time.Unix(0, 0))),
		doro.WithSinks(RecorderSinks(rec)),
		doro.WithConfig(config.New(ports.ConfigValues{
			config.SectionWorkspace: {config.OptAllowRandomMovement: false},
		})),
	}
	return doro.New(append(base, opts...)...)
}

// StartRunner runs r in the background until the test ends, then checks that
// it stopped cleanly.
func StartRunner(t *testing.T, r *runner.Runner) *runner.Runner {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- r.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-errCh:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("runner did not stop")
		}
	})
	return r
}
