package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/doro"
	"github.com/aretw0/doro/internal/logging"
	"github.com/aretw0/doro/pkg/adapters/file"
	"github.com/aretw0/doro/pkg/adapters/sysinfo"
	"github.com/aretw0/doro/pkg/config"
	"github.com/aretw0/doro/pkg/domain"
	"github.com/aretw0/doro/pkg/observability"
	"github.com/aretw0/doro/pkg/ports"
	"github.com/aretw0/doro/pkg/runner"
)

// createLogger configures the application logger.
// Without debug only warnings and errors are written, to Stderr.
func createLogger(debug, jsonLogs bool, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return logging.NewWith(logging.Options{Level: level, JSON: jsonLogs, Output: w})
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// loadConfig reads the store once so presentation can be set up before the
// runner starts. The runner reloads the same store on Run.
func loadConfig(ctx context.Context, store ports.ConfigStore) (*config.Config, config.Settings, error) {
	values, err := store.Load(ctx)
	if err != nil {
		return nil, config.Settings{}, err
	}
	cfg := config.New(values)
	settings, err := cfg.Settings()
	if err != nil {
		return nil, config.Settings{}, err
	}
	return cfg, settings, nil
}

// openResources indexes dir. An empty dir means no assets at all.
func openResources(dir string) (*file.Resources, error) {
	if dir == "" {
		return nil, nil
	}
	res, err := file.NewResources(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to index assets: %w", err)
	}
	return res, nil
}

type petParts struct {
	logger    *slog.Logger
	cfg       *config.Config
	resources *file.Resources
	sinks     doro.Sinks
	hooks     []domain.LifecycleHooks
	labels    func(key string) ports.TextSink
}

// createPet builds a pet with CLI conventions: debug lifecycle logging and
// the info panel labels bound.
func createPet(p petParts) *doro.Pet {
	hooks := append([]domain.LifecycleHooks{observability.LoggingHooks(p.logger)}, p.hooks...)
	opts := []doro.Option{
		doro.WithName("doro"),
		doro.WithLogger(p.logger),
		doro.WithConfig(p.cfg),
		doro.WithSinks(p.sinks),
		doro.WithLifecycleHooks(observability.CombineHooks(hooks...)),
	}
	if p.resources != nil {
		opts = append(opts, doro.WithResources(p.resources))
	}
	pet := doro.New(opts...)
	if p.labels != nil {
		for _, key := range []string{domain.LabelCPU, domain.LabelMemory, domain.LabelNetwork} {
			pet.Bind(key, p.labels(key))
		}
	}
	return pet
}

// watchResources rescans the asset tree whenever it changes on disk.
func watchResources(ctx context.Context, res *file.Resources, logger *slog.Logger) {
	changes, err := res.Watch(ctx)
	if err != nil {
		logger.Warn("asset watch unavailable", "err", err)
		return
	}
	for range changes {
		logger.Info("assets rescanned", "root", res.Root, "keys", len(res.Keys()))
	}
}

// feedStats publishes host usage to the info panel until ctx is done.
func feedStats(ctx context.Context, r *runner.Runner, logger *slog.Logger) {
	sampler, err := sysinfo.New("")
	if err != nil {
		logger.Debug("host stats unavailable", "err", err)
		return
	}
	sampler.Run(ctx, sysinfo.DefaultInterval,
		func(key, text string) {
			if err := r.UpdateInfo(key, text); err != nil {
				logger.Debug("info update dropped", "key", key, "err", err)
			}
		},
		func(err error) { logger.Debug("host stats sample failed", "err", err) },
	)
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, domain.ErrRunnerStopped)
}

func handleExecutionError(err error) error {
	if err == nil || isInterrupted(err) {
		return nil
	}
	return err
}
