package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aretw0/doro"
	"github.com/aretw0/doro/internal/logging"
	"github.com/aretw0/doro/internal/presentation/tui"
	"github.com/aretw0/doro/pkg/adapters/file"
	httpAdapter "github.com/aretw0/doro/pkg/adapters/http"
	"github.com/aretw0/doro/pkg/adapters/redis"
	"github.com/aretw0/doro/pkg/domain"
	"github.com/aretw0/doro/pkg/observability"
	"github.com/aretw0/doro/pkg/ports"
	"github.com/aretw0/doro/pkg/runner"
)

const shutdownTimeout = 5 * time.Second

// Serve runs a headless pet behind the HTTP control API until SIGINT or SIGTERM.
func Serve(opts ServeOptions) error {
	sm := runner.NewSignalManager(context.Background())
	defer sm.Stop()
	ctx := sm.Context()

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	logger := logging.NewWith(logging.Options{Level: level, JSON: opts.JSONLogs})

	store, closeStore, err := openStore(ctx, opts)
	if err != nil {
		return err
	}
	defer closeStore()

	cfg, settings, err := loadConfig(ctx, store)
	if err != nil {
		return err
	}
	res, err := openResources(opts.AssetsDir)
	if err != nil {
		return err
	}

	metrics := observability.NewMetrics()
	streams := httpAdapter.NewStreamManager()
	hs := newHeadlessSinks(logger)

	pet := createPet(petParts{
		logger:    logger,
		cfg:       cfg,
		resources: res,
		sinks:     doro.Sinks{Animation: hs, Audio: hs, Mover: hs, Info: hs},
		hooks:     []domain.LifecycleHooks{metrics.Hooks(), streams.Hooks()},
		labels:    hs.Label,
	})
	r := runner.New(pet,
		runner.WithLogger(logger),
		runner.WithConfigStore(store),
		runner.WithInterceptor(runner.LoggingInterceptor(logger)),
	)

	srv := &http.Server{
		Addr: opts.Addr,
		Handler: httpAdapter.NewHandler(r,
			httpAdapter.WithMetrics(metrics.Handler()),
			httpAdapter.WithStreams(streams),
			httpAdapter.WithLogger(logger),
		),
	}

	if res != nil {
		go watchResources(ctx, res, logger)
	}
	if !opts.NoStats {
		go feedStats(ctx, r, logger)
	}

	runErr := make(chan error, 1)
	go func() { runErr <- r.Run(ctx) }()

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		tui.PrintBanner(os.Stderr, doro.Version, settings.ThemePalette())
		tui.PrintStatus(os.Stderr, settings.ThemePalette(), "listening", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		sm.Stop()
		<-runErr
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		printSystemMessage(os.Stderr, "Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
			_ = srv.Close()
		}
		if err := <-serverErrors; err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("listener stopped", "err", err)
		}
		return handleExecutionError(<-runErr)
	}
}

// openStore picks the Redis store when an address is given, the YAML file otherwise.
func openStore(ctx context.Context, opts ServeOptions) (ports.ConfigStore, func(), error) {
	if opts.RedisAddr == "" {
		return file.NewConfigStore(opts.ConfigPath), func() {}, nil
	}
	var redisOpts []redis.Option
	if opts.RedisPrefix != "" {
		redisOpts = append(redisOpts, redis.WithPrefix(opts.RedisPrefix))
	}
	store := redis.New(opts.RedisAddr, os.Getenv("DORO_REDIS_PASSWORD"), 0, redisOpts...)
	if err := store.Ping(ctx); err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", opts.RedisAddr, err)
	}
	return store, func() { store.Close() }, nil
}
