package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/doro"
	"github.com/aretw0/doro/internal/presentation/tui"
	"github.com/aretw0/doro/pkg/adapters/audio"
	"github.com/aretw0/doro/pkg/adapters/file"
	"github.com/aretw0/doro/pkg/adapters/terminal"
	"github.com/aretw0/doro/pkg/config"
	"github.com/aretw0/doro/pkg/domain"
	"github.com/aretw0/doro/pkg/ports"
	"github.com/aretw0/doro/pkg/runner"
)

// Run starts a pet on the terminal, or headless when no terminal is attached
// or opts.Headless is set. Headless pets read NDJSON events from Stdin.
func Run(opts RunOptions) error {
	sm := runner.NewSignalManager(context.Background())
	defer sm.Stop()
	ctx := sm.Context()

	interactive := !opts.Headless && isTerminal(os.Stdin) && isTerminal(os.Stdout)
	logger := createLogger(opts.Debug, opts.JSONLogs, os.Stderr)

	store := file.NewConfigStore(opts.ConfigPath)
	cfg, settings, err := loadConfig(ctx, store)
	if err != nil {
		return err
	}
	theme := settings.ThemePalette()

	res, err := openResources(opts.AssetsDir)
	if err != nil {
		return err
	}

	var (
		display *terminal.Display
		sinks   doro.Sinks
		hooks   []domain.LifecycleHooks
		labels  func(string) ports.TextSink
	)
	if interactive {
		display, err = terminal.Open(terminal.WithTheme(theme))
		if err != nil {
			return fmt.Errorf("failed to open terminal: %w", err)
		}
		defer display.Close()
		sinks = doro.Sinks{Animation: display, Mover: display, Info: display}
		hooks = append(hooks, display.Hooks())
		labels = display.Label
	} else {
		tui.PrintBanner(os.Stderr, doro.Version, theme)
		printSystemMessage(os.Stderr, "Headless pet reading events from stdin.")
		hs := newHeadlessSinks(logger)
		sinks = doro.Sinks{Animation: hs, Audio: hs, Mover: hs, Info: hs}
		labels = hs.Label
	}

	if !opts.Mute {
		player := audio.NewPlayer(audio.DefaultSampleRate)
		if err := player.Init(); err != nil {
			logger.Warn("audio unavailable", "err", err)
		} else {
			defer player.Close()
			sinks.Audio = player
		}
	}

	pet := createPet(petParts{
		logger:    logger,
		cfg:       cfg,
		resources: res,
		sinks:     sinks,
		hooks:     hooks,
		labels:    labels,
	})

	runnerOpts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithConfigStore(store),
	}
	if display != nil {
		runnerOpts = append(runnerOpts, runner.WithAfterDispatch(func() {
			display.SetTheme(domain.LookupTheme(cfg.String(config.SectionTheme, config.OptCurrent, domain.DefaultTheme)))
		}))
	}
	r := runner.New(pet, runnerOpts...)

	if res != nil {
		go watchResources(ctx, res, logger)
	}
	if !opts.NoStats {
		go feedStats(ctx, r, logger)
	}

	runErr := make(chan error, 1)
	go func() { runErr <- r.Run(ctx) }()

	var pumpErr error
	if interactive {
		pumpErr = display.Pump(ctx, r.Send)
	} else {
		go func() {
			if err := pumpJSON(ctx, os.Stdin, os.Stdout, r.Send); err != nil && !isInterrupted(err) {
				logger.Error("input stopped", "err", err)
			}
		}()
		<-ctx.Done()
	}

	sm.Stop()
	err = <-runErr
	if err == nil {
		err = pumpErr
	}
	return handleExecutionError(err)
}
