package doro

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/aretw0/doro/internal/runtime"
	"github.com/aretw0/doro/pkg/config"
	"github.com/aretw0/doro/pkg/domain"
	"github.com/aretw0/doro/pkg/ports"
	"github.com/aretw0/doro/pkg/scheduler"
)

// Sinks groups the capability sinks a Pet drives. Nil members do nothing.
type Sinks = runtime.Sinks

// Pet is the high-level entry point of the library.
// It wraps the internal state machine together with its scheduler and configuration.
type Pet struct {
	machine   *runtime.Machine
	sched     *scheduler.Scheduler
	config    *config.Config
	resources ports.ResourceProvider
	sinks     Sinks
	hooks     domain.LifecycleHooks
	rng       *rand.Rand
	logger    *slog.Logger
	Name      string
}

// Option defines a functional option for configuring the Pet.
type Option func(*Pet)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(p *Pet) {
		p.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the pet.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pet) {
		p.logger = logger
	}
}

// WithSinks sets the capability sinks.
func WithSinks(sinks Sinks) Option {
	return func(p *Pet) {
		p.sinks = sinks
	}
}

// WithResources sets the asset provider.
func WithResources(r ports.ResourceProvider) Option {
	return func(p *Pet) {
		p.resources = r
	}
}

// WithConfig sets the configuration. The Pet reads it on every UpdateConfig.
func WithConfig(c *config.Config) Option {
	return func(p *Pet) {
		p.config = c
	}
}

// WithClock drives the pet's timers from clock. Use scheduler.ManualClock for virtual time.
func WithClock(clock scheduler.Clock) Option {
	return func(p *Pet) {
		p.sched = scheduler.New(clock)
	}
}

// WithScheduler shares an existing scheduler.
func WithScheduler(s *scheduler.Scheduler) Option {
	return func(p *Pet) {
		p.sched = s
	}
}

// WithRand sets the random source used for asset and behavior choices.
func WithRand(r *rand.Rand) Option {
	return func(p *Pet) {
		p.rng = r
	}
}

// WithName labels the pet in log records.
func WithName(name string) Option {
	return func(p *Pet) {
		p.Name = name
	}
}

// New creates a Pet. It does not enter any state until Start.
func New(opts ...Option) *Pet {
	p := &Pet{}
	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if p.Name != "" {
		p.logger = p.logger.With("pet", p.Name)
	}
	if p.config == nil {
		p.config = config.New()
	}
	if p.sched == nil {
		p.sched = scheduler.New(nil)
	}

	machineOpts := []runtime.MachineOption{
		runtime.WithLogger(p.logger),
		runtime.WithConfig(p.config),
		runtime.WithScheduler(p.sched),
		runtime.WithSinks(p.sinks),
		runtime.WithLifecycleHooks(p.hooks),
	}
	if p.resources != nil {
		machineOpts = append(machineOpts, runtime.WithResources(p.resources))
	}
	if p.rng != nil {
		machineOpts = append(machineOpts, runtime.WithRand(p.rng))
	}
	p.machine = runtime.NewMachine(machineOpts...)
	return p
}

// Start enters the base IDLE state.
func (p *Pet) Start(ctx context.Context) {
	p.machine.Start(ctx)
}

// HandleEvent routes a pointer event to the active state and reports whether it was consumed.
func (p *Pet) HandleEvent(ev domain.Event) bool {
	return p.machine.HandleEvent(ev)
}

// TransitionTo replaces the active state. The base IDLE is never replaced by
// another state; a transition away from it stacks on top instead.
func (p *Pet) TransitionTo(state domain.PetState) {
	p.machine.TransitionTo(state)
}

// PushState suspends the active state and enters state on top of it.
func (p *Pet) PushState(state domain.PetState) {
	p.machine.PushState(state)
}

// PopState returns to the previous state. It is a no-op on the base state.
func (p *Pet) PopState() {
	p.machine.PopState()
}

// UpdateConfig makes every state re-read the configuration.
func (p *Pet) UpdateConfig() {
	p.machine.UpdateConfig()
}

// Current returns the active state.
func (p *Pet) Current() domain.PetState {
	return p.machine.Current()
}

// Stack returns the state stack, bottom first.
func (p *Pet) Stack() []domain.PetState {
	return p.machine.Stack()
}

// Bind attaches a text widget to a key of the info panel (see domain.LabelCPU and friends).
func (p *Pet) Bind(key string, sink ports.TextSink) {
	p.machine.Bind(key, sink)
}

// UpdateInfo sets the text of the widget bound to key.
func (p *Pet) UpdateInfo(key, text string) bool {
	return p.machine.UpdateInfo(key, text)
}

// Scheduler returns the scheduler driving the pet's timers.
func (p *Pet) Scheduler() *scheduler.Scheduler {
	return p.sched
}

// Config returns the live configuration.
func (p *Pet) Config() *config.Config {
	return p.config
}

// Logger returns the pet's logger.
func (p *Pet) Logger() *slog.Logger {
	return p.logger
}
