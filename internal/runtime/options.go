package runtime

import (
	"log/slog"
	"math/rand/v2"

	"github.com/aretw0/doro/pkg/domain"
	"github.com/aretw0/doro/pkg/ports"
	"github.com/aretw0/doro/pkg/scheduler"
)

// Sinks groups the capability sinks the handlers drive.
// Nil members are replaced by no-op implementations.
type Sinks struct {
	Animation ports.AnimationPlayer
	Audio     ports.AudioPlayer
	Mover     ports.Mover
	Info      ports.InfoDisplay
}

// MachineOption configures a Machine.
type MachineOption func(*Machine)

// WithSinks sets the capability sinks.
func WithSinks(s Sinks) MachineOption {
	return func(m *Machine) {
		m.sinks = s
	}
}

// WithResources sets the asset provider.
func WithResources(r ports.ResourceProvider) MachineOption {
	return func(m *Machine) {
		m.resources = r
	}
}

// WithConfig sets the configuration reader.
func WithConfig(c ports.ConfigReader) MachineOption {
	return func(m *Machine) {
		m.config = c
	}
}

// WithScheduler sets the timer scheduler shared with the dispatch sequence.
func WithScheduler(s *scheduler.Scheduler) MachineOption {
	return func(m *Machine) {
		m.sched = s
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) MachineOption {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) MachineOption {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// WithRand sets the random source used for asset and behavior selection.
func WithRand(r *rand.Rand) MachineOption {
	return func(m *Machine) {
		m.rng = r
	}
}

type nopSinks struct{}

func (nopSinks) PlayAnimation(string, bool) error { return nil }
func (nopSinks) PlayAudio(string) error           { return nil }
func (nopSinks) StopAudio()                       {}
func (nopSinks) RequestMove(int, int)             {}
func (nopSinks) SetInfoVisible(bool)              {}

type noResources struct{}

func (noResources) Assets(string) []string { return nil }
