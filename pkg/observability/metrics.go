package observability

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/doro/pkg/domain"
)

// Metrics records pet activity as Prometheus series.
type Metrics struct {
	registry    *prometheus.Registry
	stateEnters *prometheus.CounterVec
	stateExits  *prometheus.CounterVec
	events      *prometheus.CounterVec
	stackDepth  prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		stateEnters: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "doro_state_enters_total",
				Help: "Total number of state entries",
			},
			[]string{"state"},
		),
		stateExits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "doro_state_exits_total",
				Help: "Total number of state exits",
			},
			[]string{"state"},
		),
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "doro_events_total",
				Help: "Total number of pointer events routed to a state",
			},
			[]string{"type", "state", "consumed"},
		),
		stackDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "doro_stack_depth",
			Help: "Number of states on the stack",
		}),
	}
	m.registry.MustRegister(m.stateEnters, m.stateExits, m.events, m.stackDepth)
	return m
}

// Registry exposes the registry, e.g. to add process collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStateEnter: func(ctx context.Context, e *domain.StateEvent) {
			m.stateEnters.WithLabelValues(e.State.String()).Inc()
			m.stackDepth.Set(float64(e.Depth))
		},
		OnStateExit: func(ctx context.Context, e *domain.StateEvent) {
			m.stateExits.WithLabelValues(e.State.String()).Inc()
		},
		OnEvent: func(ctx context.Context, e *domain.InputEvent) {
			m.events.WithLabelValues(e.Event.Type.String(), e.State.String(), strconv.FormatBool(e.Consumed)).Inc()
		},
	}
}

// LoggingHooks returns hooks that write debug records for every state change and event.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStateEnter: func(ctx context.Context, e *domain.StateEvent) {
			logger.DebugContext(ctx, "state_enter", "state", e.State.String(), "depth", e.Depth)
		},
		OnStateExit: func(ctx context.Context, e *domain.StateEvent) {
			logger.DebugContext(ctx, "state_exit", "state", e.State.String(), "depth", e.Depth)
		},
		OnEvent: func(ctx context.Context, e *domain.InputEvent) {
			logger.DebugContext(ctx, "event",
				"type", e.Event.Type.String(),
				"state", e.State.String(),
				"consumed", e.Consumed,
			)
		},
	}
}

// CombineHooks returns hooks that call each of the given hooks in order.
func CombineHooks(all ...domain.LifecycleHooks) domain.LifecycleHooks {
	var combined domain.LifecycleHooks
	var enters, exits []func(context.Context, *domain.StateEvent)
	var events []func(context.Context, *domain.InputEvent)
	for _, h := range all {
		if h.OnStateEnter != nil {
			enters = append(enters, h.OnStateEnter)
		}
		if h.OnStateExit != nil {
			exits = append(exits, h.OnStateExit)
		}
		if h.OnEvent != nil {
			events = append(events, h.OnEvent)
		}
	}
	if len(enters) > 0 {
		combined.OnStateEnter = func(ctx context.Context, e *domain.StateEvent) {
			for _, fn := range enters {
				fn(ctx, e)
			}
		}
	}
	if len(exits) > 0 {
		combined.OnStateExit = func(ctx context.Context, e *domain.StateEvent) {
			for _, fn := range exits {
				fn(ctx, e)
			}
		}
	}
	if len(events) > 0 {
		combined.OnEvent = func(ctx context.Context, e *domain.InputEvent) {
			for _, fn := range events {
				fn(ctx, e)
			}
		}
	}
	return combined
}
