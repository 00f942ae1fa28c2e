package runner

import (
	"log/slog"

	"github.com/aretw0/doro/pkg/ports"
)

// DefaultQueueSize is the default number of work items buffered for the dispatch sequence.
const DefaultQueueSize = 64

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithConfigStore loads configuration from store before the pet starts and
// reloads it on Reload. If store also implements ports.Watchable, changes are
// picked up automatically while the runner is running.
func WithConfigStore(store ports.ConfigStore) Option {
	return func(r *Runner) {
		r.store = store
	}
}

// WithQueueSize sets the capacity of the work queue.
func WithQueueSize(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.queueSize = n
		}
	}
}

// WithAfterDispatch registers a callback run on the sequence after every
// work item and timer batch (e.g. to flush a screen).
func WithAfterDispatch(fn func()) Option {
	return func(r *Runner) {
		r.afterDispatch = fn
	}
}

// WithInterceptor adds an event interceptor. Interceptors run on the sequence,
// in registration order, before the pet sees the event.
func WithInterceptor(interceptor EventInterceptor) Option {
	return func(r *Runner) {
		r.interceptors = append(r.interceptors, interceptor)
	}
}
