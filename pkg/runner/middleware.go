package runner

import (
	"context"
	"log/slog"

	"github.com/aretw0/doro/pkg/domain"
)

// EventInterceptor can inspect or block an event before it reaches the pet.
// It returns true if the event should be dispatched.
type EventInterceptor func(ctx context.Context, ev domain.Event) bool

// MultiInterceptor chains multiple interceptors. The first one that blocks wins.
func MultiInterceptor(interceptors ...EventInterceptor) EventInterceptor {
	return func(ctx context.Context, ev domain.Event) bool {
		for _, interceptor := range interceptors {
			if !interceptor(ctx, ev) {
				return false
			}
		}
		return true
	}
}

// ButtonFilter blocks presses and releases of any button not listed.
// Moves always pass.
func ButtonFilter(allowed ...domain.Button) EventInterceptor {
	set := make(map[domain.Button]bool, len(allowed))
	for _, b := range allowed {
		set[b] = true
	}
	return func(ctx context.Context, ev domain.Event) bool {
		if ev.Type == domain.EventMove {
			return true
		}
		return set[ev.Button]
	}
}

// LoggingInterceptor records every event at debug level and lets it through.
func LoggingInterceptor(logger *slog.Logger) EventInterceptor {
	return func(ctx context.Context, ev domain.Event) bool {
		logger.DebugContext(ctx, "event", "type", ev.Type.String(), "button", ev.Button.String(), "x", ev.X, "y", ev.Y)
		return true
	}
}
