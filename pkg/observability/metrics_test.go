package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/doro"
	"github.com/aretw0/doro/pkg/domain"
	"github.com/aretw0/doro/pkg/observability"
	"github.com/aretw0/doro/pkg/scheduler"
)

func TestMetrics_FromPet(t *testing.T) {
	metrics := observability.NewMetrics()
	pet := doro.New(
		doro.WithClock(scheduler.NewManualClock(time.Unix(0, 0))),
		doro.WithLifecycleHooks(metrics.Hooks()),
	)
	pet.Start(context.Background())
	pet.HandleEvent(domain.Press(0, 0))
	pet.HandleEvent(domain.Release(0, 0))

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()

	assert.Contains(t, body, `doro_state_enters_total{state="CLICKED"} 1`)
	assert.Contains(t, body, `doro_state_enters_total{state="IDLE"} 1`)
	assert.Contains(t, body, `doro_events_total{consumed="true",state="IDLE",type="press"} 1`)
	assert.Contains(t, body, "doro_stack_depth 2")
	assert.NotContains(t, body, "doro_state_exits_total{")

	families, err := metrics.Registry().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestCombineHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	calls := 0
	counting := domain.LifecycleHooks{
		OnStateEnter: func(context.Context, *domain.StateEvent) { calls++ },
	}
	hooks := observability.CombineHooks(counting, observability.LoggingHooks(logger), domain.LifecycleHooks{})

	hooks.OnStateEnter(context.Background(), &domain.StateEvent{State: domain.StateDragging, Depth: 2})
	hooks.OnEvent(context.Background(), &domain.InputEvent{Event: domain.Move(1, 1), State: domain.StateDragging})

	assert.Equal(t, 1, calls)
	assert.Contains(t, buf.String(), "state_enter")
	assert.Contains(t, buf.String(), "state=DRAGGING")
	assert.Contains(t, buf.String(), "type=move")
	assert.NotNil(t, hooks.OnStateExit)
}
