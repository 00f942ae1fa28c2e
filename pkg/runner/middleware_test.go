package runner

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/doro/pkg/domain"
)

func TestMultiInterceptor(t *testing.T) {
	calls := 0
	pass := func(ctx context.Context, ev domain.Event) bool { calls++; return true }
	block := func(ctx context.Context, ev domain.Event) bool { calls++; return false }

	ctx := context.Background()
	assert.True(t, MultiInterceptor(pass, pass)(ctx, domain.Press(0, 0)))
	assert.Equal(t, 2, calls)

	calls = 0
	assert.False(t, MultiInterceptor(block, pass)(ctx, domain.Press(0, 0)))
	assert.Equal(t, 1, calls, "chain stops at the first block")
}

func TestButtonFilter(t *testing.T) {
	ctx := context.Background()
	filter := ButtonFilter(domain.ButtonLeft)

	assert.True(t, filter(ctx, domain.Press(0, 0)))
	assert.True(t, filter(ctx, domain.Event{Type: domain.EventMove, Button: domain.ButtonNone}))
	assert.False(t, filter(ctx, domain.Event{Type: domain.EventPress, Button: domain.ButtonRight}))
}

func TestLoggingInterceptor(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.True(t, LoggingInterceptor(logger)(context.Background(), domain.Release(1, 2)))
}
