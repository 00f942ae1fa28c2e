package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	httpAdapter "github.com/aretw0/doro/pkg/adapters/http"
	"github.com/aretw0/doro/pkg/adapters/terminal"
	"github.com/aretw0/doro/pkg/ports"
)

// headlessSinks stands in for a presentation when no screen is attached.
// Every request is logged and the pet position is tracked.
type headlessSinks struct {
	logger *slog.Logger

	mu   sync.Mutex
	x, y int
}

func newHeadlessSinks(logger *slog.Logger) *headlessSinks {
	return &headlessSinks{logger: logger}
}

func (h *headlessSinks) PlayAnimation(asset string, mirror bool) error {
	h.logger.Info("animation", "asset", asset, "mirror", mirror)
	return nil
}

func (h *headlessSinks) PlayAudio(asset string) error {
	h.logger.Info("audio", "asset", asset)
	return nil
}

func (h *headlessSinks) StopAudio() {
	h.logger.Debug("audio stopped")
}

func (h *headlessSinks) RequestMove(dx, dy int) {
	h.mu.Lock()
	h.x += dx
	h.y += dy
	x, y := h.x, h.y
	h.mu.Unlock()
	h.logger.Debug("move", "dx", dx, "dy", dy, "x", x, "y", y)
}

func (h *headlessSinks) SetInfoVisible(visible bool) {
	h.logger.Debug("info panel", "visible", visible)
}

func (h *headlessSinks) Label(key string) ports.TextSink {
	return headlessLabel{logger: h.logger, key: key}
}

type headlessLabel struct {
	logger *slog.Logger
	key    string
}

func (l headlessLabel) SetText(text string) {
	l.logger.Debug("info", "key", l.key, "text", text)
}

// pumpJSON reads NDJSON events from r (the same shape POST /events takes)
// and writes one {"consumed": bool} line to w per event. It returns nil on EOF.
func pumpJSON(ctx context.Context, r io.Reader, w io.Writer, send terminal.SendFunc) error {
	dec := json.NewDecoder(r)
	enc := json.NewEncoder(w)
	for {
		var req httpAdapter.EventRequest
		if err := dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("invalid input: %w", err)
		}

		reply := map[string]any{}
		ev, err := req.Event()
		if err == nil {
			var consumed bool
			consumed, err = send(ctx, ev)
			reply["consumed"] = consumed
		}
		if err != nil {
			if isInterrupted(err) {
				return err
			}
			reply["error"] = err.Error()
		}
		if err := enc.Encode(reply); err != nil {
			return err
		}
	}
}
