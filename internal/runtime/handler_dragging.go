package runtime

import (
	"github.com/aretw0/doro/pkg/domain"
)

// draggingHandler follows the pointer and forwards every delta to the mover.
type draggingHandler struct {
	m *Machine

	lastX, lastY int
	anchored     bool
}

func newDraggingHandler(m *Machine) *draggingHandler {
	return &draggingHandler{m: m}
}

// onEnter anchors at the press origin. Entered without a press in progress,
// the first move becomes the anchor instead.
func (h *draggingHandler) onEnter() {
	h.anchored = h.m.pointer.active
	h.lastX, h.lastY = h.m.pointer.origin()
}

func (h *draggingHandler) onExit() {
	h.m.pointer.reset()
}

func (h *draggingHandler) handleEvent(ev domain.Event) bool {
	switch ev.Type {
	case domain.EventMove:
		if !h.anchored {
			h.lastX, h.lastY = ev.X, ev.Y
			h.anchored = true
			return true
		}
		h.m.requestMove(ev.X-h.lastX, ev.Y-h.lastY)
		h.lastX, h.lastY = ev.X, ev.Y
		return true
	case domain.EventRelease:
		h.m.PopState()
		return true
	case domain.EventPress:
		return true
	}
	return false
}

func (h *draggingHandler) updateConfig() {}
