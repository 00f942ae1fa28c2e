package runtime

import (
	"time"

	"github.com/aretw0/doro/pkg/config"
	"github.com/aretw0/doro/pkg/domain"
	"github.com/aretw0/doro/pkg/scheduler"
)

// clickedHandler shows the reaction to a click and pops itself once the
// click duration has elapsed.
type clickedHandler struct {
	m *Machine

	duration time.Duration
	audio    bool

	expiry *scheduler.Timer
}

func newClickedHandler(m *Machine) *clickedHandler {
	h := &clickedHandler{m: m}
	h.readConfig()
	return h
}

func (h *clickedHandler) readConfig() {
	h.duration = time.Duration(h.m.cfgInt(config.SectionBehavior, config.OptClickDurationMs, config.DefaultClickDurationMs)) * time.Millisecond
	h.audio = h.m.cfgBool(config.SectionAudio, config.OptEnabled, true)
}

func (h *clickedHandler) onEnter() {
	h.m.playAnimation(domain.AssetClick, false)
	if h.audio {
		h.m.playAudio(domain.AssetDoubleClick)
	}
	h.expiry.Cancel()
	h.expiry = h.m.after(h.duration, h.onExpire)
}

func (h *clickedHandler) onExit() {
	h.expiry.Cancel()
	h.expiry = nil
	h.m.stopAudio()
}

func (h *clickedHandler) handleEvent(ev domain.Event) bool {
	if ev.Type != domain.EventPress || ev.Button != domain.ButtonLeft {
		return false
	}
	h.expiry.Cancel()
	h.expiry = nil
	h.m.pointer.feed(ev, 0)
	h.m.PushState(domain.StateDragging)
	return true
}

// updateConfig takes effect on the next entry; a running expiry keeps its deadline.
func (h *clickedHandler) updateConfig() {
	h.readConfig()
	if !h.audio && h.m.isCurrent(domain.StateClicked) {
		h.m.stopAudio()
	}
}

func (h *clickedHandler) onExpire() {
	h.expiry = nil
	if h.m.isCurrent(domain.StateClicked) {
		h.m.PopState()
	}
}
