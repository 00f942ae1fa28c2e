package runtime

import (
	"time"

	"github.com/aretw0/doro/pkg/config"
	"github.com/aretw0/doro/pkg/domain"
	"github.com/aretw0/doro/pkg/scheduler"
)

// idleHandler is the base state. It plays the idle animation and, when
// autonomous movement is allowed, periodically decides whether to wander.
type idleHandler struct {
	m *Machine

	allowWander   bool
	interval      time.Duration
	stayWeight    int
	walkWeight    int
	dragThreshold int
	ambientAudio  bool

	wander *scheduler.Timer
}

func newIdleHandler(m *Machine) *idleHandler {
	h := &idleHandler{m: m}
	h.readConfig()
	return h
}

func (h *idleHandler) readConfig() {
	h.allowWander = h.m.cfgBool(config.SectionWorkspace, config.OptAllowRandomMovement, true)
	h.interval = time.Duration(h.m.cfgInt(config.SectionRandom, config.OptInterval, config.DefaultRandomInterval)) * time.Second
	h.stayWeight = h.m.cfgInt(config.SectionRandom, config.OptStayWeight, config.DefaultStayWeight)
	h.walkWeight = h.m.cfgInt(config.SectionRandom, config.OptWalkWeight, config.DefaultWalkWeight)
	h.dragThreshold = h.m.cfgInt(config.SectionBehavior, config.OptDragThreshold, config.DefaultDragThreshold)
	h.ambientAudio = h.m.cfgBool(config.SectionAudio, config.OptEnabled, true) &&
		h.m.cfgBool(config.SectionAudio, config.OptAmbientIdle, false)
}

func (h *idleHandler) onEnter() {
	h.m.playAnimation(domain.AssetIdle, false)
	if h.ambientAudio {
		h.m.playAudio(domain.AssetIdle)
	}
	h.armWander()
}

func (h *idleHandler) onExit() {
	h.cancelWander()
	if h.ambientAudio {
		h.m.stopAudio()
	}
}

func (h *idleHandler) handleEvent(ev domain.Event) bool {
	g, consumed := h.m.pointer.feed(ev, h.dragThreshold)
	switch g {
	case gestureDrag:
		h.cancelWander()
		h.m.PushState(domain.StateDragging)
		h.m.redispatch(ev)
	case gestureClick:
		h.cancelWander()
		h.m.PushState(domain.StateClicked)
	}
	return consumed
}

func (h *idleHandler) updateConfig() {
	h.readConfig()
	if !h.allowWander {
		h.cancelWander()
		return
	}
	if h.m.isCurrent(domain.StateIdle) && !h.wander.Pending() {
		h.armWander()
	}
}

func (h *idleHandler) armWander() {
	h.cancelWander()
	if !h.allowWander || h.interval <= 0 {
		return
	}
	h.wander = h.m.after(h.interval, h.onWander)
}

func (h *idleHandler) cancelWander() {
	h.wander.Cancel()
	h.wander = nil
}

func (h *idleHandler) onWander() {
	h.wander = nil
	if !h.allowWander || !h.m.isCurrent(domain.StateIdle) {
		return
	}
	if h.m.weightedPick(h.stayWeight, h.walkWeight) == 1 {
		h.m.PushState(domain.StateRandomMove)
		return
	}
	h.m.playAnimation(domain.AssetIdle, false)
	h.armWander()
}
