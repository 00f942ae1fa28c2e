package runtime

import (
	"time"

	"github.com/aretw0/doro/pkg/config"
	"github.com/aretw0/doro/pkg/domain"
	"github.com/aretw0/doro/pkg/scheduler"
)

// randomMoveHandler walks the pet sideways in legs. At the end of each leg it
// either starts a new one or returns to the state below.
type randomMoveHandler struct {
	m *Machine

	allowed       bool
	stepEvery     time.Duration
	stepPx        int
	legDuration   time.Duration
	stayWeight    int
	walkWeight    int
	dragThreshold int

	direction int // -1 left, +1 right
	step      *scheduler.Timer
	leg       *scheduler.Timer
	leaving   *scheduler.Timer
}

func newRandomMoveHandler(m *Machine) *randomMoveHandler {
	h := &randomMoveHandler{m: m, direction: 1}
	h.readConfig()
	return h
}

func (h *randomMoveHandler) readConfig() {
	h.allowed = h.m.cfgBool(config.SectionWorkspace, config.OptAllowRandomMovement, true)
	fps := h.m.cfgInt(config.SectionAnimation, config.OptFPS, config.DefaultFPS)
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	h.stepEvery = time.Second / time.Duration(fps)
	h.stepPx = h.m.cfgInt(config.SectionBehavior, config.OptWalkStepPx, config.DefaultWalkStepPx)
	h.legDuration = time.Duration(h.m.cfgInt(config.SectionBehavior, config.OptWalkDurationMs, config.DefaultWalkDurationMs)) * time.Millisecond
	h.stayWeight = h.m.cfgInt(config.SectionRandom, config.OptStayWeight, config.DefaultStayWeight)
	h.walkWeight = h.m.cfgInt(config.SectionRandom, config.OptWalkWeight, config.DefaultWalkWeight)
	h.dragThreshold = h.m.cfgInt(config.SectionBehavior, config.OptDragThreshold, config.DefaultDragThreshold)
}

func (h *randomMoveHandler) onEnter() {
	if !h.allowed {
		h.scheduleLeave()
		return
	}
	h.startLeg()
}

func (h *randomMoveHandler) onExit() {
	h.cancelTimers()
}

func (h *randomMoveHandler) handleEvent(ev domain.Event) bool {
	g, consumed := h.m.pointer.feed(ev, h.dragThreshold)
	switch g {
	case gestureDrag:
		h.cancelTimers()
		h.m.TransitionTo(domain.StateDragging)
		h.m.redispatch(ev)
	case gestureClick:
		h.cancelTimers()
		h.m.TransitionTo(domain.StateClicked)
	}
	return consumed
}

func (h *randomMoveHandler) updateConfig() {
	h.readConfig()
	if !h.allowed && h.m.isCurrent(domain.StateRandomMove) {
		h.cancelTimers()
		h.scheduleLeave()
	}
}

func (h *randomMoveHandler) startLeg() {
	h.cancelTimers()
	if h.m.rng.IntN(2) == 0 {
		h.direction = -1
	} else {
		h.direction = 1
	}
	h.m.playAnimation(domain.AssetMove, h.direction < 0)
	h.step = h.m.after(h.stepEvery, h.onStep)
	h.leg = h.m.after(h.legDuration, h.onLegEnd)
}

func (h *randomMoveHandler) onStep() {
	h.step = nil
	if !h.m.isCurrent(domain.StateRandomMove) {
		return
	}
	h.m.requestMove(h.direction*h.stepPx, 0)
	h.step = h.m.after(h.stepEvery, h.onStep)
}

func (h *randomMoveHandler) onLegEnd() {
	h.leg = nil
	if !h.m.isCurrent(domain.StateRandomMove) {
		return
	}
	if h.allowed && h.m.weightedPick(h.stayWeight, h.walkWeight) == 1 {
		h.startLeg()
		return
	}
	h.cancelTimers()
	h.m.PopState()
}

// scheduleLeave pops on the next scheduler run rather than from inside the
// current call.
func (h *randomMoveHandler) scheduleLeave() {
	if h.leaving.Pending() {
		return
	}
	h.leaving = h.m.after(0, func() {
		h.leaving = nil
		if h.m.isCurrent(domain.StateRandomMove) {
			h.m.PopState()
		}
	})
}

func (h *randomMoveHandler) cancelTimers() {
	h.step.Cancel()
	h.leg.Cancel()
	h.leaving.Cancel()
	h.step, h.leg, h.leaving = nil, nil, nil
}
