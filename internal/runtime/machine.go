package runtime

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/aretw0/doro/pkg/config"
	"github.com/aretw0/doro/pkg/domain"
	"github.com/aretw0/doro/pkg/ports"
	"github.com/aretw0/doro/pkg/scheduler"
)

type requestKind int

const (
	requestTransition requestKind = iota
	requestPush
	requestPop
)

func (k requestKind) String() string {
	switch k {
	case requestTransition:
		return "transition"
	case requestPush:
		return "push"
	default:
		return "pop"
	}
}

type transitionRequest struct {
	kind  requestKind
	state domain.PetState
}

// Machine owns the state stack and the handler table, routes events to the
// active handler and applies transitions in exit-before-enter order.
//
// A Machine is not safe for concurrent use. All calls, including scheduler
// callbacks, must happen on one dispatch sequence.
type Machine struct {
	ctx       context.Context
	stack     stateStack
	handlers  map[domain.PetState]stateHandler
	sinks     Sinks
	resources ports.ResourceProvider
	config    ports.ConfigReader
	sched     *scheduler.Scheduler
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
	rng       *rand.Rand
	bindings  map[string]ports.TextSink
	pointer   pressTracker
	started   bool

	transitioning bool
	pending       []transitionRequest
}

// NewMachine creates a machine whose stack holds only the base IDLE state.
// No handler is entered until Start.
func NewMachine(opts ...MachineOption) *Machine {
	m := &Machine{
		ctx:      context.Background(),
		stack:    newStateStack(domain.StateIdle),
		handlers: make(map[domain.PetState]stateHandler),
		bindings: make(map[string]ports.TextSink),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if m.config == nil {
		m.config = config.New()
	}
	if m.resources == nil {
		m.resources = noResources{}
	}
	if m.sched == nil {
		m.sched = scheduler.New(nil)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x646f726f))
	}
	if m.sinks.Animation == nil {
		m.sinks.Animation = nopSinks{}
	}
	if m.sinks.Audio == nil {
		m.sinks.Audio = nopSinks{}
	}
	if m.sinks.Mover == nil {
		m.sinks.Mover = nopSinks{}
	}
	if m.sinks.Info == nil {
		m.sinks.Info = nopSinks{}
	}
	return m
}

// Start enters the base state and applies the initial info panel visibility.
// Calling Start more than once has no effect.
func (m *Machine) Start(ctx context.Context) {
	if m.started {
		return
	}
	m.started = true
	if ctx != nil {
		m.ctx = ctx
	}
	visible := m.config.Bool(config.SectionInfo, config.OptShowInfo, true)
	m.guard("info", func() { m.sinks.Info.SetInfoVisible(visible) })

	m.enterBase()
	m.drain()
}

// Current returns the state on top of the stack.
func (m *Machine) Current() domain.PetState {
	return m.stack.top()
}

// Stack returns a copy of the state stack, bottom first.
func (m *Machine) Stack() []domain.PetState {
	return m.stack.snapshot()
}

// Scheduler returns the scheduler the handlers arm their timers on.
func (m *Machine) Scheduler() *scheduler.Scheduler {
	return m.sched
}

// TransitionTo replaces the active state with state.
func (m *Machine) TransitionTo(state domain.PetState) {
	m.request(transitionRequest{kind: requestTransition, state: state})
}

// PushState suspends the active state and enters state on top of it.
func (m *Machine) PushState(state domain.PetState) {
	m.request(transitionRequest{kind: requestPush, state: state})
}

// PopState leaves the active state and resumes the one below it.
// Popping the base state is a no-op.
func (m *Machine) PopState() {
	m.request(transitionRequest{kind: requestPop})
}

// request queues r and applies the queue now, unless called from inside
// another transition, in which case the outer one drains it.
func (m *Machine) request(r transitionRequest) {
	m.pending = append(m.pending, r)
	if !m.started {
		m.logger.Debug("transition queued until start", "kind", r.kind.String(), "state", r.state.String())
		return
	}
	m.drain()
}

func (m *Machine) drain() {
	if !m.started {
		return
	}
	for len(m.pending) > 0 && !m.transitioning {
		next := m.pending[0]
		m.pending = m.pending[1:]
		m.step(next)
	}
	if len(m.pending) == 0 {
		m.pending = nil
	}
}

func (m *Machine) enterBase() {
	m.transitioning = true
	defer func() { m.transitioning = false }()
	m.enter(m.stack.top())
}

// step applies one request. A panic escaping a handler still clears the
// transitioning flag so later requests are not stranded in the queue.
func (m *Machine) step(r transitionRequest) {
	m.transitioning = true
	defer func() { m.transitioning = false }()
	m.apply(r)
}

func (m *Machine) apply(r transitionRequest) {
	switch r.kind {
	case requestTransition, requestPush:
		if !r.state.Valid() {
			m.logger.Warn("invalid transition ignored",
				"kind", r.kind.String(), "state", r.state.String(), "err", domain.ErrInvalidTransition)
			return
		}
		if r.kind == requestTransition && m.stack.size() == 1 && r.state != domain.StateIdle {
			// The base is always IDLE; a lateral move away from it stacks instead.
			m.logger.Debug("transition from base state pushed", "state", r.state.String())
			r.kind = requestPush
		}
		if r.kind == requestTransition {
			m.exit(m.stack.top())
			m.stack.replace(r.state)
		} else {
			m.stack.push(r.state)
		}
		m.enter(r.state)

	case requestPop:
		if m.stack.size() <= 1 {
			m.logger.Debug("pop on base state ignored", "state", m.stack.top().String())
			return
		}
		m.exit(m.stack.top())
		m.stack.pop()
		m.enter(m.stack.top())
	}
}

func (m *Machine) enter(state domain.PetState) {
	m.handler(state).onEnter()
	if m.hooks.OnStateEnter != nil {
		m.hooks.OnStateEnter(m.ctx, &domain.StateEvent{
			Timestamp: m.sched.Now(),
			State:     state,
			Depth:     m.stack.size(),
		})
	}
}

func (m *Machine) exit(state domain.PetState) {
	m.handler(state).onExit()
	if m.hooks.OnStateExit != nil {
		m.hooks.OnStateExit(m.ctx, &domain.StateEvent{
			Timestamp: m.sched.Now(),
			State:     state,
			Depth:     m.stack.size(),
		})
	}
}

// handler returns the cached handler for state, creating it on first use.
func (m *Machine) handler(state domain.PetState) stateHandler {
	h, ok := m.handlers[state]
	if !ok {
		h = newHandler(state, m)
		m.handlers[state] = h
	}
	return h
}

// HandleEvent routes ev to the active handler and reports whether it was consumed.
func (m *Machine) HandleEvent(ev domain.Event) bool {
	if !m.started {
		m.logger.Debug("event before start dropped", "event", ev.Type.String())
		return false
	}
	state := m.stack.top()
	consumed := m.handler(state).handleEvent(ev)
	if m.hooks.OnEvent != nil {
		m.hooks.OnEvent(m.ctx, &domain.InputEvent{
			Timestamp: m.sched.Now(),
			Event:     ev,
			State:     state,
			Consumed:  consumed,
		})
	}
	return consumed
}

// redispatch hands ev to whatever handler is active after a transition
// triggered by that same event.
func (m *Machine) redispatch(ev domain.Event) {
	m.handler(m.stack.top()).handleEvent(ev)
}

// UpdateConfig re-reads configuration in every handler created so far,
// without re-entering any of them.
func (m *Machine) UpdateConfig() {
	visible := m.config.Bool(config.SectionInfo, config.OptShowInfo, true)
	m.guard("info", func() { m.sinks.Info.SetInfoVisible(visible) })
	for _, state := range domain.States {
		if h, ok := m.handlers[state]; ok {
			h.updateConfig()
		}
	}
	m.drain()
}

// Bind registers the text sink used for key in UpdateInfo.
func (m *Machine) Bind(key string, sink ports.TextSink) {
	if sink == nil {
		delete(m.bindings, key)
		return
	}
	m.bindings[key] = sink
}

// UpdateInfo forwards text to the sink bound to key. Unbound keys are ignored.
func (m *Machine) UpdateInfo(key, text string) bool {
	sink, ok := m.bindings[key]
	if !ok {
		m.logger.Debug("no sink bound", "key", key)
		return false
	}
	m.guard("info", func() { sink.SetText(text) })
	return true
}

func (m *Machine) isCurrent(state domain.PetState) bool {
	return m.stack.top() == state
}

// pickAsset chooses a random asset of kind for key. It returns false when none exist.
func (m *Machine) pickAsset(kind domain.AssetKind, key string) (string, bool) {
	var assets []string
	for _, asset := range m.resources.Assets(key) {
		if k, ok := domain.KindOf(asset); ok && k == kind {
			assets = append(assets, asset)
		}
	}
	if len(assets) == 0 {
		return "", false
	}
	return assets[m.rng.IntN(len(assets))], true
}

// playAnimation shows a random animation of key. On any failure the previous
// animation stays visible.
func (m *Machine) playAnimation(key string, mirror bool) {
	asset, ok := m.pickAsset(domain.KindAnimation, key)
	if !ok {
		m.logger.Debug("animation unavailable", "key", key, "state", m.stack.top().String(), "err", domain.ErrResourceMissing)
		return
	}
	m.guard("animation", func() {
		if err := m.sinks.Animation.PlayAnimation(asset, mirror); err != nil {
			m.logger.Warn("animation failed", "key", key, "asset", asset, "err", err)
		}
	})
}

func (m *Machine) playAudio(key string) {
	asset, ok := m.pickAsset(domain.KindAudio, key)
	if !ok {
		m.logger.Debug("audio unavailable", "key", key, "state", m.stack.top().String(), "err", domain.ErrResourceMissing)
		return
	}
	m.guard("audio", func() {
		if err := m.sinks.Audio.PlayAudio(asset); err != nil {
			m.logger.Warn("audio failed", "key", key, "asset", asset, "err", err)
		}
	})
}

func (m *Machine) stopAudio() {
	m.guard("audio", m.sinks.Audio.StopAudio)
}

func (m *Machine) requestMove(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	m.guard("mover", func() { m.sinks.Mover.RequestMove(dx, dy) })
}

// guard runs a sink call, logging instead of propagating a panic.
func (m *Machine) guard(sink string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("sink panicked", "sink", sink, "state", m.stack.top().String(), "panic", r)
		}
	}()
	fn()
}

func (m *Machine) after(d time.Duration, fn func()) *scheduler.Timer {
	return m.sched.AfterFunc(d, fn)
}

// weightedPick returns the index of the chosen weight. Non-positive weights
// never win; if all are non-positive the first index is returned.
func (m *Machine) weightedPick(weights ...int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return 0
	}
	n := m.rng.IntN(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if n < w {
			return i
		}
		n -= w
	}
	return len(weights) - 1
}

func (m *Machine) cfgBool(section, option string, fallback bool) bool {
	return m.config.Bool(section, option, fallback)
}

func (m *Machine) cfgInt(section, option string, fallback int) int {
	return m.config.Int(section, option, fallback)
}
