package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/doro"
	"github.com/aretw0/doro/pkg/domain"
	"github.com/aretw0/doro/pkg/ports"
)

// ErrNoConfigStore is returned by Reload when the runner has no store.
var ErrNoConfigStore = errors.New("runner: no config store")

// ErrAlreadyRunning is returned by Run when the runner is already running.
var ErrAlreadyRunning = errors.New("runner: already running")

// idleWait bounds how long the loop sleeps when no timer is pending.
const idleWait = time.Hour

// Snapshot is a consistent view of the pet's state stack.
type Snapshot struct {
	Current domain.PetState   `json:"current"`
	Stack   []domain.PetState `json:"stack"`
}

// Runner owns a Pet and serializes every access to it on one goroutine.
type Runner struct {
	pet           *doro.Pet
	logger        *slog.Logger
	store         ports.ConfigStore
	queueSize     int
	afterDispatch func()
	interceptors  []EventInterceptor

	queue chan func()
	done  chan struct{}

	mu      sync.Mutex
	running bool
	ctx     context.Context
}

// New creates a runner for pet. The pet is started by Run.
func New(pet *doro.Pet, opts ...Option) *Runner {
	r := &Runner{
		pet:       pet,
		queueSize: DefaultQueueSize,
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r.queue = make(chan func(), r.queueSize)
	r.ctx = context.Background()
	return r
}

// Pet returns the pet owned by the runner. Only touch it from inside Do or Post.
func (r *Runner) Pet() *doro.Pet {
	return r.pet
}

// Done is closed once Run has returned.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Run loads the configuration store (if any), starts the pet and processes
// work and timers until ctx is canceled. It returns nil on cancellation.
func (r *Runner) Run(ctx context.Context) error {
	r.mu.Lock()
	select {
	case <-r.done:
		r.mu.Unlock()
		return domain.ErrRunnerStopped
	default:
	}
	if r.running {
		r.mu.Unlock()
		return ErrAlreadyRunning
	}
	r.running = true
	r.ctx = ctx
	r.mu.Unlock()
	defer close(r.done)

	if r.store != nil {
		values, err := r.store.Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		r.pet.Config().Replace(values)
		if err := r.watchStore(ctx); err != nil {
			return err
		}
	}

	r.dispatch("start", func() { r.pet.Start(ctx) })
	r.logger.Info("pet started", "state", r.pet.Current().String())

	sched := r.pet.Scheduler()
	wake := time.NewTimer(idleWait)
	defer wake.Stop()

	for {
		if sched.Len() > 0 {
			r.dispatch("timers", func() { sched.RunDue() })
		}

		wait := idleWait
		if next, ok := sched.Next(); ok {
			wait = max(next.Sub(sched.Now()), 0)
		}
		wake.Reset(wait)

		select {
		case <-ctx.Done():
			r.logger.Info("pet stopped", "state", r.pet.Current().String())
			return nil
		case fn := <-r.queue:
			r.dispatch("work", fn)
		case <-wake.C:
		}
	}
}

// dispatch runs fn and recovers from panics so a bad callback never stops the sequence.
func (r *Runner) dispatch(kind string, fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("dispatch panic recovered", "kind", kind, "panic", rec)
		}
	}()
	fn()
	if r.afterDispatch != nil {
		r.afterDispatch()
	}
}

// Post queues fn for the dispatch sequence without waiting for it.
func (r *Runner) Post(fn func()) error {
	select {
	case <-r.done:
		return domain.ErrRunnerStopped
	default:
	}
	select {
	case r.queue <- fn:
		return nil
	case <-r.done:
		return domain.ErrRunnerStopped
	}
}

// Do runs fn on the dispatch sequence and waits for it to finish.
func (r *Runner) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	wrapped := func() {
		defer close(finished)
		fn()
	}
	select {
	case r.queue <- wrapped:
	case <-r.done:
		return domain.ErrRunnerStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-finished:
		return nil
	case <-r.done:
		return domain.ErrRunnerStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Send dispatches ev to the pet and reports whether it was consumed.
// Events blocked by an interceptor are reported as not consumed.
func (r *Runner) Send(ctx context.Context, ev domain.Event) (bool, error) {
	var consumed bool
	err := r.Do(ctx, func() {
		for _, interceptor := range r.interceptors {
			if !interceptor(r.ctx, ev) {
				return
			}
		}
		consumed = r.pet.HandleEvent(ev)
	})
	return consumed, err
}

// TransitionTo replaces the active state.
func (r *Runner) TransitionTo(ctx context.Context, state domain.PetState) error {
	return r.Do(ctx, func() { r.pet.TransitionTo(state) })
}

// PushState pushes state on top of the active one.
func (r *Runner) PushState(ctx context.Context, state domain.PetState) error {
	return r.Do(ctx, func() { r.pet.PushState(state) })
}

// PopState returns to the previous state.
func (r *Runner) PopState(ctx context.Context) error {
	return r.Do(ctx, func() { r.pet.PopState() })
}

// Snapshot returns the current state stack.
func (r *Runner) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	err := r.Do(ctx, func() {
		snap.Current = r.pet.Current()
		snap.Stack = r.pet.Stack()
	})
	return snap, err
}

// UpdateInfo sets the text of an info panel widget.
func (r *Runner) UpdateInfo(key, text string) error {
	return r.Post(func() { r.pet.UpdateInfo(key, text) })
}

// Reload reads the configuration store off the sequence and applies the
// values on it, followed by Pet.UpdateConfig.
func (r *Runner) Reload(ctx context.Context) error {
	if r.store == nil {
		return ErrNoConfigStore
	}
	values, err := r.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return r.Do(ctx, func() { r.apply(values) })
}

// Apply replaces the configuration with values and broadcasts the change.
func (r *Runner) Apply(ctx context.Context, values ports.ConfigValues) error {
	return r.Do(ctx, func() { r.apply(values) })
}

func (r *Runner) apply(values ports.ConfigValues) {
	r.pet.Config().Replace(values)
	r.pet.UpdateConfig()
	r.logger.Debug("config applied", "sections", len(values))
}

func (r *Runner) watchStore(ctx context.Context) error {
	w, ok := r.store.(ports.Watchable)
	if !ok {
		return nil
	}
	changes, err := w.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch config: %w", err)
	}
	go func() {
		for range changes {
			values, err := r.store.Load(ctx)
			if err != nil {
				r.logger.Warn("config reload failed", "err", err)
				continue
			}
			if err := r.Post(func() { r.apply(values) }); err != nil {
				return
			}
		}
	}()
	return nil
}
