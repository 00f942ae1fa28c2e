package scheduler

import (
	"container/heap"
	"errors"
	"time"
)

// ErrNotManual is returned by Advance when the scheduler is not driven by a ManualClock.
var ErrNotManual = errors.New("scheduler: clock is not manual")

// Timer is a pending single-shot callback.
// The zero value and nil are valid, never-pending timers.
type Timer struct {
	s        *Scheduler
	deadline time.Time
	seq      uint64
	fn       func()
	index    int // position in the heap, -1 when not queued
	canceled bool
	fired    bool
}

// Cancel prevents the callback from running. It reports whether the timer was
// still pending. Canceling a fired or already canceled timer is a no-op.
func (t *Timer) Cancel() bool {
	if t == nil || t.s == nil || t.fired || t.canceled {
		return false
	}
	t.canceled = true
	if t.index >= 0 {
		heap.Remove(&t.s.queue, t.index)
	}
	t.fn = nil
	return true
}

// Pending reports whether the timer will still fire.
func (t *Timer) Pending() bool {
	return t != nil && t.s != nil && !t.fired && !t.canceled
}

// Deadline returns the time at which the timer fires.
func (t *Timer) Deadline() time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.deadline
}

// Scheduler orders timers by deadline and fires them from RunDue.
type Scheduler struct {
	clock Clock
	queue timerQueue
	seq   uint64
}

// New creates a scheduler reading time from clock. A nil clock means SystemClock.
func New(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{clock: clock}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// AfterFunc schedules fn to run once, d from now. A non-positive d fires on the next RunDue.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{
		s:        s,
		deadline: s.clock.Now().Add(d),
		seq:      s.seq,
		fn:       fn,
		index:    -1,
	}
	heap.Push(&s.queue, t)
	return t
}

// Len returns the number of pending timers.
func (s *Scheduler) Len() int {
	return s.queue.Len()
}

// Next returns the earliest pending deadline.
func (s *Scheduler) Next() (time.Time, bool) {
	if s.queue.Len() == 0 {
		return time.Time{}, false
	}
	return s.queue[0].deadline, true
}

// RunDue fires every timer whose deadline is not after now, in deadline order
// (ties in scheduling order). Timers scheduled by a callback during this call
// wait for the next RunDue, even when already due. It returns the number fired.
func (s *Scheduler) RunDue() int {
	now := s.clock.Now()
	limit := s.seq
	fired := 0
	for s.queue.Len() > 0 {
		t := s.queue[0]
		if t.deadline.After(now) || t.seq > limit {
			break
		}
		heap.Pop(&s.queue)
		if t.canceled {
			continue
		}
		t.fired = true
		fn := t.fn
		t.fn = nil
		if fn != nil {
			fn()
			fired++
		}
	}
	return fired
}

// Advance moves a ManualClock forward by d, stopping at every deadline on the way
// so that timers fire in order and at their own time, including timers scheduled
// by earlier callbacks.
func (s *Scheduler) Advance(d time.Duration) error {
	mc, ok := s.clock.(*ManualClock)
	if !ok {
		return ErrNotManual
	}
	target := mc.Now().Add(d)
	for {
		next, ok := s.Next()
		if !ok || next.After(target) {
			break
		}
		mc.Set(next)
		s.RunDue()
	}
	mc.Set(target)
	return nil
}

// Clear cancels every pending timer.
func (s *Scheduler) Clear() {
	for s.queue.Len() > 0 {
		t := heap.Pop(&s.queue).(*Timer)
		t.canceled = true
		t.fn = nil
	}
}

type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].deadline.Equal(q[j].deadline) {
		return q[i].seq < q[j].seq
	}
	return q[i].deadline.Before(q[j].deadline)
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
