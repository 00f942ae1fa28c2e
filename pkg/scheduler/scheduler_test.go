package scheduler_test

import (
	"testing"
	"time"

	"github.com/aretw0/doro/pkg/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManual() (*scheduler.Scheduler, *scheduler.ManualClock) {
	clock := scheduler.NewManualClock(time.Unix(1_700_000_000, 0))
	return scheduler.New(clock), clock
}

func TestScheduler_FiresInDeadlineOrder(t *testing.T) {
	s, _ := newManual()
	var order []string

	s.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	s.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	s.AfterFunc(10*time.Millisecond, func() { order = append(order, "b") })

	require.NoError(t, s.Advance(5*time.Millisecond))
	assert.Empty(t, order)

	require.NoError(t, s.Advance(time.Second))
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 0, s.Len())
}

func TestScheduler_CanceledTimerNeverFires(t *testing.T) {
	s, _ := newManual()
	fired := false

	timer := s.AfterFunc(18000*time.Millisecond, func() { fired = true })
	require.NoError(t, s.Advance(17*time.Second))
	assert.True(t, timer.Pending())

	assert.True(t, timer.Cancel(), "first cancel should report a pending timer")
	assert.False(t, timer.Cancel(), "second cancel is a no-op")
	assert.False(t, timer.Pending())

	require.NoError(t, s.Advance(time.Hour))
	assert.False(t, fired)
}

func TestScheduler_CancelFromEarlierCallbackInSameRun(t *testing.T) {
	// Both timers are due in the same RunDue; the first cancels the second.
	s, clock := newManual()
	var second *scheduler.Timer
	fired := false

	s.AfterFunc(time.Second, func() { second.Cancel() })
	second = s.AfterFunc(time.Second, func() { fired = true })

	clock.Add(2 * time.Second)
	assert.Equal(t, 1, s.RunDue())
	assert.False(t, fired)
}

func TestScheduler_RescheduleFromCallback(t *testing.T) {
	s, _ := newManual()
	ticks := 0
	var tick func()
	tick = func() {
		ticks++
		s.AfterFunc(100*time.Millisecond, tick)
	}
	s.AfterFunc(100*time.Millisecond, tick)

	require.NoError(t, s.Advance(time.Second))
	assert.Equal(t, 10, ticks)
	assert.Equal(t, 1, s.Len())
}

func TestScheduler_ZeroDelayFromCallbackWaitsForNextRun(t *testing.T) {
	s, clock := newManual()
	var order []string
	s.AfterFunc(0, func() {
		order = append(order, "first")
		s.AfterFunc(0, func() { order = append(order, "second") })
	})

	clock.Add(time.Millisecond)
	assert.Equal(t, 1, s.RunDue())
	assert.Equal(t, []string{"first"}, order)
	assert.Equal(t, 1, s.RunDue())
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestScheduler_NextAndClear(t *testing.T) {
	s, clock := newManual()
	_, ok := s.Next()
	assert.False(t, ok)

	a := s.AfterFunc(2*time.Second, func() {})
	s.AfterFunc(time.Second, func() {})

	next, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, clock.Now().Add(time.Second), next)

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, a.Pending())
}

func TestScheduler_AdvanceRequiresManualClock(t *testing.T) {
	s := scheduler.New(nil)
	assert.ErrorIs(t, s.Advance(time.Second), scheduler.ErrNotManual)
}

func TestTimer_NilIsSafe(t *testing.T) {
	var timer *scheduler.Timer
	assert.False(t, timer.Cancel())
	assert.False(t, timer.Pending())
	assert.True(t, timer.Deadline().IsZero())
}
