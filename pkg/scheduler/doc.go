/*
Package scheduler provides single-shot deferred callbacks for the dispatch sequence.

A Scheduler is not safe for concurrent use: it belongs to the goroutine that runs
the dispatch sequence, which calls RunDue whenever the next deadline passes.
Because timers only fire from RunDue, a Timer canceled on that same goroutine can
never fire afterwards, whatever the interleaving of other work.

Time is read from a Clock. SystemClock follows the wall clock; ManualClock is
advanced explicitly, which makes timer-driven behavior testable without sleeping:

	clock := scheduler.NewManualClock(time.Unix(0, 0))
	s := scheduler.New(clock)
	t := s.AfterFunc(18*time.Second, expire)
	t.Cancel()
	s.Advance(time.Minute) // expire is never called
*/
package scheduler
