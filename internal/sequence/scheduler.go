// Package sequence drives the timed loading sequence shown while an idea is
// being analyzed: a fixed list of steps, each swapping the primary visual,
// the status text and (for the terminal visual) a secondary icon.
//
// Nothing in this package starts goroutines or takes locks. All calls into a
// Sequencer or DotAnimator must happen on the single goroutine that owns the
// Scheduler's callbacks (the bubbletea Update loop, or a Loop).
package sequence

import "time"

// Timer is a handle to a callback registered with a Scheduler.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer; false means it already ran or was already stopped.
	Stop() bool
}

// Scheduler runs callbacks later on the owning goroutine.
type Scheduler interface {
	// AfterFunc runs fn once d has elapsed.
	AfterFunc(d time.Duration, fn func()) Timer

	// NextFrame runs fn at the next rendering opportunity, after the view
	// has had a chance to draw whatever the current callback changed.
	NextFrame(fn func()) Timer
}

// stopTimer stops *t if set and clears it.
func stopTimer(t *Timer) {
	if *t != nil {
		(*t).Stop()
		*t = nil
	}
}
