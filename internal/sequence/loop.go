package sequence

import (
	"context"
	"sync/atomic"
	"time"
)

const (
	timerPending int32 = iota
	timerFired
	timerStopped
)

// Loop is a single-goroutine event loop implementing Scheduler on the wall
// clock. Timers are armed with time.AfterFunc, but their callbacks are handed
// back to the goroutine running Run, so the sequencer never sees two
// callbacks at once.
type Loop struct {
	queue  chan func()
	done   chan struct{}
	frames []func()
}

// NewLoop creates an idle loop. Call Run to start processing.
func NewLoop() *Loop {
	return &Loop{
		queue: make(chan func(), 64),
		done:  make(chan struct{}),
	}
}

// Run processes callbacks until ctx is cancelled. Frame callbacks queued by
// a callback run right after it returns. Run must only be called once.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.queue:
			fn()
			l.drainFrames()
		}
	}
}

// Post hands fn to the loop goroutine. It returns false if the loop has
// already exited.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.queue <- fn:
		return true
	case <-l.done:
		return false
	}
}

// AfterFunc implements Scheduler.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		l.Post(func() {
			if t.state.CompareAndSwap(timerPending, timerFired) {
				fn()
			}
		})
	})
	return t
}

// NextFrame implements Scheduler. It must be called from the loop goroutine.
func (l *Loop) NextFrame(fn func()) Timer {
	t := &loopTimer{}
	l.frames = append(l.frames, func() {
		if t.state.CompareAndSwap(timerPending, timerFired) {
			fn()
		}
	})
	return t
}

func (l *Loop) drainFrames() {
	for len(l.frames) > 0 {
		fn := l.frames[0]
		l.frames = l.frames[1:]
		fn()
	}
}

type loopTimer struct {
	timer *time.Timer
	state atomic.Int32
}

func (t *loopTimer) Stop() bool {
	if !t.state.CompareAndSwap(timerPending, timerStopped) {
		return false
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	return true
}
