package sequence

import (
	"time"
)

// ManualScheduler is a Scheduler driven by an explicit clock. Nothing fires
// until Advance is called, which makes sequencing tests deterministic.
type ManualScheduler struct {
	now     time.Time
	seq     uint64
	entries []*manualTimer
}

type manualTimer struct {
	s    *ManualScheduler
	at   time.Time
	seq  uint64
	fn   func()
	done bool
}

// NewManualScheduler creates a scheduler whose clock starts at start.
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

// Now returns the scheduler's current time.
func (s *ManualScheduler) Now() time.Time {
	return s.now
}

// AfterFunc registers fn to run once the clock has advanced by d.
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &manualTimer{s: s, at: s.now.Add(d), seq: s.seq, fn: fn}
	s.entries = append(s.entries, t)
	return t
}

// NextFrame registers fn to run at the current instant, after every
// callback already due.
func (s *ManualScheduler) NextFrame(fn func()) Timer {
	return s.AfterFunc(0, fn)
}

// Pending returns the number of callbacks that have not run or been stopped.
func (s *ManualScheduler) Pending() int {
	return len(s.entries)
}

// Advance moves the clock forward by d, running every callback that comes
// due in order of due time and then registration. Callbacks registered while
// advancing run too if they fall inside the window.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now.Add(d)
	for {
		t := s.next(target)
		if t == nil {
			break
		}
		s.remove(t)
		t.done = true
		s.now = t.at
		t.fn()
	}
	s.now = target
}

// Flush runs everything due at the current instant without moving the clock.
func (s *ManualScheduler) Flush() {
	s.Advance(0)
}

func (s *ManualScheduler) next(limit time.Time) *manualTimer {
	var best *manualTimer
	for _, t := range s.entries {
		if t.at.After(limit) {
			continue
		}
		if best == nil || t.at.Before(best.at) || (t.at.Equal(best.at) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *ManualScheduler) remove(t *manualTimer) {
	for i, e := range s.entries {
		if e == t {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

func (t *manualTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.s.remove(t)
	return true
}
