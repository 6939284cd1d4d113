package loading

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/musesonar/sonar-cli/internal/sequence"
)

// timerMsg is delivered when a scheduled callback comes due.
type timerMsg struct {
	id uint64
}

// scheduler implements sequence.Scheduler on top of the bubbletea runtime.
// Timers become tea.Tick commands, and callbacks run inside Update when
// their message arrives, so every sequencer mutation happens on the
// program's event loop.
type scheduler struct {
	next uint64
	live map[uint64]func()
	cmds []tea.Cmd
}

func newScheduler() *scheduler {
	return &scheduler{live: make(map[uint64]func())}
}

func (s *scheduler) AfterFunc(d time.Duration, fn func()) sequence.Timer {
	id := s.add(fn)
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	}))
	return schedTimer{s: s, id: id}
}

// NextFrame queues a command that resolves immediately; its message is
// handled in a later Update, after the current one has been rendered.
func (s *scheduler) NextFrame(fn func()) sequence.Timer {
	id := s.add(fn)
	s.cmds = append(s.cmds, func() tea.Msg {
		return timerMsg{id: id}
	})
	return schedTimer{s: s, id: id}
}

// fire runs the callback for id if it is still live.
func (s *scheduler) fire(id uint64) bool {
	fn, ok := s.live[id]
	if !ok {
		return false
	}
	delete(s.live, id)
	fn()
	return true
}

// drain returns the commands queued since the last drain.
func (s *scheduler) drain() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}

// pending returns the number of live callbacks.
func (s *scheduler) pending() int {
	return len(s.live)
}

func (s *scheduler) add(fn func()) uint64 {
	s.next++
	s.live[s.next] = fn
	return s.next
}

type schedTimer struct {
	s  *scheduler
	id uint64
}

func (t schedTimer) Stop() bool {
	if _, ok := t.s.live[t.id]; !ok {
		return false
	}
	delete(t.s.live, t.id)
	return true
}
