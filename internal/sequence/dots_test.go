package sequence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDotAnimatorCycle(t *testing.T) {
	view := &Recorder{}
	sched := NewManualScheduler(epoch)
	dots := NewDotAnimator(view, sched, 0)

	dots.Start("Analyzing...")
	assert.Equal(t, "Analyzing", view.Text)

	want := []string{"Analyzing.", "Analyzing..", "Analyzing...", "Analyzing.", "Analyzing.."}
	for _, w := range want {
		sched.Advance(DefaultDotInterval)
		assert.Equal(t, w, view.Text)
	}
}

func TestDotAnimatorRestartKeepsOneTick(t *testing.T) {
	view := &Recorder{}
	sched := NewManualScheduler(epoch)
	dots := NewDotAnimator(view, sched, DefaultDotInterval)

	dots.Start("first")
	sched.Advance(200 * time.Millisecond)
	dots.Start("second")
	assert.Equal(t, 1, sched.Pending())

	sched.Advance(300 * time.Millisecond)
	assert.Equal(t, "second", view.Text, "stale tick from the first start fired")

	sched.Advance(200 * time.Millisecond)
	assert.Equal(t, "second.", view.Text)
}

func TestDotAnimatorStopIsIdempotent(t *testing.T) {
	view := &Recorder{}
	sched := NewManualScheduler(epoch)
	dots := NewDotAnimator(view, sched, DefaultDotInterval)

	dots.Stop()
	assert.False(t, dots.Running())

	dots.Start("base")
	require.True(t, dots.Running())
	dots.Stop()
	dots.Stop()
	assert.False(t, dots.Running())
	assert.Zero(t, sched.Pending())

	sched.Advance(time.Second)
	assert.Equal(t, []string{"base"}, view.Texts)
}

func TestDotAnimatorBase(t *testing.T) {
	dots := NewDotAnimator(&Recorder{}, NewManualScheduler(epoch), 0)
	dots.Start("....")
	assert.Equal(t, "", dots.Base())
	dots.Start("a.b..")
	assert.Equal(t, "a.b", dots.Base())
}

func TestManualSchedulerOrdering(t *testing.T) {
	sched := NewManualScheduler(epoch)
	var got []string

	sched.AfterFunc(20*time.Millisecond, func() { got = append(got, "late") })
	sched.AfterFunc(10*time.Millisecond, func() {
		got = append(got, "early")
		sched.NextFrame(func() { got = append(got, "frame") })
	})
	stopped := sched.AfterFunc(15*time.Millisecond, func() { got = append(got, "stopped") })
	assert.True(t, stopped.Stop())
	assert.False(t, stopped.Stop())

	sched.Advance(30 * time.Millisecond)
	assert.Equal(t, []string{"early", "frame", "late"}, got)
	assert.Equal(t, epoch.Add(30*time.Millisecond), sched.Now())
}

func TestManualSchedulerFlushKeepsClock(t *testing.T) {
	sched := NewManualScheduler(epoch)
	var got []string

	sched.NextFrame(func() { got = append(got, "frame") })
	sched.AfterFunc(time.Millisecond, func() { got = append(got, "later") })

	sched.Flush()
	assert.Equal(t, []string{"frame"}, got)
	assert.Equal(t, epoch, sched.Now())
	assert.Equal(t, 1, sched.Pending())
}

func TestLoopRunsCallbacksInOrder(t *testing.T) {
	loop := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	got := make(chan string, 4)
	loop.Post(func() {
		loop.NextFrame(func() { got <- "frame" })
		got <- "posted"
	})
	loop.AfterFunc(10*time.Millisecond, func() { got <- "timer" })
	stopped := loop.AfterFunc(5*time.Millisecond, func() { got <- "stopped" })
	require.True(t, stopped.Stop())

	for _, want := range []string{"posted", "frame", "timer"} {
		select {
		case v := <-got:
			assert.Equal(t, want, v)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %s", want)
		}
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.False(t, loop.Post(func() {}))
}
