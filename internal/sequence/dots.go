package sequence

import (
	"strings"
	"time"
)

// DefaultDotInterval is how often the ellipsis grows by one dot.
const DefaultDotInterval = 500 * time.Millisecond

const maxDots = 3

// TextSetter is the part of a View the dot animator writes to.
type TextSetter interface {
	SetText(text string)
}

// DotAnimator appends a cycling "." suffix to a base text.
type DotAnimator struct {
	out      TextSetter
	sched    Scheduler
	interval time.Duration

	base string
	dots int
	tick Timer
}

// NewDotAnimator creates an animator writing to out. A non-positive
// interval falls back to DefaultDotInterval.
func NewDotAnimator(out TextSetter, sched Scheduler, interval time.Duration) *DotAnimator {
	if interval <= 0 {
		interval = DefaultDotInterval
	}
	return &DotAnimator{out: out, sched: sched, interval: interval}
}

// Start shows base without trailing dots, then cycles one to three dots
// behind it every interval. Any running animation is stopped first.
func (a *DotAnimator) Start(base string) {
	a.Stop()
	a.base = strings.TrimRight(base, ".")
	a.dots = 0
	a.out.SetText(a.base)
	a.arm()
}

// Stop cancels the tick. It is safe to call when not running.
func (a *DotAnimator) Stop() {
	stopTimer(&a.tick)
}

// Running reports whether a tick is armed.
func (a *DotAnimator) Running() bool {
	return a.tick != nil
}

// Base returns the text being animated, without dots.
func (a *DotAnimator) Base() string {
	return a.base
}

func (a *DotAnimator) arm() {
	a.tick = a.sched.AfterFunc(a.interval, a.step)
}

func (a *DotAnimator) step() {
	a.dots = a.dots%maxDots + 1
	a.out.SetText(a.base + strings.Repeat(".", a.dots))
	a.arm()
}
