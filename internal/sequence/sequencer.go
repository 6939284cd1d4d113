package sequence

import (
	"fmt"
	"time"

	"github.com/musesonar/sonar-cli/internal/assets"
)

const (
	// DefaultPhaseDelay separates the fade-out of a step from its commit.
	DefaultPhaseDelay = 300 * time.Millisecond
	// DefaultIconFadeDelay separates displaying the secondary icon from
	// raising its opacity.
	DefaultIconFadeDelay = 750 * time.Millisecond
)

// EventKind identifies a sequencer event.
type EventKind int

const (
	StepStarted EventKind = iota
	StepCommitted
	SequenceFinished
	SequenceTornDown
)

func (k EventKind) String() string {
	switch k {
	case StepStarted:
		return "step-started"
	case StepCommitted:
		return "step-committed"
	case SequenceFinished:
		return "finished"
	case SequenceTornDown:
		return "torn-down"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is delivered to the observer on every state change.
type Event struct {
	Kind  EventKind
	Index int
	Step  Step
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithPhaseDelay sets the delay between fade-out and commit.
func WithPhaseDelay(d time.Duration) Option {
	return func(s *Sequencer) {
		s.phaseDelay = d
	}
}

// WithIconFadeDelay sets the delay between displaying the secondary icon
// and fading it in.
func WithIconFadeDelay(d time.Duration) Option {
	return func(s *Sequencer) {
		s.iconFadeDelay = d
	}
}

// WithDotInterval sets the ellipsis cadence.
func WithDotInterval(d time.Duration) Option {
	return func(s *Sequencer) {
		s.dotInterval = d
	}
}

// WithLocator maps image ids to the source handed to the view. The default
// is assets.Path.
func WithLocator(locate func(imageID string) string) Option {
	return func(s *Sequencer) {
		if locate != nil {
			s.locate = locate
		}
	}
}

// WithDebugf routes trace output to fn.
func WithDebugf(fn func(format string, args ...any)) Option {
	return func(s *Sequencer) {
		if fn != nil {
			s.debugf = fn
		}
	}
}

// WithObserver registers fn to receive every Event.
func WithObserver(fn func(Event)) Option {
	return func(s *Sequencer) {
		if fn != nil {
			s.observe = fn
		}
	}
}

// Sequencer is the step state machine. Steps 0..N-1 run in order; the last
// step is terminal and is held until Teardown or the next Start.
type Sequencer struct {
	steps []Step
	view  View
	sched Scheduler
	dots  *DotAnimator

	phaseDelay    time.Duration
	iconFadeDelay time.Duration
	dotInterval   time.Duration
	locate        func(string) string
	debugf        func(string, ...any)
	observe       func(Event)

	current          int
	previousImage    string
	previousTerminal bool
	finished         bool

	// pending is the scheduled advance to the next step. The others are
	// the in-flight phases of the current transition.
	pending  Timer
	commit   Timer
	frame    Timer
	iconFade Timer
}

// transition holds what RunStep derived for one step.
type transition struct {
	index          int
	step           Step
	last           bool
	animatePrimary bool
	imageChanged   bool
	showSecondary  bool
}

// New creates a sequencer over steps. The steps are copied.
func New(steps []Step, view View, sched Scheduler, opts ...Option) (*Sequencer, error) {
	if view == nil {
		return nil, ErrNilView
	}
	if sched == nil {
		return nil, ErrNilScheduler
	}
	if err := ValidateSteps(steps); err != nil {
		return nil, err
	}

	s := &Sequencer{
		steps:         append([]Step(nil), steps...),
		view:          view,
		sched:         sched,
		phaseDelay:    DefaultPhaseDelay,
		iconFadeDelay: DefaultIconFadeDelay,
		dotInterval:   DefaultDotInterval,
		locate:        assets.Path,
		debugf:        func(string, ...any) {},
		observe:       func(Event) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.dots = NewDotAnimator(view, sched, s.dotInterval)
	return s, nil
}

// Current returns the index of the step most recently started.
func (s *Sequencer) Current() int {
	return s.current
}

// PreviousImage returns the image id committed by the last completed
// transition, or "" before the first Start.
func (s *Sequencer) PreviousImage() string {
	return s.previousImage
}

// Finished reports whether the terminal step has been committed.
func (s *Sequencer) Finished() bool {
	return s.finished
}

// Dots exposes the sequencer's dot animator.
func (s *Sequencer) Dots() *DotAnimator {
	return s.dots
}

// Start resets the sequence and applies step 0 directly, without fades,
// since there is no visible state to transition from.
func (s *Sequencer) Start() {
	s.cancelAll()
	s.current = 0
	s.finished = false

	first := s.steps[0]
	s.debugf("sequence start: %d steps, first image %s", len(s.steps), first.ImageID)
	s.emit(StepStarted, 0, first)

	s.view.SetPrimarySource(s.locate(first.ImageID))
	s.dots.Start(first.Text)
	s.view.SetPrimaryVisible(true)
	s.view.SetTextVisible(true)
	s.view.SetSecondaryDisplayed(false)
	s.view.SetSecondaryOpacity(0)

	s.previousImage = first.ImageID
	s.previousTerminal = first.TerminalVisual
	s.emit(StepCommitted, 0, first)

	s.advance(transition{index: 0, step: first, last: len(s.steps) == 1})
}

// RunStep transitions to step index. An index past the end cancels any
// pending advance and does nothing else.
func (s *Sequencer) RunStep(index int) {
	if index < 0 || index >= len(s.steps) {
		s.debugf("step %d out of range [0,%d), stopping", index, len(s.steps))
		stopTimer(&s.pending)
		return
	}

	step := s.steps[index]
	imageChanged := step.ImageID != s.previousImage
	t := transition{
		index:          index,
		step:           step,
		last:           index == len(s.steps)-1,
		imageChanged:   imageChanged,
		animatePrimary: step.TerminalVisual || (s.previousTerminal && imageChanged),
		showSecondary:  step.TerminalVisual,
	}
	s.current = index
	s.debugf("step %d: image=%s previous=%s animate=%t changed=%t secondary=%t",
		index, step.ImageID, s.previousImage, t.animatePrimary, t.imageChanged, t.showSecondary)
	s.emit(StepStarted, index, step)

	if t.animatePrimary {
		s.view.SetPrimaryVisible(false)
	}
	if t.imageChanged && s.previousTerminal {
		stopTimer(&s.iconFade)
		s.view.SetSecondaryDisplayed(false)
		s.view.SetSecondaryOpacity(0)
	}
	s.view.SetTextVisible(false)

	stopTimer(&s.commit)
	stopTimer(&s.frame)
	s.commit = s.sched.AfterFunc(s.phaseDelay, func() {
		s.commit = nil
		s.applyCommit(t)
	})
}

// Teardown cancels everything scheduled and stops the dot animation.
// Callbacks already running are not interrupted.
func (s *Sequencer) Teardown() {
	s.cancelAll()
	s.debugf("sequence torn down at step %d", s.current)
	s.emit(SequenceTornDown, s.current, s.steps[s.current])
}

func (s *Sequencer) applyCommit(t transition) {
	if t.imageChanged {
		s.view.SetPrimarySource(s.locate(t.step.ImageID))
	}
	s.dots.Stop()
	if !t.last {
		s.dots.Start(t.step.Text)
	}
	s.frame = s.sched.NextFrame(func() {
		s.frame = nil
		s.reveal(t)
	})
}

func (s *Sequencer) reveal(t transition) {
	// The primary visual is visible in every state except the window
	// between fade-out and this frame.
	s.view.SetPrimaryVisible(true)

	if t.imageChanged && t.showSecondary {
		s.view.SetSecondaryDisplayed(true)
		stopTimer(&s.iconFade)
		s.iconFade = s.sched.AfterFunc(s.iconFadeDelay, func() {
			s.iconFade = nil
			s.view.SetSecondaryOpacity(1)
		})
	}
	s.view.SetTextVisible(true)

	s.previousImage = t.step.ImageID
	s.previousTerminal = t.step.TerminalVisual
	s.emit(StepCommitted, t.index, t.step)

	s.advance(t)
}

// advance makes the scheduling decision once step t.index is committed.
func (s *Sequencer) advance(t transition) {
	switch {
	case t.last:
		s.dots.Stop()
		s.view.SetText(t.step.Text)
		s.finished = true
		s.debugf("step %d is terminal, sequence finished", t.index)
		s.emit(SequenceFinished, t.index, t.step)
	case t.step.Duration > 0:
		stopTimer(&s.pending)
		next := t.index + 1
		s.pending = s.sched.AfterFunc(t.step.Duration, func() {
			s.pending = nil
			s.RunStep(next)
		})
	default:
		s.RunStep(t.index + 1)
	}
}

func (s *Sequencer) cancelAll() {
	stopTimer(&s.pending)
	stopTimer(&s.commit)
	stopTimer(&s.frame)
	stopTimer(&s.iconFade)
	s.dots.Stop()
}

func (s *Sequencer) emit(kind EventKind, index int, step Step) {
	s.observe(Event{Kind: kind, Index: index, Step: step})
}
