package sequence

import (
	"errors"
	"fmt"
	"time"
)

// Step is one entry of the loading sequence.
type Step struct {
	// Duration is how long the step stays on screen after its commit.
	// Zero advances to the next step immediately.
	Duration time.Duration
	ImageID  string
	Text     string
	// TerminalVisual marks the "solved" image. Entering or leaving it
	// animates the primary visual, and entering it reveals the secondary
	// icon.
	TerminalVisual bool
}

var (
	ErrNoSteps      = errors.New("sequence has no steps")
	ErrNilView      = errors.New("sequence view is nil")
	ErrNilScheduler = errors.New("sequence scheduler is nil")
)

// StepError describes an invalid step.
type StepError struct {
	Index   int
	Message string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: %s", e.Index, e.Message)
}

// ValidateSteps checks that steps form a usable sequence.
func ValidateSteps(steps []Step) error {
	if len(steps) == 0 {
		return ErrNoSteps
	}
	terminal := make(map[string]bool)
	for i, s := range steps {
		if s.Duration < 0 {
			return &StepError{Index: i, Message: fmt.Sprintf("negative duration %v", s.Duration)}
		}
		if s.ImageID == "" {
			return &StepError{Index: i, Message: "image is empty"}
		}
		if marked, seen := terminal[s.ImageID]; seen && marked != s.TerminalVisual {
			return &StepError{Index: i, Message: fmt.Sprintf("image %q is marked terminal inconsistently", s.ImageID)}
		}
		terminal[s.ImageID] = s.TerminalVisual
	}
	return nil
}
