package loading

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/musesonar/sonar-cli/internal/config"
)

// Result summarizes a finished program.
type Result struct {
	Idea      string
	Submitted bool
	Finished  bool
}

// Run shows the form and the loading sequence until the user leaves or ctx
// is cancelled. Leaving is not an error.
func Run(ctx context.Context, cfg *config.Config, opts ...Option) (Result, error) {
	model, err := New(cfg, opts...)
	if err != nil {
		return Result{}, err
	}

	p := tea.NewProgram(model, tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, context.Canceled) {
		return Result{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		// Killed before the first Update; the original model owns the timers.
		m = model
	}
	// Covers exits that did not pass through a key, such as ctx cancellation.
	m.seq.Teardown()

	return Result{Idea: m.Idea(), Submitted: m.Submitted(), Finished: m.Finished()}, nil
}
