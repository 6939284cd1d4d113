// internal/ui/headless.go
package ui

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/musesonar/sonar-cli/internal/config"
	"github.com/musesonar/sonar-cli/internal/sequence"
)

// RunSequence plays the configured loading sequence on w without a TUI. It
// returns nil once the terminal step has settled, or the context error if
// ctx is cancelled first.
func RunSequence(ctx context.Context, w io.Writer, cfg *config.Config, debugf func(string, ...any)) error {
	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	loop := sequence.NewLoop()
	view := NewStatusView(w)
	started := time.Now()
	finished := false

	opts := append(cfg.SequenceOptions(),
		sequence.WithDebugf(debugf),
		sequence.WithObserver(func(e sequence.Event) {
			if e.Kind != sequence.SequenceFinished {
				return
			}
			finished = true
			// Let the secondary icon finish its reveal before exiting.
			loop.AfterFunc(cfg.IconFadeDelay+cfg.PhaseDelay, func() {
				view.Done(time.Since(started))
				stop()
			})
		}),
	)
	seq, err := sequence.New(cfg.Steps, view, loop, opts...)
	if err != nil {
		return err
	}

	loop.Post(seq.Start)
	runErr := loop.Run(runCtx)

	// The loop has exited, so this goroutine is now the only one touching seq.
	seq.Teardown()

	if finished && ctx.Err() == nil {
		return nil
	}
	if ctx.Err() != nil {
		view.Interrupted()
		return ctx.Err()
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}
