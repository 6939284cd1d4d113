// cmd/analyze.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/musesonar/sonar-cli/internal/config"
	"github.com/musesonar/sonar-cli/internal/tui"
	"github.com/musesonar/sonar-cli/internal/tui/loading"
	"github.com/musesonar/sonar-cli/internal/ui"
)

// ErrEmptyIdea is returned when there is nothing to analyze.
var ErrEmptyIdea = errors.New("please enter your idea")

var analyzeCmd = &cobra.Command{
	Use:     "analyze [idea]",
	Aliases: []string{"a"},
	Short:   "Submit an idea and play the analysis loading sequence",
	Long: `Submits an idea for originality analysis and plays the loading sequence
while the analysis runs.

In a terminal an interactive form is shown. If an idea is given as an
argument it is submitted right away. Without a terminal (or with --no-tui)
the idea argument is required and progress is printed as status lines.`,
	Example: `  sonar analyze
  sonar analyze "A drone that waters houseplants"
  sonar analyze --no-tui "A drone that waters houseplants"`,
	Args: cobra.ArbitraryArgs,
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Default()
	if err != nil {
		return fmt.Errorf("failed to load step config: %w", err)
	}

	debugf := runLogger(uuid.NewString())
	idea := strings.Join(args, " ")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if tui.ShouldUseInteractive(noTUI) {
		return analyzeInteractive(ctx, cmd.OutOrStdout(), cfg, idea, debugf)
	}
	return analyzeHeadless(ctx, cmd.OutOrStdout(), cfg, idea, debugf)
}

// runLogger prefixes debug lines with a short run id so concurrent runs can
// be told apart in the shared log file.
func runLogger(runID string) func(string, ...any) {
	short := runID
	if len(short) > 8 {
		short = short[:8]
	}
	return func(format string, args ...any) {
		Debug("[run %s] "+format, append([]any{short}, args...)...)
	}
}

func analyzeInteractive(ctx context.Context, w io.Writer, cfg *config.Config, idea string, debugf func(string, ...any)) error {
	opts := []loading.Option{
		loading.WithDebugf(debugf),
		loading.WithOnSubmit(func(idea string) {
			debugf("idea submitted (%d chars)", len([]rune(idea)))
		}),
	}
	if idea != "" {
		opts = append(opts, loading.WithIdea(idea), loading.WithAutoSubmit())
	}

	res, err := loading.Run(ctx, cfg, opts...)
	if err != nil {
		return fmt.Errorf("loading view failed: %w", err)
	}
	debugf("interactive run ended (submitted=%v finished=%v)", res.Submitted, res.Finished)

	if !res.Submitted {
		fmt.Fprintln(w, tui.MutedStyle.Render("No idea submitted."))
	}
	return nil
}

func analyzeHeadless(ctx context.Context, w io.Writer, cfg *config.Config, idea string, debugf func(string, ...any)) error {
	idea = strings.TrimSpace(idea)
	if idea == "" {
		return ErrEmptyIdea
	}

	fmt.Fprintf(w, "%s Analyzing: %s\n", color.CyanString("▸"), idea)
	err := ui.RunSequence(ctx, w, cfg, debugf)
	if errors.Is(err, context.Canceled) {
		// Interrupting tears the sequence down; it is not a failure.
		return nil
	}
	return err
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
