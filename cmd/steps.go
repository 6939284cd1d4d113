// cmd/steps.go
package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/musesonar/sonar-cli/internal/config"
)

// stepTextWidth is the display width the text column is cut to.
const stepTextWidth = 48

var stepsRaw bool

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "Show the loading sequence steps",
	Long: `Prints the steps compiled into this binary along with their timing.
Use --yaml to print the raw embedded steps.yaml instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if stepsRaw {
			_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
			return err
		}
		cfg, err := config.Default()
		if err != nil {
			return fmt.Errorf("failed to load step config: %w", err)
		}
		return printSteps(cmd.OutOrStdout(), cfg)
	},
}

func printSteps(out io.Writer, cfg *config.Config) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tDWELL\tIMAGE\tTERMINAL\tTEXT")
	for i, s := range cfg.Steps {
		terminal := "-"
		if s.TerminalVisual {
			terminal = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i, formatDwell(s.Duration), s.ImageID, terminal, truncateText(s.Text, stepTextWidth))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	// Every step after the first pays one phase delay before it is shown.
	transitions := time.Duration(0)
	if n := len(cfg.Steps); n > 1 {
		transitions = time.Duration(n-1) * cfg.PhaseDelay
	}
	fmt.Fprintf(out, "\ntotal %s (dwell %s + transitions %s), dots every %s\n",
		formatDwell(cfg.TotalDwell()+transitions), formatDwell(cfg.TotalDwell()), formatDwell(transitions), formatDwell(cfg.DotInterval))
	return nil
}

// truncateText cuts s to width terminal cells. Emoji and CJK text count as
// two cells each.
func truncateText(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

func formatDwell(d time.Duration) string {
	if d == 0 {
		return "0s"
	}
	if d%time.Second == 0 {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func init() {
	stepsCmd.Flags().BoolVar(&stepsRaw, "yaml", false, "Print the embedded steps.yaml")
	rootCmd.AddCommand(stepsCmd)
}
