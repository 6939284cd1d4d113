// internal/ui/status.go
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/musesonar/sonar-cli/internal/assets"
	"github.com/musesonar/sonar-cli/internal/sequence"
)

// StatusView renders the loading sequence as plain status lines, for output
// that is not a terminal. Fades and dot ticks have no line form, so only
// changes of text, image and icon are written.
type StatusView struct {
	writer io.Writer

	lastBase   string
	lastSource string
	displayed  bool
	iconShown  bool
}

var _ sequence.View = (*StatusView)(nil)

// NewStatusView creates a status view writing to w, or stdout if w is nil.
func NewStatusView(w io.Writer) *StatusView {
	if w == nil {
		w = os.Stdout
	}
	return &StatusView{writer: w}
}

func (v *StatusView) SetText(text string) {
	base := strings.TrimRight(text, ".")
	if base == v.lastBase {
		return
	}
	v.lastBase = base
	fmt.Fprintf(v.writer, "%s %s\n", color.CyanString("◆"), text)
}

func (v *StatusView) SetTextVisible(bool) {}

func (v *StatusView) SetPrimarySource(src string) {
	if src == v.lastSource {
		return
	}
	v.lastSource = src
	fmt.Fprintf(v.writer, "%s %s\n", color.HiBlackString("▸"), color.HiBlackString("image %s", assets.ID(src)))
}

func (v *StatusView) SetPrimaryVisible(bool) {}

func (v *StatusView) SetSecondaryDisplayed(displayed bool) {
	v.displayed = displayed
	if !displayed {
		v.iconShown = false
	}
}

func (v *StatusView) SetSecondaryOpacity(opacity float64) {
	if opacity < 1 {
		v.iconShown = false
		return
	}
	if v.displayed && !v.iconShown {
		v.iconShown = true
		fmt.Fprintf(v.writer, "%s %s\n", color.YellowString("✦"), "insight ready")
	}
}

// Done prints the closing line of a completed sequence.
func (v *StatusView) Done(elapsed time.Duration) {
	fmt.Fprintf(v.writer, "%s %s\n", color.GreenString("✓"), color.HiBlackString("loading sequence complete (%s)", formatDuration(elapsed)))
}

// Interrupted prints the closing line of a sequence cut short.
func (v *StatusView) Interrupted() {
	fmt.Fprintf(v.writer, "%s %s\n", color.YellowString("⚠"), "interrupted")
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}
