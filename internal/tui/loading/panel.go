package loading

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/musesonar/sonar-cli/internal/assets"
	"github.com/musesonar/sonar-cli/internal/sequence"
	"github.com/musesonar/sonar-cli/internal/tui"
)

// panel is the loading container. It implements sequence.View and renders
// the current state of each region.
type panel struct {
	text        string
	textVisible bool

	primarySrc     string
	primaryVisible bool

	secondaryDisplayed bool
	secondaryOpacity   float64
}

var _ sequence.View = (*panel)(nil)

func (p *panel) SetText(text string)                  { p.text = text }
func (p *panel) SetTextVisible(visible bool)          { p.textVisible = visible }
func (p *panel) SetPrimarySource(src string)          { p.primarySrc = src }
func (p *panel) SetPrimaryVisible(visible bool)       { p.primaryVisible = visible }
func (p *panel) SetSecondaryDisplayed(displayed bool) { p.secondaryDisplayed = displayed }
func (p *panel) SetSecondaryOpacity(opacity float64)  { p.secondaryOpacity = opacity }

// render draws the container. indicator is prefixed to the text while the
// sequence is still running; once finished the text is marked done.
func (p *panel) render(indicator string, finished bool) string {
	art, _ := assets.Art(p.primarySrc)
	primary := tui.ArtStyle.Render(art)
	if !p.primaryVisible {
		primary = blank(art)
	}

	visual := primary
	if p.secondaryDisplayed {
		icon, _ := assets.Art(assets.SecondaryIcon)
		if p.secondaryOpacity >= 1 {
			icon = tui.WarningStyle.Render(icon)
		} else {
			// In layout but transparent.
			icon = blank(icon)
		}
		visual = lipgloss.JoinHorizontal(lipgloss.Center, primary, "   ", icon)
	}

	line := ""
	if p.textVisible {
		switch {
		case finished:
			line = tui.SuccessStyle.Render("✓ " + p.text)
		case indicator != "":
			line = indicator + " " + tui.SpinnerStyle.Render(p.text)
		default:
			line = tui.SpinnerStyle.Render(p.text)
		}
	}

	return tui.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, visual, "", line))
}

// blank returns whitespace occupying the same block as s.
func blank(s string) string {
	lines := strings.Split(s, "\n")
	width := lipgloss.Width(s)
	for i := range lines {
		lines[i] = strings.Repeat(" ", width)
	}
	return strings.Join(lines, "\n")
}
