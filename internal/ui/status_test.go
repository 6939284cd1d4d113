package ui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/musesonar/sonar-cli/internal/config"
)

func init() {
	color.NoColor = true
}

func TestStatusViewSkipsDotTicks(t *testing.T) {
	var buf bytes.Buffer
	v := NewStatusView(&buf)

	v.SetText("Working")
	v.SetText("Working.")
	v.SetText("Working..")
	v.SetText("Working...")
	v.SetText("Next step")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	if lines[0] != "◆ Working" || lines[1] != "◆ Next step" {
		t.Errorf("unexpected lines: %q", lines)
	}
}

func TestStatusViewImageAndIcon(t *testing.T) {
	var buf bytes.Buffer
	v := NewStatusView(&buf)

	v.SetPrimarySource("/static/thinking.png")
	v.SetPrimarySource("/static/thinking.png")
	v.SetSecondaryOpacity(1) // not displayed yet
	v.SetSecondaryDisplayed(true)
	v.SetSecondaryOpacity(1)
	v.SetSecondaryOpacity(1)

	out := buf.String()
	if strings.Count(out, "image thinking.png") != 1 {
		t.Errorf("image line count wrong:\n%s", out)
	}
	if strings.Count(out, "insight ready") != 1 {
		t.Errorf("icon line count wrong:\n%s", out)
	}

	v.SetSecondaryDisplayed(false)
	v.SetSecondaryDisplayed(true)
	v.SetSecondaryOpacity(1)
	if strings.Count(buf.String(), "insight ready") != 2 {
		t.Error("icon should be announced again after being hidden")
	}
}

func fastConfig(t *testing.T, stepMS int) *config.Config {
	t.Helper()
	doc := fmt.Sprintf(`
version: "1.0"
timing:
  dot_interval_ms: 1000
  phase_delay_ms: 1
  icon_fade_delay_ms: 1
steps:
  - duration_ms: %[1]d
    image: thinking.png
    text: "Searching..."
  - duration_ms: %[1]d
    image: thinking.png
    text: "Scoring..."
  - duration_ms: 0
    image: solve.png
    text: "Done!"
    terminal_visual: true
`, stepMS)
	cfg, err := config.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("config.Parse() error = %v", err)
	}
	return cfg
}

func TestRunSequenceCompletes(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := RunSequence(ctx, &buf, fastConfig(t, 5), nil); err != nil {
		t.Fatalf("RunSequence() error = %v", err)
	}

	out := buf.String()
	order := []string{"image thinking.png", "Searching", "Scoring", "image solve.png", "Done!"}
	pos := 0
	for _, want := range order {
		i := strings.Index(out[pos:], want)
		if i < 0 {
			t.Fatalf("output missing %q after position %d:\n%s", want, pos, out)
		}
		pos += i + len(want)
	}
	for _, want := range []string{"insight ready", "loading sequence complete"} {
		if !strings.Contains(out[pos:], want) {
			t.Errorf("output missing %q after the final text:\n%s", want, out)
		}
	}
}

func TestRunSequenceInterrupted(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := RunSequence(ctx, &buf, fastConfig(t, 60000), nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("RunSequence() error = %v, want deadline exceeded", err)
	}
	if !strings.Contains(buf.String(), "interrupted") {
		t.Errorf("expected interrupted line:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "Scoring") {
		t.Error("sequence advanced after interruption")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{1500 * time.Millisecond, "1.5s"},
		{90 * time.Second, "1m30s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %s, want %s", tt.d, got, tt.want)
		}
	}
}
