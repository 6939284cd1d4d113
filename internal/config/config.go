// Package config holds the build-time loading sequence configuration.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hashicorp/go-version"
	"gopkg.in/yaml.v3"

	"github.com/musesonar/sonar-cli/internal/sequence"
)

//go:embed steps.yaml
var defaultSteps []byte

// SupportedVersions is the range of config versions this build understands.
const SupportedVersions = ">= 1.0, < 2.0"

// File is the on-disk layout of steps.yaml.
type File struct {
	Version string       `yaml:"version"`
	Timing  Timing       `yaml:"timing"`
	Steps   []StepConfig `yaml:"steps"`
}

// Timing holds the fixed delays in milliseconds. Zero selects the default.
type Timing struct {
	DotIntervalMS   int `yaml:"dot_interval_ms"`
	PhaseDelayMS    int `yaml:"phase_delay_ms"`
	IconFadeDelayMS int `yaml:"icon_fade_delay_ms"`
}

// StepConfig is one step as written in steps.yaml.
type StepConfig struct {
	DurationMS     int    `yaml:"duration_ms"`
	Image          string `yaml:"image"`
	Text           string `yaml:"text"`
	TerminalVisual bool   `yaml:"terminal_visual"`
}

// Config is the parsed, validated sequence configuration.
type Config struct {
	Version       *version.Version
	DotInterval   time.Duration
	PhaseDelay    time.Duration
	IconFadeDelay time.Duration
	Steps         []sequence.Step
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Default returns the configuration compiled into the binary.
func Default() (*Config, error) {
	return Parse(defaultSteps)
}

// DefaultYAML returns the raw embedded steps.yaml.
func DefaultYAML() []byte {
	return bytes.Clone(defaultSteps)
}

// Parse decodes and validates a steps.yaml document. Unknown keys are
// rejected.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ValidationError{Field: "steps", Message: "document is empty"}
		}
		return nil, fmt.Errorf("failed to parse steps config: %w", err)
	}
	return f.Build()
}

// Build validates f and converts it into a Config.
func (f File) Build() (*Config, error) {
	v, err := checkVersion(f.Version)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Version:       v,
		DotInterval:   sequence.DefaultDotInterval,
		PhaseDelay:    sequence.DefaultPhaseDelay,
		IconFadeDelay: sequence.DefaultIconFadeDelay,
	}
	timings := []struct {
		field string
		ms    int
		dst   *time.Duration
	}{
		{"timing.dot_interval_ms", f.Timing.DotIntervalMS, &cfg.DotInterval},
		{"timing.phase_delay_ms", f.Timing.PhaseDelayMS, &cfg.PhaseDelay},
		{"timing.icon_fade_delay_ms", f.Timing.IconFadeDelayMS, &cfg.IconFadeDelay},
	}
	for _, t := range timings {
		if t.ms < 0 {
			return nil, ValidationError{Field: t.field, Message: "must not be negative"}
		}
		if t.ms > 0 {
			*t.dst = time.Duration(t.ms) * time.Millisecond
		}
	}

	for i, s := range f.Steps {
		if s.DurationMS < 0 {
			return nil, ValidationError{Field: fmt.Sprintf("steps[%d].duration_ms", i), Message: "must not be negative"}
		}
		cfg.Steps = append(cfg.Steps, sequence.Step{
			Duration:       time.Duration(s.DurationMS) * time.Millisecond,
			ImageID:        s.Image,
			Text:           s.Text,
			TerminalVisual: s.TerminalVisual,
		})
	}
	if err := sequence.ValidateSteps(cfg.Steps); err != nil {
		return nil, ValidationError{Field: "steps", Message: err.Error()}
	}
	return cfg, nil
}

// SequenceOptions returns the sequencer options carrying cfg's timing.
func (c *Config) SequenceOptions() []sequence.Option {
	return []sequence.Option{
		sequence.WithDotInterval(c.DotInterval),
		sequence.WithPhaseDelay(c.PhaseDelay),
		sequence.WithIconFadeDelay(c.IconFadeDelay),
	}
}

// TotalDwell is the summed step durations, excluding transition delays.
func (c *Config) TotalDwell() time.Duration {
	var total time.Duration
	for _, s := range c.Steps {
		total += s.Duration
	}
	return total
}

func checkVersion(raw string) (*version.Version, error) {
	if raw == "" {
		return nil, ValidationError{Field: "version", Message: "is required"}
	}
	v, err := version.NewVersion(raw)
	if err != nil {
		return nil, ValidationError{Field: "version", Message: err.Error()}
	}
	constraints, err := version.NewConstraint(SupportedVersions)
	if err != nil {
		return nil, fmt.Errorf("invalid supported version range: %w", err)
	}
	if !constraints.Check(v) {
		return nil, ValidationError{Field: "version", Message: fmt.Sprintf("%s is outside %s", v, SupportedVersions)}
	}
	return v, nil
}
