// Package loading is the idea submission form and the loading sequence that
// plays while the analysis runs.
package loading

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/musesonar/sonar-cli/internal/config"
	"github.com/musesonar/sonar-cli/internal/sequence"
	"github.com/musesonar/sonar-cli/internal/tui"
)

// Labels shown on the submit control and in the alert.
const (
	SubmitLabel     = "Analyze"
	SubmittingLabel = "Analyzing..."
	AlertEmptyIdea  = "Please enter your idea!"
)

// Option configures the model
type Option func(*Model)

// WithIdea pre-fills the input.
func WithIdea(idea string) Option {
	return func(m *Model) {
		m.input.SetValue(idea)
	}
}

// WithAutoSubmit submits the form as soon as the program starts.
func WithAutoSubmit() Option {
	return func(m *Model) {
		m.autoSubmit = true
	}
}

// WithOnSubmit registers fn to run with the trimmed idea on a valid
// submission.
func WithOnSubmit(fn func(idea string)) Option {
	return func(m *Model) {
		m.onSubmit = fn
	}
}

// WithDebugf routes sequencer tracing to fn.
func WithDebugf(fn func(format string, args ...any)) Option {
	return func(m *Model) {
		m.debugf = fn
	}
}

// submitMsg asks the model to submit the form.
type submitMsg struct{}

// Model is the bubbletea model for the form and loading container.
type Model struct {
	input   textinput.Model
	spinner spinner.Model

	panel *panel
	sched *scheduler
	seq   *sequence.Sequencer

	onSubmit   func(string)
	debugf     func(string, ...any)
	autoSubmit bool

	alert     string
	submitted bool
	idea      string
	quitting  bool
}

// New builds the model around the configured steps.
func New(cfg *config.Config, opts ...Option) (Model, error) {
	ti := textinput.New()
	ti.Placeholder = "Describe the idea you want to check"
	ti.Prompt = "› "
	ti.CharLimit = 1000
	ti.Width = 60
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(tui.ColorPrimary)

	m := Model{
		input:   ti,
		spinner: sp,
		panel:   &panel{},
		sched:   newScheduler(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	seqOpts := append(cfg.SequenceOptions(), sequence.WithDebugf(m.debugf))
	seq, err := sequence.New(cfg.Steps, m.panel, m.sched, seqOpts...)
	if err != nil {
		return Model{}, err
	}
	m.seq = seq
	return m, nil
}

func (m Model) Init() tea.Cmd {
	if m.autoSubmit {
		return func() tea.Msg { return submitMsg{} }
	}
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerMsg:
		m.sched.fire(msg.id)
		return m, m.sched.drain()

	case submitMsg:
		return m.submit()

	case spinner.TickMsg:
		if !m.submitted || m.seq.Finished() || m.quitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.teardown()
		}
		if m.alert != "" {
			// The alert blocks everything until dismissed.
			m.alert = ""
			return m, nil
		}
		switch msg.Type {
		case tea.KeyEsc:
			return m.teardown()
		case tea.KeyEnter:
			if !m.submitted {
				return m.submit()
			}
			return m, nil
		}
		if m.submitted {
			if msg.String() == "q" {
				return m.teardown()
			}
			return m, nil
		}
	}

	if m.submitted {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.submitted {
		return m, nil
	}
	idea := strings.TrimSpace(m.input.Value())
	if idea == "" {
		m.alert = AlertEmptyIdea
		return m, nil
	}

	m.submitted = true
	m.idea = idea
	m.input.Blur()
	m.seq.Start()
	if m.onSubmit != nil {
		m.onSubmit(idea)
	}
	return m, tea.Batch(m.spinner.Tick, m.sched.drain())
}

// teardown is the view-hidden signal: nothing scheduled may outlive it.
func (m Model) teardown() (tea.Model, tea.Cmd) {
	m.seq.Teardown()
	m.quitting = true
	return m, tea.Quit
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(tui.TitleStyle.Render("MuseSonar · idea originality check"))
	sb.WriteString("\n")

	if m.submitted {
		sb.WriteString(tui.FormatKeyValue("Your idea", m.idea))
	} else {
		sb.WriteString(tui.LabelStyle.Render("Your idea"))
		sb.WriteString("\n")
		sb.WriteString(m.input.View())
	}
	sb.WriteString("\n\n")

	if m.submitted {
		sb.WriteString(tui.Button(SubmittingLabel, false))
	} else {
		sb.WriteString(tui.Button(SubmitLabel, true))
	}
	sb.WriteString("\n\n")

	if m.alert != "" {
		sb.WriteString(tui.AlertStyle.Render("⚠ " + m.alert))
		sb.WriteString("\n")
		sb.WriteString(tui.MutedStyle.Render("(press any key)"))
		sb.WriteString("\n")
		return sb.String()
	}

	if m.submitted && !m.quitting {
		finished := m.seq.Finished()
		indicator := ""
		if !finished {
			indicator = m.spinner.View()
		}
		sb.WriteString(m.panel.render(indicator, finished))
		sb.WriteString("\n")
		sb.WriteString(tui.MutedStyle.Render("(q or esc to leave)"))
	} else if !m.submitted {
		sb.WriteString(tui.MutedStyle.Render("(enter to analyze, esc to quit)"))
	}
	sb.WriteString("\n")
	return sb.String()
}

// Idea returns the submitted idea, or "" if nothing was submitted.
func (m Model) Idea() string {
	return m.idea
}

// Submitted reports whether a valid idea was submitted.
func (m Model) Submitted() bool {
	return m.submitted
}

// Finished reports whether the sequence reached its terminal step.
func (m Model) Finished() bool {
	return m.seq.Finished()
}
