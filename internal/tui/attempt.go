// Package tui shows a spinner while the connection attempt blocks.
package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/pranshuparmar/conndiag/pkg/model"
)

var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")) // Purple
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#767676")) // Dimmed Gray
)

// AttemptFunc performs the single connection attempt.
type AttemptFunc func(ctx context.Context) model.ConnectionOutcome

type outcomeMsg model.ConnectionOutcome

type attemptModel struct {
	ctx     context.Context
	cancel  context.CancelFunc
	attempt AttemptFunc
	label   string
	spinner spinner.Model
	outcome *model.ConnectionOutcome
}

func newAttemptModel(ctx context.Context, label string, attempt AttemptFunc) attemptModel {
	ctx, cancel := context.WithCancel(ctx)
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	return attemptModel{
		ctx:     ctx,
		cancel:  cancel,
		attempt: attempt,
		label:   label,
		spinner: s,
	}
}

func (m attemptModel) run() tea.Cmd {
	return func() tea.Msg {
		return outcomeMsg(m.attempt(m.ctx))
	}
}

func (m attemptModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run())
}

func (m attemptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case outcomeMsg:
		o := model.ConnectionOutcome(msg)
		m.outcome = &o
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			// The dial returns promptly once cancelled; keep waiting for it.
			m.cancel()
		}
		return m, nil
	case tea.InterruptMsg:
		m.cancel()
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m attemptModel) View() string {
	if m.outcome != nil {
		return ""
	}
	return fmt.Sprintf("%s Connecting to %s %s\n", m.spinner.View(), m.label, hintStyle.Render("(ctrl+c to abort)"))
}

// RunAttempt runs attempt under a spinner drawn on out and returns its
// outcome. Cancelling ctx cancels the attempt; the program still waits for
// the attempt to return so the outcome can be classified.
func RunAttempt(ctx context.Context, label string, out io.Writer, attempt AttemptFunc) (model.ConnectionOutcome, error) {
	return runAttempt(ctx, label, attempt, tea.WithOutput(out), tea.WithoutSignalHandler())
}

func runAttempt(ctx context.Context, label string, attempt AttemptFunc, opts ...tea.ProgramOption) (model.ConnectionOutcome, error) {
	m := newAttemptModel(ctx, label, attempt)
	defer m.cancel()

	p := tea.NewProgram(m, opts...)
	final, err := p.Run()
	if err != nil {
		return model.ConnectionOutcome{}, errors.Wrap(err, "error running spinner")
	}
	fm, ok := final.(attemptModel)
	if !ok || fm.outcome == nil {
		return model.ConnectionOutcome{}, errors.New("connection attempt did not finish")
	}
	return *fm.outcome, nil
}
