// Package tui draws the terminal feedback shown while a request is in flight.
package tui

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vnkit/vnkit/color"
	"github.com/vnkit/vnkit/style"
	"github.com/vnkit/vnkit/util"
)

// ErrInterrupted is returned by Wait when the user pressed ctrl+c.
var ErrInterrupted = errors.New("interrupted")

type doneMsg struct{ err error }

type waitModel struct {
	spinner spinner.Model
	label   string
	task    func() error
	cancel  context.CancelFunc
	err     error
	done    bool
}

func newWaitModel(label string, task func() error, cancel context.CancelFunc) waitModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = style.New().Foreground(color.Accent)

	return waitModel{
		spinner: s,
		label:   label,
		task:    task,
		cancel:  cancel,
	}
}

func (m waitModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return doneMsg{err: m.task()}
	})
}

func (m waitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.done = true
		if m.err == nil {
			m.err = msg.err
		}
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancel()
			m.done = true
			m.err = ErrInterrupted
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m waitModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + style.Faint(m.label)
}

// Wait runs task and shows a spinner with label on stderr until it returns.
// Without a terminal task simply runs in the foreground.
func Wait(ctx context.Context, label string, task func(context.Context) error) error {
	if !util.IsTerminal() {
		return task(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := newWaitModel(label, func() error { return task(ctx) }, cancel)
	final, err := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	if m, ok := final.(waitModel); ok && m.done {
		return m.err
	}
	return ctx.Err()
}
