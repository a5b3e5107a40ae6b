package progress

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/norman-ai/norman-cli/internal/application"
	"github.com/norman-ai/norman-cli/internal/domain"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// Work is one driver run reporting on bus.
type Work func(ctx context.Context, bus *application.ProgressBus) error

type eventMsg domain.ProgressEvent

type eventsClosedMsg struct{}

type workDoneMsg struct {
	err error
}

type model struct {
	board   *Board
	styles  styles
	spinner spinner.Model
	label   string
	events  <-chan domain.ProgressEvent
	work    tea.Cmd

	err    error
	done   bool
	closed bool
}

func newModel(label string, events <-chan domain.ProgressEvent, work tea.Cmd) model {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return model{
		board:   NewBoard(),
		styles:  newStyles(),
		spinner: s,
		label:   label,
		events:  events,
		work:    work,
	}
}

func waitForEvent(events <-chan domain.ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(event)
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForEvent(m.events), m.work)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case eventMsg:
		m.board.Apply(domain.ProgressEvent(msg))
		return m, waitForEvent(m.events)
	case eventsClosedMsg:
		m.closed = true
	case workDoneMsg:
		m.done = true
		m.err = msg.err
	default:
		return m, nil
	}

	if m.done && m.closed {
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	view := renderView(m.board, m.styles)
	if m.done && m.closed {
		return view + "\n"
	}

	return fmt.Sprintf("%s\n%s %s\n", view, m.spinner.View(), m.label)
}

// Run executes work while drawing its progress events on output. The board
// holds the final state of every stage.
func Run(ctx context.Context, output io.Writer, label string, work Work) (*Board, error) {
	events := make(chan domain.ProgressEvent)
	workCmd := func() tea.Msg {
		err := work(ctx, application.NewProgressBus(events))
		close(events)
		return workDoneMsg{err: err}
	}

	p := tea.NewProgram(
		newModel(label, events, workCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	result, ok := finalModel.(model)
	if !ok {
		return nil, ErrUnexpectedRenderModel
	}

	return result.board, result.err
}

// Render draws the final state of a finished run.
func Render(board *Board) string {
	return renderView(board, newStyles())
}
