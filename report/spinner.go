package report

import (
	"io"

	bspinner "github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type (
	spinner struct {
		program *tea.Program
		done    chan struct{}
	}

	spinnerModel struct {
		spinner bspinner.Model
		title   string
		final   string
		stopped bool
	}

	titleMsg string

	stopMsg struct {
		final string
	}
)

// startSpinner runs the animation in its own goroutine until stop is called.
// The program never reads input, so the terminal stays usable for the subprocesses it waits on.
func startSpinner(out io.Writer, title string) *spinner {
	s := bspinner.New(bspinner.WithSpinner(bspinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(palette.magenta)

	sp := spinner{
		program: tea.NewProgram(spinnerModel{spinner: s, title: title}, tea.WithInput(nil), tea.WithOutput(out)),
		done:    make(chan struct{}),
	}

	go func() {
		defer close(sp.done)

		_, _ = sp.program.Run()
	}()

	return &sp
}

func (sp *spinner) setTitle(title string) {
	sp.program.Send(titleMsg(title))
}

func (sp *spinner) println(line string) {
	sp.program.Println(line)
}

func (sp *spinner) stop(final string) {
	sp.program.Send(stopMsg{final: final})

	<-sp.done
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case titleMsg:
		m.title = string(msg)

		return m, nil
	case stopMsg:
		m.final = msg.final
		m.stopped = true

		return m, tea.Quit
	case bspinner.TickMsg:
		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	default:
		return m, nil
	}
}

func (m spinnerModel) View() string {
	if m.stopped {
		return m.final + "\n"
	}

	return m.spinner.View() + " " + m.title + "\n"
}
