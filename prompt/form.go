package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type (
	// Form asks both questions in a small terminal UI.
	Form struct {
		in  io.Reader
		out io.Writer
	}

	stage byte

	formModel struct {
		err        error
		help       help.Model
		name       textinput.Model
		stage      stage
		useDaisyUI bool
		aborted    bool
	}

	nameKeyMap struct{}

	confirmKeyMap struct{}
)

const (
	nameStage stage = iota
	confirmStage
	doneStage
)

var (
	keys = struct {
		accept key.Binding
		toggle key.Binding
		yes    key.Binding
		no     key.Binding
		quit   key.Binding
	}{
		accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "accept"),
		),
		toggle: key.NewBinding(
			key.WithKeys("left", "right", "tab", "h", "l"),
			key.WithHelp("←/→", "toggle"),
		),
		yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		no: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "no"),
		),
		quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}

	palette = struct {
		magenta lipgloss.Color
		green   lipgloss.Color
		red     lipgloss.Color
		grey    lipgloss.Color
	}{
		magenta: lipgloss.Color("212"),
		green:   lipgloss.Color("42"),
		red:     lipgloss.Color("196"),
		grey:    lipgloss.Color("245"),
	}

	questionMark = lipgloss.NewStyle().Foreground(palette.green).Render("?")
	questionText = lipgloss.NewStyle().Bold(true)
	answerText   = lipgloss.NewStyle().Foreground(palette.magenta)
	errorText    = lipgloss.NewStyle().Foreground(palette.red)
	hintText     = lipgloss.NewStyle().Foreground(palette.grey)
	selectedText = lipgloss.NewStyle().Foreground(palette.magenta).Underline(true)
)

func (nameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.accept, keys.quit}
}

func (nameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{keys.accept, keys.quit}}
}

func (confirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.yes, keys.no, keys.toggle, keys.accept, keys.quit}
}

func (confirmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.yes, keys.no, keys.toggle},
		{keys.accept, keys.quit},
	}
}

func NewForm(in io.Reader, out io.Writer) *Form {
	return &Form{in: in, out: out}
}

// Non-nil returned error wraps [ErrAborted] if the user quit or ctx was cancelled.
func (f *Form) Collect(ctx context.Context) (Answers, error) {
	p := tea.NewProgram(newFormModel(), tea.WithContext(ctx), tea.WithInput(f.in), tea.WithOutput(f.out))

	final, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return Answers{}, fmt.Errorf("%w: %w", ErrAborted, err)
	} else if err != nil {
		return Answers{}, fmt.Errorf("failed to run prompt: %w", err)
	}

	return final.(formModel).answers()
}

func newFormModel() formModel {
	ti := textinput.New()
	ti.Prompt = " "
	ti.CharLimit = 214
	ti.Width = 40
	ti.Focus()

	return formModel{
		name:  ti,
		help:  help.New(),
		stage: nameStage,
	}
}

func (m formModel) answers() (Answers, error) {
	if m.aborted || m.stage != doneStage {
		return Answers{}, ErrAborted
	}

	return Answers{ProjectName: strings.TrimSpace(m.name.Value()), UseDaisyUI: m.useDaisyUI}, nil
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.aborted = true

			return m, tea.Quit
		case m.stage == nameStage:
			return m.updateName(msg)
		case m.stage == confirmStage:
			return m.updateConfirm(msg)
		default:
			return m, nil
		}
	}

	if m.stage == nameStage {
		m.name, cmd = m.name.Update(msg)
	}

	return m, cmd
}

func (m formModel) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if key.Matches(msg, keys.accept) {
		if m.err = ValidateProjectName(m.name.Value()); m.err != nil {
			return m, nil
		}

		m.name.Blur()
		m.stage = confirmStage

		return m, nil
	}

	m.err = nil
	m.name, cmd = m.name.Update(msg)

	return m, cmd
}

func (m formModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.useDaisyUI = true
	case key.Matches(msg, keys.no):
		m.useDaisyUI = false
	case key.Matches(msg, keys.toggle):
		m.useDaisyUI = !m.useDaisyUI

		return m, nil
	case key.Matches(msg, keys.accept):
	default:
		return m, nil
	}

	m.stage = doneStage

	return m, tea.Quit
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}

	return "No"
}

func (m formModel) View() string {
	var b strings.Builder

	b.WriteString(questionMark + " " + questionText.Render(nameQuestion))

	if m.stage == nameStage {
		b.WriteString(m.name.View())
		b.WriteRune('\n')

		if m.err != nil {
			b.WriteString(errorText.Render(">> " + m.err.Error()))
			b.WriteRune('\n')
		}

		if !m.aborted {
			b.WriteRune('\n')
			b.WriteString(m.help.View(nameKeyMap{}))
			b.WriteRune('\n')
		}

		return b.String()
	}

	b.WriteString(" " + answerText.Render(strings.TrimSpace(m.name.Value())) + "\n")
	b.WriteString(questionMark + " " + questionText.Render(confirmQuestion) + " ")

	if m.stage == doneStage || m.aborted {
		b.WriteString(answerText.Render(yesNo(m.useDaisyUI)) + "\n")

		return b.String()
	}

	for _, v := range []bool{true, false} {
		if v == m.useDaisyUI {
			b.WriteString(selectedText.Render(yesNo(v)))
		} else {
			b.WriteString(hintText.Render(yesNo(v)))
		}

		b.WriteRune(' ')
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(confirmKeyMap{}))
	b.WriteRune('\n')

	return b.String()
}
