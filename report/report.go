// Package report shows progress while the project is being set up and prints the outcome.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type (
	Reporter struct {
		out     io.Writer
		errOut  io.Writer
		spinner *spinner
		tty     bool
	}
)

var (
	palette = struct {
		magenta lipgloss.Color
		green   lipgloss.Color
		red     lipgloss.Color
		yellow  lipgloss.Color
	}{
		magenta: lipgloss.Color("212"),
		green:   lipgloss.Color("42"),
		red:     lipgloss.Color("196"),
		yellow:  lipgloss.Color("184"),
	}

	successMark = lipgloss.NewStyle().Foreground(palette.green).Render("✔")
	failureMark = lipgloss.NewStyle().Foreground(palette.red).Render("✖")
	warningMark = lipgloss.NewStyle().Foreground(palette.yellow).Render("!")
	commandText = lipgloss.NewStyle().Foreground(palette.magenta)
)

// New returns a reporter writing progress and success to out, failures to errOut.
// When tty is true progress is an animated spinner; otherwise every step is a plain line.
func New(out, errOut io.Writer, tty bool) *Reporter {
	return &Reporter{out: out, errOut: errOut, tty: tty}
}

func (r *Reporter) Start(title string) {
	if !r.tty {
		_, _ = fmt.Fprintf(r.out, "- %s\n", title)

		return
	}

	if r.spinner != nil {
		r.spinner.setTitle(title)

		return
	}

	r.spinner = startSpinner(r.out, title)
}

// Step replaces the progress title with the current step.
func (r *Reporter) Step(title string) {
	r.Start(title)
}

func (r *Reporter) Warn(msg string) {
	line := warningMark + " " + msg

	if r.spinner != nil {
		r.spinner.println(line)

		return
	}

	_, _ = fmt.Fprintln(r.out, line)
}

func (r *Reporter) stop(final string) {
	if r.spinner != nil {
		r.spinner.stop(final)
		r.spinner = nil

		return
	}

	_, _ = fmt.Fprintln(r.out, final)
}

// Succeed prints the confirmation and the commands that start the development server.
func (r *Reporter) Succeed(projectName string, next ...string) {
	r.stop(successMark + " Project initialized successfully!")

	var b strings.Builder

	b.WriteString("\nTo start the development server, navigate to the project folder using the following commands:\n\n")
	b.WriteString("  " + commandText.Render("cd "+projectName) + "\n")

	for _, cmd := range next {
		b.WriteString("  " + commandText.Render(cmd) + "\n")
	}

	_, _ = io.WriteString(r.out, b.String())
}

// Fail prints the failure and the error message. It never prints follow-up commands.
func (r *Reporter) Fail(err error) {
	r.stop(failureMark + " Error initializing project:")

	_, _ = fmt.Fprintln(r.errOut, err.Error())
}
