// Package runner invokes external programs such as npm and npx.
// Every invocation names its working directory explicitly; the process's own working directory is never changed.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

type (
	Runner interface {
		Run(ctx context.Context, dir, name string, args ...string) error
		LookPath(name string) (string, error)
	}

	// Error reports a command that could not be started or exited non-zero.
	Error struct {
		Err    error
		Name   string
		Dir    string
		Stderr string
		Args   []string
	}

	Exec struct{}
)

// stderr beyond this many bytes is dropped from the tail of the message.
const maxStderr = 4096

func (e *Error) CommandLine() string {
	return strings.Join(append([]string{e.Name}, e.Args...), " ")
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("command %q failed", e.CommandLine()))

	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		b.WriteString(fmt.Sprintf(" with exit code %d", exitErr.ExitCode()))
	} else if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	if e.Stderr != "" {
		b.WriteString("\n")
		b.WriteString(e.Stderr)
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (Exec) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run blocks until the command exits. Stdout is discarded and stderr is captured for the returned error.
// Non-nil returned error is of type [*Error].
func (Exec) Run(ctx context.Context, dir, name string, args ...string) error {
	var stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("%w: %w", ctxErr, err)
		}

		return &Error{
			Err:    err,
			Name:   name,
			Args:   args,
			Dir:    dir,
			Stderr: trimStderr(stderr.Bytes()),
		}
	}

	return nil
}

func trimStderr(raw []byte) string {
	raw = bytes.TrimSpace(raw)

	if len(raw) > maxStderr {
		raw = raw[:maxStderr]
	}

	return string(raw)
}
