package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

type (
	// Lines asks both questions one line at a time.
	// It works on pipes and is easier on screen readers than [Form].
	Lines struct {
		in  *bufio.Reader
		out io.Writer
	}
)

func NewLines(in io.Reader, out io.Writer) *Lines {
	return &Lines{in: bufio.NewReader(in), out: out}
}

// Non-nil returned error wraps [ErrAborted] when input ends before both answers are given.
func (l *Lines) Collect(ctx context.Context) (answers Answers, err error) {
	if answers.ProjectName, err = l.askName(ctx); err != nil {
		return Answers{}, err
	}

	if answers.UseDaisyUI, err = l.askConfirm(ctx); err != nil {
		return Answers{}, err
	}

	return answers, nil
}

func (l *Lines) askName(ctx context.Context) (string, error) {
	for {
		line, err := l.ask(ctx, nameQuestion+" ")
		if err != nil {
			return "", err
		}

		if err = ValidateProjectName(line); err != nil {
			if _, err = fmt.Fprintf(l.out, ">> %s\n", err); err != nil {
				return "", fmt.Errorf("failed to write to prompt output: %w", err)
			}

			continue
		}

		return strings.TrimSpace(line), nil
	}
}

func (l *Lines) askConfirm(ctx context.Context) (bool, error) {
	for {
		line, err := l.ask(ctx, confirmQuestion+" (y/N) ")
		if err != nil {
			return false, err
		}

		if v, ok := parseConfirm(line, false); ok {
			return v, nil
		}

		if _, err = io.WriteString(l.out, ">> Please answer y or n.\n"); err != nil {
			return false, fmt.Errorf("failed to write to prompt output: %w", err)
		}
	}
}

func (l *Lines) ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrAborted, err)
	}

	if _, err := io.WriteString(l.out, question); err != nil {
		return "", fmt.Errorf("failed to write to prompt output: %w", err)
	}

	line, err := l.in.ReadString('\n')
	if err == io.EOF && line != "" {
		return strings.TrimRight(line, "\r\n"), nil
	} else if err == io.EOF {
		return "", fmt.Errorf("%w: input closed", ErrAborted)
	} else if err != nil {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
