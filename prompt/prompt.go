// Package prompt asks the user for the project name and whether to add Daisy UI.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

type (
	Answers struct {
		ProjectName string
		UseDaisyUI  bool
	}

	Collector interface {
		Collect(ctx context.Context) (Answers, error)
	}
)

const (
	nameQuestion    = "Enter your project name:"
	confirmQuestion = "Do you want to use Daisy UI?"

	forbiddenChars = `\/:*?"<>|`
)

var (
	ErrInvalidProjectName = errors.New("invalid project name")
	ErrAborted            = errors.New("aborted by user")
)

// ValidateProjectName accepts any name usable as a single directory name on common file systems.
// Surrounding whitespace is ignored; inner spaces are allowed.
// Non-nil returned error wraps [ErrInvalidProjectName].
func ValidateProjectName(name string) error {
	name = strings.TrimSpace(name)

	switch name {
	case "":
		return fmt.Errorf("%w: project name must not be empty", ErrInvalidProjectName)
	case ".", "..":
		return fmt.Errorf("%w: %q is not a directory name", ErrInvalidProjectName, name)
	}

	if strings.ContainsAny(name, forbiddenChars) {
		return fmt.Errorf(`%w: invalid characters in project name, please avoid \ / : * ? " < > |`, ErrInvalidProjectName)
	}

	if strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return fmt.Errorf("%w: project name must not contain control characters", ErrInvalidProjectName)
	}

	return nil
}

// parseConfirm maps an answer to a yes/no question. Empty input selects def.
func parseConfirm(input string, def bool) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return def, true
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}
