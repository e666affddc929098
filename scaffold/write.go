package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type (
	WriteHook func(io.Writer) error
)

func FromString(contents string) WriteHook {
	return func(fd io.Writer) error {
		_, err := io.WriteString(fd, contents)

		return err
	}
}

// WriteToFile truncates or creates dir/name and lets hook fill it.
// Non-nil returned error wraps [ErrFilesystem].
func WriteToFile(dir, name string, hook WriteHook) (err error) {
	fd, err := os.Create(filepath.Clean(filepath.Join(dir, name)))
	if err != nil {
		return fmt.Errorf("%w: failed to create %q file: %w", ErrFilesystem, name, err)
	}

	defer func() {
		if err1 := fd.Close(); err1 != nil && err == nil {
			err = fmt.Errorf("%w: failed to close %q after writing: %w", ErrFilesystem, name, err1)
		}
	}()

	if err = hook(fd); err != nil {
		return fmt.Errorf("%w: failed to write to %q: %w", ErrFilesystem, name, err)
	}

	return nil
}
