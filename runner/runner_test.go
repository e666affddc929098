package runner

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("relies on a POSIX shell")
	}
}

func TestExecRun(t *testing.T) {
	skipOnWindows(t)

	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		err := Exec{}.Run(ctx, t.TempDir(), "sh", "-c", "echo hello")
		require.NoError(t, err, "a command that exits zero should not fail")
	})

	t.Run("Runs in the given directory", func(t *testing.T) {
		dir := t.TempDir()

		require.NoError(t, os.WriteFile(filepath.Join(dir, "marker"), nil, 0600))

		err := Exec{}.Run(ctx, dir, "sh", "-c", "test -f marker")
		require.NoError(t, err, "the command should run inside the given directory")
	})

	t.Run("Non-zero exit captures stderr", func(t *testing.T) {
		err := Exec{}.Run(ctx, t.TempDir(), "sh", "-c", "echo boom >&2; exit 3")
		require.Error(t, err)

		var rErr *Error
		require.True(t, errors.As(err, &rErr), "returned error should be a *runner.Error")

		assert.Equal(t, "boom", rErr.Stderr)
		assert.Equal(t, "sh", rErr.Name)

		var exitErr *exec.ExitError
		require.True(t, errors.As(err, &exitErr), "the exit error should be reachable through Unwrap")
		assert.Equal(t, 3, exitErr.ExitCode())

		assert.Contains(t, err.Error(), "exit code 3")
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("Missing executable", func(t *testing.T) {
		err := Exec{}.Run(ctx, t.TempDir(), "nonexistent-binary-xyz-123")
		require.Error(t, err)

		var rErr *Error
		require.True(t, errors.As(err, &rErr))

		assert.True(t, errors.Is(err, exec.ErrNotFound), "launch failures should wrap exec.ErrNotFound")
	})

	t.Run("Cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		err := Exec{}.Run(cctx, t.TempDir(), "sh", "-c", "sleep 5")
		require.Error(t, err)

		assert.True(t, errors.Is(err, context.Canceled), "cancellation should be visible to callers")
	})
}

func TestErrorCommandLine(t *testing.T) {
	e := &Error{Name: "npm", Args: []string{"install", "-D", "tailwindcss"}}

	assert.Equal(t, "npm install -D tailwindcss", e.CommandLine())
}

func TestTrimStderr(t *testing.T) {
	long := strings.Repeat("x", maxStderr+100)

	assert.Len(t, trimStderr([]byte(long)), maxStderr)
	assert.Equal(t, "oops", trimStderr([]byte("\n  oops \n")))
}

func TestLookPath(t *testing.T) {
	skipOnWindows(t)

	_, err := Exec{}.LookPath("sh")
	require.NoError(t, err, "sh should be resolvable on PATH")

	_, err = Exec{}.LookPath("nonexistent-binary-xyz-123")
	require.Error(t, err)
}
