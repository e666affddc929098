package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kxue43/vite-tailwind-init/config"
	"github.com/kxue43/vite-tailwind-init/prompt"
	"github.com/kxue43/vite-tailwind-init/runner"
	"github.com/kxue43/vite-tailwind-init/scaffold"
)

type (
	stubRunner struct {
		failCreate bool
		lines      []string
	}
)

func (r *stubRunner) LookPath(name string) (string, error) {
	return name, nil
}

func (r *stubRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	r.lines = append(r.lines, strings.Join(append([]string{name}, args...), " "))

	if len(args) > 2 && args[0] == "create" {
		if r.failCreate {
			return &runner.Error{Name: name, Args: args, Dir: dir, Err: errors.New("exit status 1"), Stderr: "create-vite exploded"}
		}

		return os.MkdirAll(filepath.Join(dir, args[2], "src"), 0750)
	}

	return nil
}

func newTestCLI(t *testing.T, input string, r runner.Runner) (*CLI, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, errOut bytes.Buffer

	return &CLI{
		in:      strings.NewReader(input),
		out:     &out,
		errOut:  &errOut,
		runner:  r,
		baseDir: t.TempDir(),
	}, &out, &errOut
}

func TestCLIRun(t *testing.T) {
	ctx := context.Background()

	t.Run("Happy path, flag off", func(t *testing.T) {
		r := &stubRunner{}
		cli, out, _ := newTestCLI(t, "demo\n\n", r)

		err := cli.Run(ctx)
		require.NoError(t, err)

		assert.Equal(t, []string{
			"npm create vite@latest demo -- --template react",
			"npm install -D tailwindcss postcss autoprefixer",
			"npx tailwindcss init -p",
		}, r.lines)

		assert.Contains(t, out.String(), "Project initialized successfully!")
		assert.Contains(t, out.String(), "cd demo")
		assert.Contains(t, out.String(), "npm run dev")

		app, err := os.ReadFile(filepath.Join(cli.baseDir, "demo", "src", "App.jsx"))
		require.NoError(t, err)
		assert.Contains(t, string(app), "Tailwind CSS Styles - Project demo")
	})

	t.Run("Happy path, flag on", func(t *testing.T) {
		r := &stubRunner{}
		cli, _, _ := newTestCLI(t, "demo2\ny\n", r)

		require.NoError(t, cli.Run(ctx))

		assert.Equal(t, "npm install daisyui@latest", r.lines[2])

		conf, err := os.ReadFile(filepath.Join(cli.baseDir, "demo2", "tailwind.config.js"))
		require.NoError(t, err)
		assert.Contains(t, string(conf), `[require("daisyui")]`)
	})

	t.Run("Scaffold failure", func(t *testing.T) {
		r := &stubRunner{failCreate: true}
		cli, out, errOut := newTestCLI(t, "demo\nn\n", r)

		err := cli.Run(ctx)
		require.Error(t, err)

		assert.True(t, errors.Is(err, scaffold.ErrSubprocess))
		assert.Len(t, r.lines, 1, "nothing should run after the scaffold step fails")
		assert.Contains(t, out.String(), "Error initializing project:")
		assert.Contains(t, errOut.String(), "create-vite exploded")
		assert.NotContains(t, out.String(), "cd demo")
	})

	t.Run("Invalid name is asked again", func(t *testing.T) {
		r := &stubRunner{}
		cli, out, _ := newTestCLI(t, "a/b\ngood\nn\n", r)

		require.NoError(t, cli.Run(ctx))

		assert.Equal(t, "npm create vite@latest good -- --template react", r.lines[0])
		assert.Contains(t, out.String(), "please avoid")
	})

	t.Run("Input closed", func(t *testing.T) {
		r := &stubRunner{}
		cli, _, errOut := newTestCLI(t, "", r)

		err := cli.Run(ctx)
		require.Error(t, err)

		assert.True(t, errors.Is(err, prompt.ErrAborted))
		assert.Empty(t, r.lines)
		assert.Contains(t, errOut.String(), "aborted")
	})

	t.Run("Config file and debug logging", func(t *testing.T) {
		r := &stubRunner{}
		cli, _, errOut := newTestCLI(t, "demo\nn\n", r)

		path := filepath.Join(t.TempDir(), "init.toml")
		require.NoError(t, os.WriteFile(path, []byte(`package_manager = "pnpm-compatible-npm"`), 0600))

		cli.Config = path
		cli.Debug = true

		require.NoError(t, cli.Run(ctx))

		assert.True(t, strings.HasPrefix(r.lines[0], "pnpm-compatible-npm create"))
		assert.Contains(t, errOut.String(), logPrefix+"running")
		assert.Contains(t, errOut.String(), "ProjectName", "debug mode should dump the answers")
	})

	t.Run("Broken config file", func(t *testing.T) {
		r := &stubRunner{}
		cli, _, _ := newTestCLI(t, "demo\nn\n", r)

		path := filepath.Join(t.TempDir(), "init.yaml")
		require.NoError(t, os.WriteFile(path, []byte("timeout_seconds: -1\n"), 0600))

		cli.Config = path

		err := cli.Run(ctx)
		require.Error(t, err)

		assert.True(t, errors.Is(err, config.ErrInvalidConfig))
		assert.Empty(t, r.lines)
	})
}
