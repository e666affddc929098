// Package scaffold creates a Vite React project and wires Tailwind CSS, and optionally Daisy UI, into it.
//
// Project generation and dependency installation are delegated to the package manager.
// The package itself only runs those commands in order and overwrites a few generated files.
// The first failure aborts the run and whatever was already created stays on disk.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kxue43/vite-tailwind-init/prompt"
	"github.com/kxue43/vite-tailwind-init/runner"
)

type (
	Tools struct {
		PackageManager string
		ExecRunner     string
		ScaffoldTool   string
		Template       string
	}

	Progress interface {
		Step(title string)
		Warn(msg string)
	}

	Logger interface {
		Printf(string, ...any)
		Debugf(string, ...any)
	}

	Pipeline struct {
		runner   runner.Runner
		progress Progress
		logger   Logger
		versions *versionCheck
		tools    Tools
	}
)

var (
	ErrSubprocess = errors.New("subprocess failure")
	ErrFilesystem = errors.New("filesystem failure")

	buildDeps  = []string{"tailwindcss", "postcss", "autoprefixer"}
	daisyUIDep = "daisyui"
)

func NewPipeline(r runner.Runner, tools Tools, progress Progress, logger Logger) *Pipeline {
	return &Pipeline{runner: r, tools: tools, progress: progress, logger: logger}
}

// DevCommand is the command that starts the development server from inside the project directory.
func (p *Pipeline) DevCommand() string {
	return p.tools.PackageManager + " run dev"
}

// Run creates the project in baseDir/answers.ProjectName and returns that directory.
// Non-nil returned error wraps [ErrSubprocess] or [ErrFilesystem].
func (p *Pipeline) Run(ctx context.Context, baseDir string, answers prompt.Answers) (projectDir string, err error) {
	projectDir = filepath.Join(baseDir, answers.ProjectName)

	p.logger.Debugf("project directory: %s", projectDir)

	if err = p.CheckTools(); err != nil {
		return projectDir, err
	}

	if err = ensureAbsent(projectDir); err != nil {
		return projectDir, err
	}

	if p.versions != nil {
		p.progress.Step("Checking the latest package versions...")
		p.versions.run(ctx, p.progress, p.logger, answers.UseDaisyUI)
	}

	if err = p.Scaffold(ctx, baseDir, answers.ProjectName); err != nil {
		return projectDir, err
	}

	if err = p.InstallDependencies(ctx, projectDir, answers.UseDaisyUI); err != nil {
		return projectDir, err
	}

	if err = p.InitConfig(ctx, projectDir, answers.UseDaisyUI); err != nil {
		return projectDir, err
	}

	if err = p.WriteSources(projectDir, answers.ProjectName, answers.UseDaisyUI); err != nil {
		return projectDir, err
	}

	return projectDir, nil
}

// Non-nil returned error wraps [ErrSubprocess].
func (p *Pipeline) CheckTools() error {
	var errs []error

	for _, name := range []string{p.tools.PackageManager, p.tools.ExecRunner} {
		path, err := p.runner.LookPath(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %q was not found on PATH: %w", ErrSubprocess, name, err))

			continue
		}

		p.logger.Debugf("using %s", path)
	}

	return errors.Join(errs...)
}

func ensureAbsent(dir string) error {
	_, err := os.Stat(dir)
	if err == nil {
		return fmt.Errorf("%w: %q already exists", ErrFilesystem, dir)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: failed to check %q: %w", ErrFilesystem, dir, err)
	}

	return nil
}

func (p *Pipeline) run(ctx context.Context, dir, name string, args ...string) error {
	p.logger.Debugf("running %q in %s", strings.Join(append([]string{name}, args...), " "), dir)

	if err := p.runner.Run(ctx, dir, name, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrSubprocess, err)
	}

	return nil
}

// Scaffold generates the base project with the scaffold tool's React template.
// Non-nil returned error wraps [ErrSubprocess].
func (p *Pipeline) Scaffold(ctx context.Context, baseDir, projectName string) error {
	p.progress.Step("Creating Vite React project...")

	return p.run(ctx, baseDir, p.tools.PackageManager,
		"create", p.tools.ScaffoldTool+"@latest", projectName, "--", "--template", p.tools.Template)
}

// InstallDependencies adds Tailwind CSS and its PostCSS plugins as dev dependencies, and Daisy UI when asked for.
// A failure on the second install leaves the first one in place.
// Non-nil returned error wraps [ErrSubprocess].
func (p *Pipeline) InstallDependencies(ctx context.Context, projectDir string, useDaisyUI bool) error {
	p.progress.Step("Installing Tailwind CSS, PostCSS and Autoprefixer...")

	args := append([]string{"install", "-D"}, buildDeps...)

	if err := p.run(ctx, projectDir, p.tools.PackageManager, args...); err != nil {
		return err
	}

	if !useDaisyUI {
		return nil
	}

	p.progress.Step("Installing Daisy UI...")

	return p.run(ctx, projectDir, p.tools.PackageManager, "install", daisyUIDep+"@latest")
}

// InitConfig lets Tailwind generate its config files, then replaces tailwind.config.js entirely.
// Non-nil returned error wraps [ErrSubprocess] or [ErrFilesystem].
func (p *Pipeline) InitConfig(ctx context.Context, projectDir string, useDaisyUI bool) error {
	p.progress.Step("Initializing Tailwind CSS...")

	if err := p.run(ctx, projectDir, p.tools.ExecRunner, "tailwindcss", "init", "-p"); err != nil {
		return err
	}

	contents, err := RenderTailwindConfig(useDaisyUI)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFilesystem, err)
	}

	return WriteToFile(projectDir, tailwindConfigFile, FromString(contents))
}

// WriteSources replaces src/index.css and src/App.jsx.
// Non-nil returned error wraps [ErrFilesystem].
func (p *Pipeline) WriteSources(projectDir, projectName string, useDaisyUI bool) error {
	p.progress.Step("Writing source files...")

	if err := WriteToFile(projectDir, indexCSSFile, FromString(RenderIndexCSS())); err != nil {
		return err
	}

	contents, err := RenderApp(useDaisyUI, projectName)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFilesystem, err)
	}

	return WriteToFile(projectDir, appFile, FromString(contents))
}
