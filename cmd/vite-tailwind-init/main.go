package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"
	"github.com/mattn/go-isatty"

	"github.com/kxue43/vite-tailwind-init/config"
	"github.com/kxue43/vite-tailwind-init/prompt"
	"github.com/kxue43/vite-tailwind-init/registry"
	"github.com/kxue43/vite-tailwind-init/report"
	"github.com/kxue43/vite-tailwind-init/runner"
	"github.com/kxue43/vite-tailwind-init/scaffold"
	"github.com/kxue43/vite-tailwind-init/terminal"
	"github.com/kxue43/vite-tailwind-init/version"
)

type (
	CLI struct {
		in            io.Reader
		out           io.Writer
		errOut        io.Writer
		runner        runner.Runner
		baseDir       string
		Config        string           `name:"config" type:"existingfile" help:"TOML or YAML file overriding tool names and options."`
		Accessible    bool             `name:"accessible" help:"Ask the questions line by line instead of in the interactive form."`
		CheckVersions bool             `name:"check-versions" help:"Look up the latest release of every package before installing."`
		Debug         bool             `name:"debug" help:"Log every command and dump the resolved configuration."`
		Version       kong.VersionFlag `name:"version" help:"Show version information and quit."`
		tty           bool
	}
)

const logPrefix = "vite-tailwind-init: "

func (c *CLI) AfterApply() (err error) {
	c.baseDir, err = os.Getwd()

	return err
}

func (c *CLI) loadConfig() (cfg config.Config, err error) {
	cfg = config.Default()

	if c.Config != "" {
		if cfg, err = config.Load(c.Config); err != nil {
			return cfg, err
		}
	}

	if c.CheckVersions {
		cfg.CheckVersions = true
	}

	return cfg, nil
}

func (c *CLI) collector() prompt.Collector {
	if c.tty && !c.Accessible {
		return prompt.NewForm(c.in, c.out)
	}

	return prompt.NewLines(c.in, c.out)
}

// Run asks the questions, sets up the project and reports the outcome.
// Every failure is reported before it is returned.
func (c *CLI) Run(ctx context.Context) (err error) {
	logs := terminal.NewLog(c.errOut, logPrefix, c.Debug)
	defer func() { _ = logs.Flush() }()

	reporter := report.New(c.out, c.errOut, c.tty)

	cfg, err := c.loadConfig()
	if err != nil {
		reporter.Fail(err)

		return err
	}

	answers, err := c.collector().Collect(ctx)
	if err != nil {
		reporter.Fail(err)

		return err
	}

	if logs.Verbose() {
		spew.Fdump(logs.Writer(), cfg, answers)
	}

	pipeline := scaffold.NewPipeline(c.runner, scaffold.Tools{
		PackageManager: cfg.PackageManager,
		ExecRunner:     cfg.ExecRunner,
		ScaffoldTool:   cfg.ScaffoldTool,
		Template:       cfg.Template,
	}, reporter, logs)

	if cfg.CheckVersions {
		pipeline.WithVersionCheck(registry.NewClient(cfg.RegistryURL), cfg.Timeout())
	}

	reporter.Start("Initializing project...")

	if _, err = pipeline.Run(ctx, c.baseDir, answers); err != nil {
		reporter.Fail(err)

		return err
	}

	reporter.Succeed(answers.ProjectName, pipeline.DevCommand())

	return nil
}

func main() {
	exitCode := 0

	defer func() { os.Exit(exitCode) }()

	cli := CLI{
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
		runner: runner.Exec{},
		tty:    isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()),
	}

	kctx := kong.Parse(
		&cli,
		kong.Name("vite-tailwind-init"),
		kong.Description("Create a Vite React project with Tailwind CSS, and optionally Daisy UI, wired in."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version.FromBuildInfo()},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	kctx.BindTo(ctx, (*context.Context)(nil))

	if err := kctx.Run(); err != nil {
		exitCode = 1
	}
}
