package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/ghaup/pkg/config"
	"github.com/suzuki-shunsuke/ghaup/pkg/controller/check"
	"github.com/suzuki-shunsuke/ghaup/pkg/github"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/log"
	"github.com/urfave/cli/v3"
)

type checkFlags struct {
	major       bool
	format      string
	concurrency int
	files       []string
}

func (r *Runner) newCommand() *cli.Command {
	flags := &checkFlags{}
	return &cli.Command{
		Name:    "ghaup",
		Usage:   "Check whether GitHub Actions are up to date. https://github.com/suzuki-shunsuke/ghaup",
		Version: r.ldFlags.Version + " (" + r.ldFlags.Commit + ")",
		Description: `If no argument is passed, ghaup searches workflow files from .github/workflows and .gitlab/workflows.

$ ghaup

You can also pass workflow file paths as arguments.

e.g.

$ ghaup .github/workflows/test.yaml

Report only major updates:

$ ghaup -m
`,
		Flags: append(r.globalFlags.Flags(),
			&cli.BoolFlag{
				Name:        "major",
				Aliases:     []string{"m", "M"},
				Usage:       "Report only major updates",
				Destination: &flags.major,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output format (yaml|sarif)",
				Sources:     cli.EnvVars("GHAUP_FORMAT"),
				Destination: &flags.format,
			},
			&cli.IntFlag{
				Name:        "concurrency",
				Usage:       "The maximum number of concurrent API requests",
				Value:       5,
				Sources:     cli.EnvVars("GHAUP_CONCURRENCY"),
				Destination: &flags.concurrency,
			},
		),
		EnableShellCompletion: true,
		Arguments: []cli.Argument{
			&cli.StringArgs{
				Name:        "files",
				Max:         -1,
				Destination: &flags.files,
			},
		},
		Action: func(ctx context.Context, _ *cli.Command) error {
			return r.check(ctx, flags)
		},
		Commands: []*cli.Command{
			r.newInitCommand(),
			r.newListCommand(),
			r.newVersionCommand(),
		},
	}
}

func (r *Runner) check(ctx context.Context, flags *checkFlags) error {
	if err := log.Set(r.logE, r.globalFlags.LogLevel, r.globalFlags.LogColor); err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	fs := afero.NewOsFs()
	gh := github.New(r.ldFlags.Version)
	ctrl := check.New(gh.Repositories, fs, config.NewFinder(fs), config.NewReader(fs), &check.ParamCheck{
		WorkflowFilePaths: flags.files,
		ConfigFilePath:    r.globalFlags.Config,
		Version:           r.ldFlags.Version,
		Format:            flags.format,
		MajorOnly:         flags.major,
		Concurrency:       flags.concurrency,
		Stdout:            os.Stdout,
	})
	return ctrl.Check(ctx, r.logE) //nolint:wrapcheck
}
