package cli

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/ghaup/pkg/config"
	"github.com/suzuki-shunsuke/ghaup/pkg/controller/list"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/log"
	"github.com/urfave/cli/v3"
)

type listFlags struct {
	owner        string
	lineTemplate string
	include      []string
	exclude      []string
	files        []string
}

func (r *Runner) newListCommand() *cli.Command {
	flags := &listFlags{}
	return &cli.Command{
		Name:  "list",
		Usage: "List action references without calling the GitHub API",
		Description: `List the action references of workflow files.

$ ghaup list

Output format (default CSV):
<FilePath>,<LineNumber>,<ActionName>,<Version>

Filter by owner:
$ ghaup list --owner actions

Custom output format using Go template:
$ ghaup list --line-template "{{.RepoOwner}}/{{.RepoName}}"

Available template fields:
  ActionName - Full action name (e.g., actions/checkout)
  RepoOwner  - Repository owner (e.g., actions)
  RepoName   - Repository name (e.g., checkout)
  Version    - Version/ref (e.g., v4 or commit SHA)
  FilePath   - Full file path
  FileName   - Base file name
  LineNumber - Line number in the file
`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "owner",
				Usage:       "Filter actions by owner",
				Destination: &flags.owner,
			},
			&cli.StringFlag{
				Name:        "line-template",
				Usage:       "Go text/template format for each line",
				Destination: &flags.lineTemplate,
			},
			&cli.StringSliceFlag{
				Name:        "include",
				Aliases:     []string{"i"},
				Usage:       "A regular expression to include actions",
				Destination: &flags.include,
			},
			&cli.StringSliceFlag{
				Name:        "exclude",
				Aliases:     []string{"e"},
				Usage:       "A regular expression to exclude actions",
				Destination: &flags.exclude,
			},
		},
		Arguments: []cli.Argument{
			&cli.StringArgs{
				Name:        "files",
				Max:         -1,
				Destination: &flags.files,
			},
		},
		Action: func(_ context.Context, _ *cli.Command) error {
			return r.list(flags)
		},
	}
}

func (r *Runner) list(flags *listFlags) error {
	if err := log.Set(r.logE, r.globalFlags.LogLevel, r.globalFlags.LogColor); err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	includes, err := compilePatterns(flags.include)
	if err != nil {
		return fmt.Errorf("compile include patterns: %w", err)
	}
	excludes, err := compilePatterns(flags.exclude)
	if err != nil {
		return fmt.Errorf("compile exclude patterns: %w", err)
	}
	fs := afero.NewOsFs()
	cfgPath, cfg, err := readConfig(fs, r.globalFlags.Config)
	if err != nil {
		return err
	}
	ctrl := list.New(cfg, &list.Param{
		WorkflowFilePaths: flags.files,
		ConfigFilePath:    cfgPath,
		Owner:             flags.owner,
		LineTemplate:      flags.lineTemplate,
		Includes:          includes,
		Excludes:          excludes,
	}, fs, os.Stdout)
	return ctrl.List(r.logE) //nolint:wrapcheck
}

func readConfig(fs afero.Fs, configFilePath string) (string, *config.Config, error) {
	cfgFinder := config.NewFinder(fs)
	cfgReader := config.NewReader(fs)
	cfgPath, err := cfgFinder.Find(configFilePath)
	if err != nil {
		return "", nil, fmt.Errorf("find a configuration file: %w", err)
	}
	cfg := &config.Config{}
	if err := cfgReader.Read(cfg, cfgPath); err != nil {
		return "", nil, fmt.Errorf("read a configuration file: %w", err)
	}
	return cfgPath, cfg, nil
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	result := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile a regular expression %q: %w", pattern, err)
		}
		result = append(result, re)
	}
	return result, nil
}
