package cli

import (
	"context"

	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/ghaup/pkg/controller/initcmd"
	"github.com/urfave/cli/v3"
)

func (r *Runner) newInitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create .ghaup.yaml if it doesn't exist",
		Description: `Create .ghaup.yaml if it doesn't exist

$ ghaup init

You can also pass a configuration file path.

e.g.

$ ghaup init .github/ghaup.yaml
`,
		Action: r.initAction,
	}
}

func (r *Runner) initAction(_ context.Context, c *cli.Command) error {
	ctrl := initcmd.New(afero.NewOsFs())
	configFilePath := c.Args().First()
	if configFilePath == "" {
		configFilePath = r.globalFlags.Config
	}
	if configFilePath == "" {
		configFilePath = ".ghaup.yaml"
	}
	return ctrl.Init(configFilePath) //nolint:wrapcheck
}
