package cli

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/ghaup/pkg/cli/flag"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/urfave"
)

type Runner struct {
	logE        *logrus.Entry
	ldFlags     *urfave.LDFlags
	globalFlags *flag.GlobalFlags
}

// Run runs the command line interface.
func Run(ctx context.Context, logE *logrus.Entry, ldFlags *urfave.LDFlags, args ...string) error {
	r := &Runner{
		logE:        logE,
		ldFlags:     ldFlags,
		globalFlags: &flag.GlobalFlags{},
	}
	return r.Run(ctx, args...)
}

func (r *Runner) Run(ctx context.Context, args ...string) error {
	return r.newCommand().Run(ctx, normalizeArgs(args)) //nolint:wrapcheck
}

// normalizeArgs rewrites -H to --help because the help flag only has the
// short alias -h. Arguments after -- are kept as is.
func normalizeArgs(args []string) []string {
	arr := make([]string, len(args))
	for i, arg := range args {
		if arg == "--" {
			copy(arr[i:], args[i:])
			break
		}
		if arg == "-H" {
			arr[i] = "--help"
			continue
		}
		arr[i] = arg
	}
	return arr
}
