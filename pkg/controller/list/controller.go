// Package list implements the 'ghaup list' command.
// It lists the action references of workflow files without calling the
// GitHub API, with optional filtering and custom output formatting.
package list

import (
	"io"
	"regexp"

	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/ghaup/pkg/config"
)

type Controller struct {
	cfg    *config.Config
	param  *Param
	fs     afero.Fs
	stdout io.Writer
}

type Param struct {
	WorkflowFilePaths []string
	ConfigFilePath    string
	Owner             string
	LineTemplate      string
	Includes          []*regexp.Regexp
	Excludes          []*regexp.Regexp
}

func New(cfg *config.Config, param *Param, fs afero.Fs, stdout io.Writer) *Controller {
	return &Controller{
		cfg:    cfg,
		param:  param,
		fs:     fs,
		stdout: stdout,
	}
}
