// Package check implements the core logic of ghaup.
// It searches workflow files, extracts action references, looks up the
// latest release of each referenced action through the GitHub API, and
// reports the references that are behind their latest release. The package
// never modifies workflow files.
package check

import (
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/ghaup/pkg/config"
)

type Controller struct {
	repositoriesService RepositoriesService
	fs                  afero.Fs
	cfgFinder           ConfigFinder
	cfgReader           ConfigReader
	cfg                 *config.Config
	param               *ParamCheck
	reporter            *Reporter
}

type ConfigFinder interface {
	Find(configFilePath string) (string, error)
}

type ConfigReader interface {
	Read(cfg *config.Config, configFilePath string) error
}

func New(repositoriesService RepositoriesService, fs afero.Fs, cfgFinder ConfigFinder, cfgReader ConfigReader, param *ParamCheck) *Controller {
	return &Controller{
		repositoriesService: repositoriesService,
		fs:                  fs,
		cfgFinder:           cfgFinder,
		cfgReader:           cfgReader,
		cfg:                 &config.Config{},
		param:               param,
		reporter:            NewReporter(param.Stdout),
	}
}
