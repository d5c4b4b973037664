// Package initcmd implements the 'ghaup init' command.
// It scaffolds a configuration file.
package initcmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const (
	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/suzuki-shunsuke/ghaup/refs/heads/main/json-schema/ghaup.json
# ghaup - https://github.com/suzuki-shunsuke/ghaup
# files:
#   - pattern: .github/workflows/*.yml
#   - pattern: .github/workflows/*.yaml

# strict: true

ignore_actions:
# - name: actions/checkout
#   name_format: fixed_string
# - name: actions/.*
#   name_format: regexp
#   ref: main
#   ref_format: fixed_string
`
	filePermission os.FileMode = 0o644
)

type Controller struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Controller {
	return &Controller{fs: fs}
}

// Init creates a configuration file with a commented out template.
// It does nothing if the file already exists.
func (c *Controller) Init(configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	return nil
}
