package check

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// Workflow files are searched as direct children of the conventional
// workflow directories. A missing directory simply yields no matches.
var defaultPatterns = []string{
	".github/workflows/*.yml",
	".github/workflows/*.yaml",
	".gitlab/workflows/*.yml",
	".gitlab/workflows/*.yaml",
}

// DefaultWorkflowFiles returns the workflow files in the conventional
// workflow directories.
func DefaultWorkflowFiles(fs afero.Fs) ([]string, error) {
	return GlobFiles(fs, defaultPatterns)
}

// searchFiles decides which workflow files are checked.
// Positional arguments win over the configuration file, which wins over the
// default search.
func (c *Controller) searchFiles() ([]string, error) {
	if len(c.param.WorkflowFilePaths) != 0 {
		return c.param.WorkflowFilePaths, nil
	}
	patterns := defaultPatterns
	if c.cfg != nil && len(c.cfg.Files) > 0 {
		patterns = make([]string, 0, len(c.cfg.Files))
		for _, file := range c.cfg.Files {
			if file.Pattern == "" {
				continue
			}
			patterns = append(patterns, file.Pattern)
		}
	}
	return GlobFiles(c.fs, patterns)
}

// GlobFiles returns the regular files matching the glob patterns.
func GlobFiles(fs afero.Fs, patterns []string) ([]string, error) {
	files := []string{}
	for _, pattern := range patterns {
		matches, err := afero.Glob(fs, pattern)
		if err != nil {
			return nil, fmt.Errorf("search files using a glob pattern: %w", logerr.WithFields(err, logrus.Fields{
				"pattern": pattern,
			}))
		}
		for _, match := range matches {
			f, err := fs.Stat(match)
			if err != nil || !f.Mode().IsRegular() {
				continue
			}
			files = append(files, match)
		}
	}
	return files, nil
}
