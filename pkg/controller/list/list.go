package list

import (
	"bufio"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/ghaup/pkg/controller/check"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// List outputs the action references of workflow files.
// A workflow file which can't be read is reported and skipped.
func (c *Controller) List(logE *logrus.Entry) error {
	workflowFilePaths, err := c.searchFiles()
	if err != nil {
		return fmt.Errorf("search workflow files: %w", err)
	}

	tmpl, err := c.parseTemplate()
	if err != nil {
		return err
	}

	for _, workflowFilePath := range workflowFilePaths {
		logE := logE.WithField("workflow_file", workflowFilePath)
		if err := c.listWorkflow(workflowFilePath, tmpl); err != nil {
			logerr.WithError(logE, err).Error("list actions in a workflow file")
		}
	}
	return nil
}

func (c *Controller) parseTemplate() (*template.Template, error) {
	if c.param.LineTemplate == "" {
		return nil, nil //nolint:nilnil
	}
	tmpl, err := template.New("line").Parse(c.param.LineTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse the line template: %w", err)
	}
	return tmpl, nil
}

func (c *Controller) searchFiles() ([]string, error) {
	if len(c.param.WorkflowFilePaths) != 0 {
		return c.param.WorkflowFilePaths, nil
	}
	if c.cfg != nil && len(c.cfg.Files) > 0 {
		return c.searchFilesByGlob()
	}
	files, err := check.DefaultWorkflowFiles(c.fs)
	if err != nil {
		return nil, fmt.Errorf("search the default workflow files: %w", err)
	}
	return files, nil
}

func (c *Controller) searchFilesByGlob() ([]string, error) {
	patterns := make([]string, 0, len(c.cfg.Files))
	for _, file := range c.cfg.Files {
		if file.Pattern == "" {
			continue
		}
		patterns = append(patterns, file.Pattern)
	}
	files, err := check.GlobFiles(c.fs, patterns)
	if err != nil {
		return nil, fmt.Errorf("search workflow files: %w", err)
	}
	return files, nil
}

func (c *Controller) listWorkflow(workflowFilePath string, tmpl *template.Template) error {
	lines, err := c.readWorkflow(workflowFilePath)
	if err != nil {
		return err
	}

	for i, line := range lines {
		action := check.ParseLine(line)
		if action == nil {
			continue
		}
		if !c.parseActionName(action) {
			continue
		}
		if c.excludeAction(action.Name) {
			continue
		}
		if c.excludeByIncludes(action.Name) {
			continue
		}
		if c.param.Owner != "" && action.RepoOwner != c.param.Owner {
			continue
		}

		info := &ActionInfo{
			ActionName: action.Name,
			RepoOwner:  action.RepoOwner,
			RepoName:   action.RepoName,
			Version:    action.Version,
			FilePath:   workflowFilePath,
			FileName:   filepath.Base(workflowFilePath),
			LineNumber: i + 1,
		}
		if err := c.output(info, tmpl); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) output(info *ActionInfo, tmpl *template.Template) error {
	if tmpl != nil {
		if err := tmpl.Execute(c.stdout, info); err != nil {
			return fmt.Errorf("execute the line template: %w", err)
		}
		fmt.Fprintln(c.stdout)
		return nil
	}
	// Default CSV format: <FilePath>,<LineNumber>,<ActionName>,<Version>
	fmt.Fprintf(c.stdout, "%s,%d,%s,%s\n", info.FilePath, info.LineNumber, info.ActionName, info.Version)
	return nil
}

func (c *Controller) readWorkflow(workflowFilePath string) ([]string, error) {
	f, err := c.fs.Open(workflowFilePath)
	if err != nil {
		return nil, fmt.Errorf("open a workflow file: %w", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan a workflow file: %w", err)
	}
	return lines, nil
}

func (c *Controller) parseActionName(action *check.Action) bool {
	a := strings.Split(action.Name, "/")
	if len(a) < 2 || a[0] == "" || a[1] == "" {
		return false
	}
	action.RepoOwner = a[0]
	action.RepoName = a[1]
	return true
}

func (c *Controller) excludeAction(actionName string) bool {
	for _, exclude := range c.param.Excludes {
		if exclude.MatchString(actionName) {
			return true
		}
	}
	return false
}

func (c *Controller) excludeByIncludes(actionName string) bool {
	if len(c.param.Includes) == 0 {
		return false
	}
	for _, include := range c.param.Includes {
		if include.MatchString(actionName) {
			return false
		}
	}
	return true
}
