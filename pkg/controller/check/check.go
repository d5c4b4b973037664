package check

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/ghaup/pkg/config"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

type ParamCheck struct {
	WorkflowFilePaths []string
	ConfigFilePath    string
	Version           string
	Format            string
	MajorOnly         bool
	Concurrency       int
	Stdout            io.Writer
}

const (
	FormatYAML  = "yaml"
	FormatSARIF = "sarif"
)

// ErrActionsOutdated is returned when at least one action reference is
// reported as outdated. The caller uses it to exit with a non zero code
// without logging a stack of wrapped errors.
var ErrActionsOutdated = errors.New("actions are outdated")

var errUnsupportedFormat = errors.New("format must be either yaml or sarif")

// Check searches workflow files, extracts action references, and reports
// the references whose latest release differs from the pinned version.
func (c *Controller) Check(ctx context.Context, logE *logrus.Entry) error {
	if err := c.validateParam(); err != nil {
		return err
	}
	if err := c.readConfig(); err != nil {
		return err
	}
	workflowFilePaths, err := c.searchFiles()
	if err != nil {
		return fmt.Errorf("search workflow files: %w", err)
	}
	if len(workflowFilePaths) == 0 {
		return c.finish(nil, c.reporter.NoFiles)
	}
	if c.human() {
		c.reporter.FileCount(len(workflowFilePaths))
	}
	actions := c.collectActions(logE, workflowFilePaths)
	if len(actions) == 0 {
		return c.finish(nil, c.reporter.NoActions)
	}
	if c.human() {
		c.reporter.ActionCount(len(actions))
	}
	results := c.checkActions(ctx, logE, actions)
	return c.finish(results, c.reporter.UpToDate)
}

func (c *Controller) validateParam() error {
	switch c.param.Format {
	case "", FormatYAML, FormatSARIF:
		return nil
	default:
		return logerr.WithFields(errUnsupportedFormat, logrus.Fields{
			"format": c.param.Format,
		})
	}
}

func (c *Controller) human() bool {
	return c.param.Format == ""
}

func (c *Controller) readConfig() error {
	p, err := c.cfgFinder.Find(c.param.ConfigFilePath)
	if err != nil {
		return fmt.Errorf("find a configuration file: %w", err)
	}
	c.param.ConfigFilePath = p
	cfg := &config.Config{}
	if err := c.cfgReader.Read(cfg, p); err != nil {
		return fmt.Errorf("read a configuration file: %w", err)
	}
	c.cfg = cfg
	return nil
}

// collectActions gathers the action references of all workflow files.
// References are deduplicated by the raw `name@version` pair, so the same
// action pinned to different versions is checked once per version. A file
// which can't be read is reported and skipped.
func (c *Controller) collectActions(logE *logrus.Entry, workflowFilePaths []string) []*Action {
	known := map[string]struct{}{}
	actions := []*Action{}
	for _, workflowFilePath := range workflowFilePaths {
		logE := logE.WithField("workflow_file", workflowFilePath)
		arr, err := c.parseWorkflow(logE, workflowFilePath)
		if err != nil {
			logerr.WithError(logE, err).Error("read a workflow file")
			continue
		}
		for _, action := range arr {
			if _, ok := known[action.Raw()]; ok {
				continue
			}
			known[action.Raw()] = struct{}{}
			actions = append(actions, action)
		}
	}
	return actions
}

func (c *Controller) parseWorkflow(logE *logrus.Entry, workflowFilePath string) ([]*Action, error) {
	lines, err := c.readWorkflow(workflowFilePath)
	if err != nil {
		return nil, err
	}
	actions := []*Action{}
	for i, line := range lines {
		action := ParseLine(line)
		if action == nil {
			continue
		}
		if !c.parseAction(action) {
			continue
		}
		ignored, err := c.ignoreAction(action)
		if err != nil {
			logerr.WithError(logE, err).WithField("action", action.Name).Error("match ignored actions")
			continue
		}
		if ignored {
			logE.WithField("action", action.Name).Debug("ignore the action")
			continue
		}
		action.File = workflowFilePath
		action.Line = i + 1
		actions = append(actions, action)
	}
	return actions, nil
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

// finish renders results in the selected format and decides the outcome.
// emptyMessage is printed in the default format when there is nothing to
// report.
func (c *Controller) finish(results []*Result, emptyMessage func()) error {
	switch c.param.Format {
	case FormatYAML:
		if err := c.outputYAML(results); err != nil {
			return err
		}
	case FormatSARIF:
		if err := c.outputSARIF(results); err != nil {
			return err
		}
	default:
		if len(results) == 0 {
			emptyMessage()
		}
		for _, result := range results {
			c.reporter.Result(result)
		}
	}
	if len(results) == 0 {
		return nil
	}
	return ErrActionsOutdated
}
