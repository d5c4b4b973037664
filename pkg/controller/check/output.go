package check

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

type resultDoc struct {
	Action  string `yaml:"action"`
	File    string `yaml:"file"`
	Line    int    `yaml:"line"`
	Current string `yaml:"current"`
	Latest  string `yaml:"latest"`
	Level   string `yaml:"level"`
}

type reportDoc struct {
	Outdated []*resultDoc `yaml:"outdated"`
}

func (c *Controller) outputYAML(results []*Result) error {
	doc := &reportDoc{
		Outdated: make([]*resultDoc, 0, len(results)),
	}
	for _, result := range results {
		doc.Outdated = append(doc.Outdated, &resultDoc{
			Action:  result.Action.Raw(),
			File:    result.Action.File,
			Line:    result.Action.Line,
			Current: result.Action.Version,
			Latest:  result.LatestVersion,
			Level:   string(result.Level),
		})
	}
	b, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal results as YAML: %w", err)
	}
	fmt.Fprint(c.param.Stdout, string(b))
	return nil
}
