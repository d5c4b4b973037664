package check

import (
	"fmt"

	"github.com/suzuki-shunsuke/ghaup/pkg/sarif"
)

const ruleOutdatedAction = "outdated-action"

func (c *Controller) outputSARIF(results []*Result) error {
	sarifLog := sarif.New("ghaup", "https://github.com/suzuki-shunsuke/ghaup", c.param.Version, sarif.Rule{
		ID: ruleOutdatedAction,
		ShortDescription: sarif.Message{
			Text: "GitHub Action is behind its latest release",
		},
	})
	for _, result := range results {
		level := "warning"
		if result.IsMajor() {
			level = "error"
		}
		message := fmt.Sprintf("%s is outdated: %s -> %s (%s)", result.Action.Raw(), result.Action.Version, result.LatestVersion, result.Level)
		sarifLog.AddResult(sarif.NewResult(ruleOutdatedAction, level, message, result.Action.File, result.Action.Line))
	}
	if err := sarifLog.Encode(c.param.Stdout); err != nil {
		return fmt.Errorf("output results as SARIF: %w", err)
	}
	return nil
}
