package check

import (
	"fmt"
	"regexp"
	"strings"
)

// usesPattern matches `uses:` entries line by line regardless of the
// surrounding YAML structure, so references in commented out steps are
// extracted too.
var usesPattern = regexp.MustCompile(`^\s*(?:#\s*)?(?:- )?['"]?uses['"]? *: +['"]?([^\s'"@]+)@([^\s'"]+)`)

// Action is one action reference found in a workflow file.
type Action struct {
	Name      string
	Version   string
	RepoOwner string
	RepoName  string
	File      string
	Line      int
}

// Raw returns the reference as it appears in the workflow file.
func (a *Action) Raw() string {
	return a.Name + "@" + a.Version
}

// ParseLine extracts an action reference from a workflow file line.
// It returns nil if the line doesn't reference an action.
func ParseLine(line string) *Action {
	matches := usesPattern.FindStringSubmatch(line)
	if matches == nil {
		return nil
	}
	return &Action{
		Name:    matches[1], // e.g. actions/checkout, actions/aws/ec2
		Version: matches[2], // e.g. v4, v4.1.0, main, commit hash
	}
}

// parseAction returns true if the action is a check target.
// Local actions and Docker actions have no repository to look up, so they
// aren't targets.
func (c *Controller) parseAction(action *Action) bool {
	if strings.HasPrefix(action.Name, ".") || strings.HasPrefix(action.Name, "docker://") {
		return false
	}
	a := strings.Split(action.Name, "/")
	if len(a) < 2 {
		return false
	}
	if a[0] == "" || a[1] == "" {
		return false
	}
	if c.cfg != nil && c.cfg.Strict && len(a) != 2 {
		return false
	}
	action.RepoOwner = a[0]
	action.RepoName = a[1]
	return true
}

func (c *Controller) ignoreAction(action *Action) (bool, error) {
	if c.cfg == nil {
		return false, nil
	}
	for _, ia := range c.cfg.IgnoreActions {
		f, err := ia.Match(action.Name, action.Version)
		if err != nil {
			return false, fmt.Errorf("match an ignored action: %w", err)
		}
		if f {
			return true, nil
		}
	}
	return false, nil
}
