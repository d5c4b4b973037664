package check

// Result describes one outdated action reference.
type Result struct {
	Action        *Action
	LatestVersion string
	Level         Level
}

// IsMajor reports whether the update crosses a major version boundary.
func (r *Result) IsMajor() bool {
	return r.Level == LevelMajor
}
