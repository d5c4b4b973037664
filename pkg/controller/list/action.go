package list

// ActionInfo is the datum passed to the line template for each action
// reference.
type ActionInfo struct {
	ActionName string // full action name (owner/repo or owner/repo/path)
	RepoOwner  string
	RepoName   string
	Version    string
	FilePath   string
	FileName   string
	LineNumber int
}
