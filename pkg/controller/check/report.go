package check

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

const (
	labelUpdate = "UPDATE"
	labelMajor  = "MAJOR"
)

type colorFunc func(a ...interface{}) string

// Reporter writes the human readable output.
type Reporter struct {
	stdout io.Writer
	green  colorFunc
	yellow colorFunc
	red    colorFunc
}

func NewReporter(stdout io.Writer) *Reporter {
	return &Reporter{
		stdout: stdout,
		green:  color.New(color.FgGreen).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
		red:    color.New(color.FgRed).SprintFunc(),
	}
}

func (r *Reporter) FileCount(n int) {
	fmt.Fprintf(r.stdout, "Found %d workflow files\n", n)
}

func (r *Reporter) ActionCount(n int) {
	fmt.Fprintf(r.stdout, "Found %d action references\n", n)
}

func (r *Reporter) NoFiles() {
	fmt.Fprintln(r.stdout, "No workflow files found")
}

func (r *Reporter) NoActions() {
	fmt.Fprintln(r.stdout, "No action references found")
}

func (r *Reporter) UpToDate() {
	fmt.Fprintln(r.stdout, r.green("All actions are up to date"))
}

// Result prints one outdated reference:
//
//	MAJOR actions/checkout@v2
//	.github/workflows/test.yml:10
//	v2 -> v4
func (r *Reporter) Result(result *Result) {
	label := r.yellow(labelUpdate)
	if result.IsMajor() {
		label = r.red(labelMajor)
	}
	fmt.Fprintf(r.stdout, "%s %s\n%s:%d\n%s -> %s\n", label, result.Action.Raw(), result.Action.File, result.Action.Line, result.Action.Version, result.LatestVersion)
}
