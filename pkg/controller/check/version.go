package check

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/hashicorp/go-version"
)

// Level classifies how far an action reference is behind the latest release.
type Level string

const (
	LevelMajor   Level = "major"
	LevelMinor   Level = "minor"
	LevelPatch   Level = "patch"
	LevelUnknown Level = "unknown"
)

// majorNumber extracts the leading major version number of v.
// A single leading marker character such as "v" is stripped first.
// ok is false when v doesn't start with decimal digits after the optional
// marker, e.g. branch names and commit hashes.
func majorNumber(v string) (int, bool) {
	if v == "" {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(v)
	if !unicode.IsDigit(r) {
		v = v[size:]
	}
	i := 0
	for i < len(v) && v[i] >= '0' && v[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(v[:i])
	if err != nil {
		return 0, false
	}
	return n, true
}

// isMajorUpdate reports whether latest increases the major version number of
// current. Versions whose major number can't be determined never count as
// major updates.
func isMajorUpdate(current, latest string) bool {
	cur, ok := majorNumber(current)
	if !ok {
		return false
	}
	lat, ok := majorNumber(latest)
	if !ok {
		return false
	}
	return lat > cur
}

// classifyUpdate labels the update from current to latest.
// The major label depends only on the leading major numbers. The finer
// labels require both versions to be parseable.
func classifyUpdate(current, latest string) Level {
	if isMajorUpdate(current, latest) {
		return LevelMajor
	}
	cv, err := version.NewVersion(current)
	if err != nil {
		return LevelUnknown
	}
	lv, err := version.NewVersion(latest)
	if err != nil {
		return LevelUnknown
	}
	cs := cv.Segments()
	ls := lv.Segments()
	if cs[0] != ls[0] {
		return LevelUnknown
	}
	if ls[1] > cs[1] {
		return LevelMinor
	}
	if ls[1] == cs[1] && ls[2] > cs[2] {
		return LevelPatch
	}
	return LevelUnknown
}
