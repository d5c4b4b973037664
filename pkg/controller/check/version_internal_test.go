package check

import (
	"testing"
)

func Test_majorNumber(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		version string
		num     int
		ok      bool
	}{
		{
			name:    "plain number",
			version: "2",
			num:     2,
			ok:      true,
		},
		{
			name:    "v prefix",
			version: "v2",
			num:     2,
			ok:      true,
		},
		{
			name:    "semver",
			version: "v4.1.0",
			num:     4,
			ok:      true,
		},
		{
			name:    "calver",
			version: "2024.10.1",
			num:     2024,
			ok:      true,
		},
		{
			name:    "caret marker",
			version: "^1.2.0",
			num:     1,
			ok:      true,
		},
		{
			name:    "branch",
			version: "main",
			ok:      false,
		},
		{
			name:    "commit hash",
			version: "de90f4bfbf6ea5b4458cf01b8a08b993f0f4bcbb",
			ok:      false,
		},
		{
			name:    "commit hash starting with a digit",
			version: "8f4b7f84864484a7bf31766abe9204da3cbe65b3",
			num:     8,
			ok:      true,
		},
		{
			name:    "two markers",
			version: "vv2",
			ok:      false,
		},
		{
			name:    "marker only",
			version: "v",
			ok:      false,
		},
		{
			name:    "empty",
			version: "",
			ok:      false,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			num, ok := majorNumber(d.version)
			if ok != d.ok {
				t.Fatalf("wanted %v, got %v", d.ok, ok)
			}
			if num != d.num {
				t.Fatalf("wanted %d, got %d", d.num, num)
			}
		})
	}
}

func Test_isMajorUpdate(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		current string
		latest  string
		exp     bool
	}{
		{
			name:    "major update",
			current: "v2",
			latest:  "v4",
			exp:     true,
		},
		{
			name:    "same major",
			current: "v4.0.0",
			latest:  "v4.2.1",
			exp:     false,
		},
		{
			name:    "downgrade",
			current: "v4",
			latest:  "v2",
			exp:     false,
		},
		{
			name:    "minor update",
			current: "1.2.0",
			latest:  "1.3.0",
			exp:     false,
		},
		{
			name:    "double digit major",
			current: "v9.1.0",
			latest:  "v10.0.0",
			exp:     true,
		},
		{
			name:    "current is a branch",
			current: "main",
			latest:  "v4",
			exp:     false,
		},
		{
			name:    "latest is not a version",
			current: "v2",
			latest:  "nightly",
			exp:     false,
		},
		{
			name:    "calver",
			current: "2024.10.1",
			latest:  "2025.1.0",
			exp:     true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if f := isMajorUpdate(d.current, d.latest); f != d.exp {
				t.Fatalf("wanted %v, got %v", d.exp, f)
			}
		})
	}
}

func Test_classifyUpdate(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		current string
		latest  string
		exp     Level
	}{
		{
			name:    "major",
			current: "v2",
			latest:  "v4",
			exp:     LevelMajor,
		},
		{
			name:    "minor",
			current: "v1.2.0",
			latest:  "v1.3.0",
			exp:     LevelMinor,
		},
		{
			name:    "minor from a short version",
			current: "v3",
			latest:  "v3.4.0",
			exp:     LevelMinor,
		},
		{
			name:    "patch",
			current: "v1.2.0",
			latest:  "v1.2.5",
			exp:     LevelPatch,
		},
		{
			name:    "branch",
			current: "main",
			latest:  "v4",
			exp:     LevelUnknown,
		},
		{
			name:    "unparseable latest",
			current: "v1.2.0",
			latest:  "nightly",
			exp:     LevelUnknown,
		},
		{
			name:    "downgrade",
			current: "v1.3.0",
			latest:  "v1.2.0",
			exp:     LevelUnknown,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if level := classifyUpdate(d.current, d.latest); level != d.exp {
				t.Fatalf("wanted %s, got %s", d.exp, level)
			}
		})
	}
}
