package check

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/suzuki-shunsuke/ghaup/pkg/config"
)

func TestParseLine(t *testing.T) {
	t.Parallel()
	data := []struct {
		name string
		line string
		exp  *Action
	}{
		{
			name: "list entry",
			line: "      - uses: actions/checkout@v4",
			exp: &Action{
				Name:    "actions/checkout",
				Version: "v4",
			},
		},
		{
			name: "no list marker",
			line: "    uses: actions/setup-go@v5",
			exp: &Action{
				Name:    "actions/setup-go",
				Version: "v5",
			},
		},
		{
			name: "double quoted value",
			line: `      - uses: "actions/checkout@v4"`,
			exp: &Action{
				Name:    "actions/checkout",
				Version: "v4",
			},
		},
		{
			name: "single quoted value",
			line: "      - uses: 'actions/cache@v3.3.1'",
			exp: &Action{
				Name:    "actions/cache",
				Version: "v3.3.1",
			},
		},
		{
			name: "quoted key",
			line: `      - "uses": actions/checkout@v4`,
			exp: &Action{
				Name:    "actions/checkout",
				Version: "v4",
			},
		},
		{
			name: "commented out step",
			line: "      # - uses: actions/checkout@v2",
			exp: &Action{
				Name:    "actions/checkout",
				Version: "v2",
			},
		},
		{
			name: "trailing comment",
			line: "      - uses: actions/checkout@v4 # pinned",
			exp: &Action{
				Name:    "actions/checkout",
				Version: "v4",
			},
		},
		{
			name: "commit hash",
			line: "      - uses: actions/checkout@de90f4bfbf6ea5b4458cf01b8a08b993f0f4bcbb",
			exp: &Action{
				Name:    "actions/checkout",
				Version: "de90f4bfbf6ea5b4458cf01b8a08b993f0f4bcbb",
			},
		},
		{
			name: "action in a subdirectory",
			line: "      - uses: actions/aws/ec2@main",
			exp: &Action{
				Name:    "actions/aws/ec2",
				Version: "main",
			},
		},
		{
			name: "reusable workflow",
			line: "    uses: suzuki-shunsuke/tfaction/.github/workflows/wc-plan.yaml@v1.6.0",
			exp: &Action{
				Name:    "suzuki-shunsuke/tfaction/.github/workflows/wc-plan.yaml",
				Version: "v1.6.0",
			},
		},
		{
			name: "docker with digest",
			line: "      - uses: docker://alpine@sha256:4edbd2beb5f78b1014028f4fbb99f3237d9561100b6881aabbf5acce2c4f9454",
			exp: &Action{
				Name:    "docker://alpine",
				Version: "sha256:4edbd2beb5f78b1014028f4fbb99f3237d9561100b6881aabbf5acce2c4f9454",
			},
		},
		{
			name: "unversioned reference",
			line: "      - uses: actions/checkout",
		},
		{
			name: "local action",
			line: "      - uses: ./.github/actions/build",
		},
		{
			name: "not a uses line",
			line: "        run: echo hello",
		},
		{
			name: "uses in a value",
			line: "        name: uses actions/checkout@v4",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			action := ParseLine(d.line)
			if diff := cmp.Diff(d.exp, action); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestController_parseAction(t *testing.T) {
	t.Parallel()
	data := []struct {
		name      string
		action    *Action
		strict    bool
		exp       bool
		repoOwner string
		repoName  string
	}{
		{
			name: "action",
			action: &Action{
				Name: "actions/checkout",
			},
			exp:       true,
			repoOwner: "actions",
			repoName:  "checkout",
		},
		{
			name: "action in a subdirectory",
			action: &Action{
				Name: "actions/aws/ec2",
			},
			exp:       true,
			repoOwner: "actions",
			repoName:  "aws",
		},
		{
			name: "subdirectory is excluded in the strict mode",
			action: &Action{
				Name: "actions/aws/ec2",
			},
			strict: true,
			exp:    false,
		},
		{
			name: "local action",
			action: &Action{
				Name: "./.github/actions/build",
			},
			exp: false,
		},
		{
			name: "docker",
			action: &Action{
				Name: "docker://alpine",
			},
			exp: false,
		},
		{
			name: "no owner",
			action: &Action{
				Name: "checkout",
			},
			exp: false,
		},
		{
			name: "empty owner",
			action: &Action{
				Name: "/checkout",
			},
			exp: false,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			ctrl := &Controller{
				cfg: &config.Config{
					Strict: d.strict,
				},
			}
			if f := ctrl.parseAction(d.action); f != d.exp {
				t.Fatalf("wanted %v, got %v", d.exp, f)
			}
			if !d.exp {
				return
			}
			if d.action.RepoOwner != d.repoOwner {
				t.Errorf("RepoOwner: wanted %s, got %s", d.repoOwner, d.action.RepoOwner)
			}
			if d.action.RepoName != d.repoName {
				t.Errorf("RepoName: wanted %s, got %s", d.repoName, d.action.RepoName)
			}
		})
	}
}
