package check

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/ghaup/pkg/config"
)

func TestController_searchFiles(t *testing.T) {
	t.Parallel()
	data := []struct {
		name  string
		files []string
		dirs  []string
		cfg   *config.Config
		param *ParamCheck
		exp   []string
	}{
		{
			name: "default patterns",
			files: []string{
				".github/workflows/a.yml",
				".github/workflows/b.yaml",
				".gitlab/workflows/c.yml",
				".github/workflows/nested/d.yml",
				".github/workflows/README.md",
				"ci.yml",
			},
			dirs: []string{
				".github/workflows/dir.yml",
			},
			exp: []string{
				".github/workflows/a.yml",
				".github/workflows/b.yaml",
				".gitlab/workflows/c.yml",
			},
		},
		{
			name: "missing workflow directories",
			files: []string{
				".github/workflows/a.yml",
			},
			exp: []string{
				".github/workflows/a.yml",
			},
		},
		{
			name: "empty workflow directory",
			dirs: []string{
				".github/workflows",
			},
			exp: []string{},
		},
		{
			name: "no workflow directory",
			files: []string{
				"README.md",
			},
			exp: []string{},
		},
		{
			name: "configuration overrides the default patterns",
			files: []string{
				"ci/a.yml",
				".github/workflows/b.yml",
			},
			cfg: &config.Config{
				Files: []*config.File{
					{
						Pattern: "ci/*.yml",
					},
				},
			},
			exp: []string{
				"ci/a.yml",
			},
		},
		{
			name: "arguments win over the search",
			files: []string{
				".github/workflows/a.yml",
			},
			param: &ParamCheck{
				WorkflowFilePaths: []string{"foo.yml"},
			},
			exp: []string{"foo.yml"},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			for _, file := range d.files {
				if err := afero.WriteFile(fs, file, []byte("name: test\n"), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			for _, dir := range d.dirs {
				if err := fs.MkdirAll(dir, 0o755); err != nil {
					t.Fatal(err)
				}
			}
			param := d.param
			if param == nil {
				param = &ParamCheck{}
			}
			ctrl := &Controller{
				fs:    fs,
				cfg:   d.cfg,
				param: param,
			}
			files, err := ctrl.searchFiles()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(d.exp, files); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}
