package github

import (
	"testing"
)

func TestNew(t *testing.T) {
	t.Parallel()
	client := New("1.0.0")
	if client == nil {
		t.Fatal("New() returned nil")
	}
	if client.UserAgent != "ghaup/1.0.0" {
		t.Errorf("UserAgent = %q, want %q", client.UserAgent, "ghaup/1.0.0")
	}
}

func Test_userAgent(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		version string
		exp     string
	}{
		{
			name:    "with version",
			version: "1.2.3",
			exp:     "ghaup/1.2.3",
		},
		{
			name:    "without version",
			version: "",
			exp:     "ghaup",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if got := userAgent(d.version); got != d.exp {
				t.Fatalf("wanted %s, got %s", d.exp, got)
			}
		})
	}
}
