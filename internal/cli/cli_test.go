package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/depcheck/pkg/errors"
	"github.com/matzehuels/depcheck/pkg/pipeline"
)

func TestRootCommand(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()

	if root.Use != appName {
		t.Errorf("Use = %q, want %q", root.Use, appName)
	}
	for _, name := range []string{"check", "serve", "completion"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestCheckCommandFlags(t *testing.T) {
	cmd := New(&bytes.Buffer{}, LogInfo).checkCommand()

	for _, name := range []string{"format", "output", "interactive", "repo", "index"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("check has no --%s flag", name)
		}
	}
	if got := cmd.Flags().Lookup("index").DefValue; got != pipeline.DefaultIndex {
		t.Errorf("--index default = %q, want %q", got, pipeline.DefaultIndex)
	}
}

func TestOptions(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)

	tests := []struct {
		name    string
		flags   resolveFlags
		want    []string
		wantErr errors.Code
	}{
		{"defaults", resolveFlags{index: pipeline.DefaultIndex}, nil, ""},
		{"trims repos", resolveFlags{index: "metadata", repositories: []string{" https://repo.example/maven2/ "}}, []string{"https://repo.example/maven2"}, ""},
		{"search", resolveFlags{index: "search"}, nil, ""},
		{"bad index", resolveFlags{index: "jcenter"}, nil, errors.ErrCodeInvalidIndex},
		{"bad repo", resolveFlags{index: "metadata", repositories: []string{"repo.example"}}, nil, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := c.options(tt.flags)
			if tt.wantErr != "" {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("options() error = %v, want %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("options() error: %v", err)
			}
			if opts.Logger != c.Logger {
				t.Error("options() should carry the CLI logger")
			}
			if strings.Join(opts.Repositories, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Repositories = %v, want %v", opts.Repositories, tt.want)
			}
		})
	}
}

func TestOptionsDoesNotAliasFlags(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	f := resolveFlags{index: "metadata", repositories: []string{"https://repo.example/"}}

	if _, err := c.options(f); err != nil {
		t.Fatal(err)
	}
	if f.repositories[0] != "https://repo.example/" {
		t.Errorf("flag value modified to %q", f.repositories[0])
	}
}

func TestCompletionCommand(t *testing.T) {
	var out bytes.Buffer
	root := New(&out, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"completion", "bash"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(out.String(), appName) {
		t.Error("bash completion does not mention the command")
	}
}
