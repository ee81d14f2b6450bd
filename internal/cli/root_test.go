package cli

import (
	"testing"
)

func TestNewRootCmd(t *testing.T) {
	root := newRootCmd()

	if root.Use != "sketchwall" {
		t.Errorf("root.Use = %q, want %q", root.Use, "sketchwall")
	}
	if !root.SilenceUsage {
		t.Error("root command should silence usage on errors")
	}
	if root.PersistentFlags().Lookup("verbose") == nil {
		t.Error("root command should have a --verbose flag")
	}
}

func TestRootSubcommands(t *testing.T) {
	root := newRootCmd()

	want := []string{"render", "export", "serve", "boards", "cache", "discover", "completion"}
	have := map[string]bool{}
	for _, cmd := range root.Commands() {
		have[cmd.Name()] = true
	}

	for _, name := range want {
		if !have[name] {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestExportSubcommands(t *testing.T) {
	export := newExportCmd()

	have := map[string]bool{}
	for _, cmd := range export.Commands() {
		have[cmd.Name()] = true
	}

	for _, name := range []string{"excalidraw", "graph"} {
		if !have[name] {
			t.Errorf("export command missing subcommand %q", name)
		}
	}
}
