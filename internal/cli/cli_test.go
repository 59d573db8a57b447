package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootHelpListsCommands(t *testing.T) {
	for _, args := range [][]string{{"--help"}, {"-h"}, {"help"}} {
		var out, err bytes.Buffer
		if code := Run(args, &out, &err); code != ExitOK {
			t.Fatalf("%v: expected exit %d, got %d", args, ExitOK, code)
		}
		if err.Len() != 0 {
			t.Fatalf("%v: expected no stderr output, got %q", args, err.String())
		}
		output := out.String()
		for _, cmd := range commands {
			if !strings.Contains(output, cmd.Name) || !strings.Contains(output, cmd.Summary) {
				t.Fatalf("%v: expected %q and its summary in output", args, cmd.Name)
			}
		}
		if !strings.Contains(output, ".quizrun/config.yml") {
			t.Fatalf("%v: expected the config location, got %q", args, output)
		}
	}
}

func TestNoArgsIsUsageError(t *testing.T) {
	var out, err bytes.Buffer
	if code := Run(nil, &out, &err); code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(out.String(), "quizrun <command>") {
		t.Fatalf("expected usage output, got %q", out.String())
	}
}

func TestUnknownCommandGoesToStderr(t *testing.T) {
	for _, args := range [][]string{{"quiz"}, {"help", "quiz"}} {
		var out, err bytes.Buffer
		if code := Run(args, &out, &err); code != ExitUsage {
			t.Fatalf("%v: expected exit %d, got %d", args, ExitUsage, code)
		}
		if out.Len() != 0 {
			t.Fatalf("%v: expected no stdout output, got %q", args, out.String())
		}
		if !strings.Contains(err.String(), "Unknown command: quiz") {
			t.Fatalf("%v: expected unknown command error, got %q", args, err.String())
		}
	}
}

func TestCommandUsage(t *testing.T) {
	for _, cmd := range commands {
		for _, args := range [][]string{{cmd.Name, "--help"}, {"help", cmd.Name}} {
			var out, err bytes.Buffer
			if code := Run(args, &out, &err); code != ExitOK {
				t.Fatalf("%v: expected exit %d, got %d", args, ExitOK, code)
			}
			if err.Len() != 0 {
				t.Fatalf("%v: expected no stderr output, got %q", args, err.String())
			}
			for _, line := range cmd.Usage {
				if !strings.Contains(out.String(), line) {
					t.Fatalf("%v: expected usage line %q", args, line)
				}
			}
		}
	}
}
