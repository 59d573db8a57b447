package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"quizrun/internal/config"
	"quizrun/internal/question"
	"quizrun/internal/ui/plain"
	"quizrun/internal/vcs"
)

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		dir := flags.String("dir", "", "Directory to initialize (default: git root, else current directory)")
		yes := flags.Bool("yes", false, "Skip the confirmation prompt")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		root := strings.TrimSpace(*dir)
		if root == "" {
			root = discoverGitRoot()
		}
		if root == "" {
			wd, err := os.Getwd()
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			root = wd
		}
		root, err := filepath.Abs(root)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			fmt.Fprintf(stderr, "Init failed: %q is not a directory\n", root)
			return ExitError
		}

		if !*yes {
			reader := bufio.NewReader(commandInput)
			confirm, err := plain.Confirm(reader, stdout, fmt.Sprintf("Initialize quizrun in %s?", root), true)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			if !confirm {
				fmt.Fprintln(stderr, "Init cancelled.")
				return ExitError
			}
		}

		written, err := config.Scaffold(root, question.BuiltinJSON())
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		for _, path := range written {
			fmt.Fprintf(stdout, "Wrote %s\n", path)
		}
		return ExitOK
	}
}

// discoverGitRoot returns the git root of the working directory or empty when not found.
func discoverGitRoot() string {
	root, err := vcs.RepoRoot(context.Background(), "")
	if err != nil {
		return ""
	}
	return root
}
