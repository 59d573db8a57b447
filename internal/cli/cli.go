// Package cli implements the quizrun command line.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"quizrun/internal/config"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Command is one quizrun subcommand.
type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

// Run dispatches args to a subcommand and returns the process exit code.
// "quizrun help <command>" prints that command's usage.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	name, rest := args[0], args[1:]
	switch name {
	case "-h", "--help":
		printUsage(stdout)
		return ExitOK
	case "help":
		return runHelp(rest, stdout, stderr)
	}
	cmd := findCommand(name)
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", name)
		printUsage(stderr)
		return ExitUsage
	}
	return cmd.Run(rest, stdout, stderr)
}

func runHelp(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitOK
	}
	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}
	printCommandUsage(cmd, stdout)
	return ExitOK
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

// wantsHelp reports whether a help flag appears anywhere in a command's args.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

// parseFlags parses a command's flags and rejects positional arguments. When
// ok is false the command should return code.
func parseFlags(cmd *Command, fs *flag.FlagSet, args []string, stdout, stderr io.Writer) (code int, ok bool) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "quizrun runs multiple-choice practice quizzes in the terminal.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  quizrun <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Settings are read from %s in the current directory or a parent.\n", filepath.Join(config.ConfigDirName, config.ConfigFileName))
	fmt.Fprintln(w, "Use \"quizrun help <command>\" for command options.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{Name: name, Summary: summary, Usage: usage}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("run", "Take a practice quiz", []string{
		"quizrun run [--size <n|all>] [--seed <n>] [--pool <path|url>] [--ui auto|live|plain] [--no-color] [--review-html <path>]",
	}, runRun),
	command("sample", "Print a randomized session as JSON", []string{
		"quizrun sample [--size <n|all>] [--seed <n>] [--pool <path|url>]",
	}, runSample),
	command("validate", "Check the config and question pool", []string{
		"quizrun validate [--config <path>] [--pool <path|url>]",
	}, runValidate),
	command("serve", "Host the question pool over HTTP", []string{
		"quizrun serve [--addr <host:port>] [--pool <path|url>]",
	}, runServe),
	command("init", "Scaffold .quizrun/config.yml and a starter pool", []string{
		"quizrun init [--dir <path>] [--yes]",
	}, runInit),
}
