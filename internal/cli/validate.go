package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		common := registerCommonFlags(flags)
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		resolved, err := resolveConfig(*common.configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		if resolved.Path == "" {
			fmt.Fprintln(stdout, "No config file found; using defaults")
		} else {
			fmt.Fprintf(stdout, "Config OK: %s\n", resolved.Path)
		}

		loader := poolLoader(resolved, *common.pool)
		if loader == nil {
			fmt.Fprintln(stdout, "No pool configured; the built-in questions will be used")
			return ExitOK
		}
		pool, issues, err := loader.Load(context.Background())
		for _, issue := range issues {
			fmt.Fprintf(stderr, "Warning: %s: %s\n", issue.Field, issue.Message)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}
		fmt.Fprintf(stdout, "Pool OK: %d questions across %d domains (%s)\n", len(pool), len(pool.Domains()), loader.Source())
		return ExitOK
	}
}
