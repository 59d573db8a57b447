package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"quizrun/internal/poolserver"
	"quizrun/internal/question"
)

// servePool is a test seam for running the pool server.
var servePool = poolserver.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		common := registerCommonFlags(fs)
		addr := fs.String("addr", "", "Address to listen on (overrides serve.addr)")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		resolved, err := resolveConfig(*common.configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}
		listenAddr := strings.TrimSpace(*addr)
		if listenAddr == "" {
			listenAddr = resolved.Config.Serve.Addr
		}
		if listenAddr == "" {
			fmt.Fprintln(stderr, "Missing --addr")
			return ExitUsage
		}
		logger, err := newLogger(resolved, *common.verbose, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to configure logging: %v\n", err)
			return ExitError
		}
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		pool, source := question.LoadOrBuiltin(ctx, poolLoader(resolved, *common.pool), logger)
		cfg := poolserver.Config{
			Addr:           listenAddr,
			Pool:           pool,
			Source:         source,
			AllowedOrigins: resolved.Config.Serve.AllowedOrigins,
			Logger:         logger,
			Ready: func(bound string) {
				fmt.Fprintf(stdout, "Serving %d questions from %s at http://%s%s\n", len(pool), source, bound, poolserver.PoolPath)
			},
		}
		if err := servePool(ctx, cfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
