package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"go.uber.org/zap"

	"quizrun/internal/config"
	"quizrun/internal/question"
	"quizrun/internal/quiz"
	"quizrun/internal/review"
	"quizrun/internal/ui"
	"quizrun/internal/ui/live"
	"quizrun/internal/ui/plain"
)

// commandInput allows tests to override stdin for the quiz and init prompts.
var commandInput io.Reader = os.Stdin

// Test seams for the quiz front ends.
var (
	runLive  = live.Run
	runPlain = plain.Run
)

// runRun builds the handler for the run command.
func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		common := registerCommonFlags(fs)
		size := fs.String("size", "", "Quiz length: a number or \"all\" (overrides config)")
		seed := fs.Uint64("seed", 0, "Random seed; 0 uses quiz.seed or the clock")
		uiMode := fs.String("ui", "", "UI mode: auto|live|plain (overrides config)")
		noColor := fs.Bool("no-color", false, "Disable colors in the live UI")
		reviewHTML := fs.String("review-html", "", "Write the graded review to an HTML file")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		resolved, err := resolveConfig(*common.configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}
		count, err := resolveCount(resolved, *size)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid size: %v\n", err)
			return ExitUsage
		}
		mode := *uiMode
		if mode == "" {
			mode = resolved.Config.UI.Mode
		}
		choice, err := chooseUI(uiRequest{
			mode:    mode,
			noColor: *noColor || resolved.Config.UI.NoColor,
			verbose: *common.verbose,
		}, commandInput, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if choice.warning != "" {
			fmt.Fprintln(stderr, choice.warning)
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
		rng := quiz.NewRand(resolveSeed(resolved, *seed))
		factory := func(count quiz.Count) (*quiz.Session, error) {
			session, err := quiz.NewSession(pool, count, rng)
			if err == nil {
				logger.Info("session started",
					zap.String("session_id", session.ID),
					zap.String("pool", source),
					zap.String("size", count.String()),
					zap.Int("questions", session.Len()),
				)
			}
			return session, err
		}
		session, err := factory(count)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to start quiz: %v\n", err)
			return ExitError
		}

		var outcome ui.Outcome
		if choice.live {
			outcome, err = runLive(ctx, session, factory, commandInput, stdout, live.Options{
				NoColor: choice.noColor,
			})
		} else {
			outcome, err = runPlain(ctx, session, factory, commandInput, stdout, plain.Options{})
		}
		if err != nil && ctx.Err() == nil {
			fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
			return ExitError
		}
		if outcome.Session == nil {
			outcome.Session = session
		}
		report := outcome.Report
		if !outcome.Graded {
			report = outcome.Session.Grade()
		}
		if choice.live && outcome.Graded {
			if err := review.WriteText(stdout, report); err != nil {
				fmt.Fprintf(stderr, "Failed to print review: %v\n", err)
				return ExitError
			}
		}
		if *reviewHTML != "" {
			meta := review.Meta{SessionID: outcome.Session.ID, PoolSource: source, GradedAt: time.Now()}
			if err := review.WriteHTMLFile(ctx, *reviewHTML, report, meta); err != nil {
				fmt.Fprintf(stderr, "Failed to write review: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "Wrote %s\n", *reviewHTML)
		}
		logger.Info("session finished",
			zap.String("session_id", outcome.Session.ID),
			zap.Bool("graded", outcome.Graded),
			zap.Int("answered", report.Answered),
			zap.Int("correct", report.Correct),
		)
		return ExitOK
	}
}

// resolveCount parses the --size override or the configured quiz size.
func resolveCount(resolved config.Resolved, override string) (quiz.Count, error) {
	value := strings.TrimSpace(override)
	if value == "" {
		value = resolved.Config.Quiz.Size
	}
	return quiz.ParseCount(value)
}

// resolveSeed prefers the --seed flag over quiz.seed.
func resolveSeed(resolved config.Resolved, override uint64) uint64 {
	if override != 0 {
		return override
	}
	return resolved.Config.Quiz.Seed
}
