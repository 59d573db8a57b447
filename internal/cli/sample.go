package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"quizrun/internal/question"
	"quizrun/internal/quiz"
)

// sampleOutput is the JSON form of a prepared session.
type sampleOutput struct {
	SessionID  string           `json:"session_id"`
	Size       string           `json:"size"`
	PoolSource string           `json:"pool_source"`
	Questions  []sampleQuestion `json:"questions"`
}

type sampleQuestion struct {
	Index    int      `json:"index"`
	ID       string   `json:"id"`
	Domain   string   `json:"domain,omitempty"`
	Multi    bool     `json:"multi"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answers  []int    `json:"answers"`
}

// runSample builds the handler for the sample command.
func runSample(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
		logger, err := newLogger(resolved, *common.verbose, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to configure logging: %v\n", err)
			return ExitError
		}
		defer func() { _ = logger.Sync() }()

		pool, source := question.LoadOrBuiltin(context.Background(), poolLoader(resolved, *common.pool), logger)
		session, err := quiz.NewSession(pool, count, quiz.NewRand(resolveSeed(resolved, *seed)))
		if err != nil {
			fmt.Fprintf(stderr, "Failed to sample: %v\n", err)
			return ExitError
		}

		out := sampleOutput{
			SessionID:  session.ID,
			Size:       count.String(),
			PoolSource: source,
			Questions:  make([]sampleQuestion, 0, session.Len()),
		}
		for i, q := range session.Questions {
			out.Questions = append(out.Questions, sampleQuestion{
				Index:    i + 1,
				ID:       q.ID,
				Domain:   q.Domain,
				Multi:    q.Multi,
				Question: q.Question,
				Options:  q.PresentedOptions,
				Answers:  q.PresentedAnswers,
			})
		}
		encoder := json.NewEncoder(stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(out); err != nil {
			fmt.Fprintf(stderr, "Failed to write sample: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
