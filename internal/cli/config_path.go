package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"quizrun/internal/config"
	"quizrun/internal/logging"
	"quizrun/internal/question"
)

// commonFlags are the options shared by commands that load a pool.
type commonFlags struct {
	configPath *string
	pool       *string
	verbose    *bool
}

func registerCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		configPath: fs.String("config", "", "Path to config file (default: search for .quizrun/config.yml)"),
		pool:       fs.String("pool", "", "Question pool file or http(s) URL (overrides config)"),
		verbose:    fs.Bool("verbose", false, "Log to stderr"),
	}
}

// resolveConfig loads the config named by --config or found from the
// working directory.
func resolveConfig(configPath string) (config.Resolved, error) {
	configPath = strings.TrimSpace(configPath)
	if configPath != "" {
		abs, err := filepath.Abs(configPath)
		if err != nil {
			return config.Resolved{}, fmt.Errorf("resolve config path: %w", err)
		}
		configPath = abs
	}
	return config.Resolve(configPath)
}

// poolLocation applies the --pool override to the configured location.
func poolLocation(resolved config.Resolved, override string) string {
	if override = strings.TrimSpace(override); override != "" {
		return override
	}
	return resolved.PoolLocation()
}

// poolLoader builds the loader for a pool location using the configured timeout.
func poolLoader(resolved config.Resolved, override string) question.Loader {
	timeout := time.Duration(resolved.Config.Pool.TimeoutSeconds) * time.Second
	return question.NewLoader(poolLocation(resolved, override), timeout)
}

// newLogger builds the command logger. Console output goes to stderr only
// when verbose is set.
func newLogger(resolved config.Resolved, verbose bool, stderr io.Writer) (*zap.Logger, error) {
	opts := logging.Options{
		Level:      resolved.Config.Log.Level,
		MaxSizeMB:  resolved.Config.Log.MaxSizeMB,
		MaxBackups: resolved.Config.Log.MaxBackups,
	}
	if resolved.Config.Log.File != "" {
		opts.File = config.ResolvePath(resolved.BaseDir, resolved.Config.Log.File)
	}
	if verbose {
		opts.Console = stderr
	}
	return logging.New(opts)
}
