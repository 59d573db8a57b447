package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config. A missing pool file is not an error:
// the runner falls back to the built-in pool.
func Validate(cfg *Config, baseDir string) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != currentConfigVersion {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if cfg.Pool.URL != "" {
		parsed, err := url.Parse(cfg.Pool.URL)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			add("pool.url", fmt.Sprintf("invalid http(s) url %q", cfg.Pool.URL))
		}
	}
	if cfg.Pool.Path != "" {
		if info, err := os.Stat(ResolvePath(baseDir, cfg.Pool.Path)); err == nil && info.IsDir() {
			add("pool.path", fmt.Sprintf("path %q is a directory", cfg.Pool.Path))
		}
	}
	if cfg.Pool.TimeoutSeconds < 0 {
		add("pool.timeout_seconds", "must be >= 0")
	}

	if cfg.Quiz.Size != "all" {
		if n, err := strconv.Atoi(cfg.Quiz.Size); err != nil || n < 1 {
			add("quiz.size", fmt.Sprintf("must be \"all\" or a positive number, got %q", cfg.Quiz.Size))
		}
	}

	switch cfg.UI.Mode {
	case "auto", "live", "plain":
	default:
		add("ui.mode", fmt.Sprintf("unsupported mode %q (expected auto|live|plain)", cfg.UI.Mode))
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		add("log.level", fmt.Sprintf("unsupported level %q", cfg.Log.Level))
	}
	if cfg.Log.MaxSizeMB < 0 {
		add("log.max_size_mb", "must be >= 0")
	}
	if cfg.Log.MaxBackups < 0 {
		add("log.max_backups", "must be >= 0")
	}

	for i, origin := range cfg.Serve.AllowedOrigins {
		if strings.TrimSpace(origin) == "" {
			add(fmt.Sprintf("serve.allowed_origins[%d]", i), "is required")
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// ResolvePath joins a relative path onto baseDir.
func ResolvePath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if baseDir == "" {
		baseDir = "."
	}
	return filepath.Join(baseDir, path)
}
