package config

import "strings"

// Defaults applied by Normalize.
const (
	DefaultPoolPath      = "data/questions.json"
	DefaultPoolTimeout   = 5
	DefaultQuizSize      = "10"
	DefaultUIMode        = "auto"
	DefaultLogLevel      = "info"
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultServeAddr     = "127.0.0.1:5000"
	currentConfigVersion = 1
)

// Default returns the configuration used when no config file exists.
func Default() Config {
	cfg := Config{Version: currentConfigVersion}
	Normalize(&cfg)
	return cfg
}

// Normalize trims values and fills in defaults.
func Normalize(cfg *Config) {
	cfg.Pool.Path = strings.TrimSpace(cfg.Pool.Path)
	cfg.Pool.URL = strings.TrimSpace(cfg.Pool.URL)
	if cfg.Pool.Path == "" && cfg.Pool.URL == "" {
		cfg.Pool.Path = DefaultPoolPath
	}
	if cfg.Pool.TimeoutSeconds == 0 {
		cfg.Pool.TimeoutSeconds = DefaultPoolTimeout
	}

	cfg.Quiz.Size = strings.ToLower(strings.TrimSpace(cfg.Quiz.Size))
	if cfg.Quiz.Size == "" {
		cfg.Quiz.Size = DefaultQuizSize
	}

	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = DefaultUIMode
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	cfg.Log.File = strings.TrimSpace(cfg.Log.File)
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = DefaultLogMaxSizeMB
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = DefaultLogMaxBackups
	}

	cfg.Serve.Addr = strings.TrimSpace(cfg.Serve.Addr)
	if cfg.Serve.Addr == "" {
		cfg.Serve.Addr = DefaultServeAddr
	}
}
