package config

// Config is the .quizrun/config.yml schema.
type Config struct {
	Version int         `yaml:"version"`
	Pool    PoolConfig  `yaml:"pool"`
	Quiz    QuizConfig  `yaml:"quiz"`
	UI      UIConfig    `yaml:"ui"`
	Log     LogConfig   `yaml:"log"`
	Serve   ServeConfig `yaml:"serve"`
}

// PoolConfig locates the question pool. URL wins over Path when both are set.
type PoolConfig struct {
	Path           string `yaml:"path"`
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// QuizConfig sets session defaults.
type QuizConfig struct {
	Size string `yaml:"size"`
	Seed uint64 `yaml:"seed"`
}

// UIConfig selects the runner front end.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// ServeConfig controls the pool server.
type ServeConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}
