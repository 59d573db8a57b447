package config

import (
	"errors"
	"fmt"
	"os"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg, ProjectRoot(path)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolved is a loaded config plus the directory relative paths resolve against.
type Resolved struct {
	Config  Config
	Path    string
	BaseDir string
}

// Resolve loads an explicit config path, or searches upward from the working
// directory. When no config exists anywhere the defaults are returned with the
// working directory as base.
func Resolve(explicitPath string) (Resolved, error) {
	if explicitPath != "" {
		cfg, err := Load(explicitPath)
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{Config: cfg, Path: explicitPath, BaseDir: ProjectRoot(explicitPath)}, nil
	}
	path, err := FindConfigPath("")
	if errors.Is(err, ErrNotFound) {
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return Resolved{}, fmt.Errorf("get working directory: %w", wdErr)
		}
		return Resolved{Config: Default(), BaseDir: wd}, nil
	}
	if err != nil {
		return Resolved{}, err
	}
	cfg, err := Load(path)
	if err != nil {
		return Resolved{}, err
	}
	return Resolved{Config: cfg, Path: path, BaseDir: ProjectRoot(path)}, nil
}

// PoolLocation returns the URL or resolved file path of the question pool.
func (r Resolved) PoolLocation() string {
	if r.Config.Pool.URL != "" {
		return r.Config.Pool.URL
	}
	return ResolvePath(r.BaseDir, r.Config.Pool.Path)
}
