package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Layout of the per-project config.
const (
	ConfigDirName  = ".quizrun"
	ConfigFileName = "config.yml"
)

// ErrNotFound is returned when no config file exists up to the filesystem root.
var ErrNotFound = errors.New("config not found")

// ConfigDir returns the .quizrun directory under a project root.
func ConfigDir(root string) string {
	return filepath.Join(root, ConfigDirName)
}

// ConfigPath returns .quizrun/config.yml under a project root.
func ConfigPath(root string) string {
	return filepath.Join(ConfigDir(root), ConfigFileName)
}

// ProjectRoot returns the directory relative pool paths resolve against: the
// parent of .quizrun, or the config file's own directory for configs kept
// elsewhere.
func ProjectRoot(configPath string) string {
	dir := filepath.Dir(configPath)
	if filepath.Base(dir) != ConfigDirName {
		return dir
	}
	return filepath.Dir(dir)
}

// FindConfigPath walks from startDir, or the working directory when empty,
// up to the filesystem root and returns the first .quizrun/config.yml.
func FindConfigPath(startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}
	start, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	for dir := start; ; dir = filepath.Dir(dir) {
		path, err := configIn(dir)
		if err != nil || path != "" {
			return path, err
		}
		if filepath.Dir(dir) == dir {
			return "", fmt.Errorf("%w: no %s in %s or any parent", ErrNotFound, filepath.Join(ConfigDirName, ConfigFileName), start)
		}
	}
}

// configIn returns the config file inside dir, or "" when dir has none. A
// .quizrun directory without config.yml stops the search with an error.
func configIn(dir string) (string, error) {
	path := ConfigPath(dir)
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return "", fmt.Errorf("config path %q is a directory", path)
	case err == nil:
		return path, nil
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("stat config path %q: %w", path, err)
	}
	if info, err := os.Stat(ConfigDir(dir)); err == nil && info.IsDir() {
		return "", fmt.Errorf("found %s but %s is missing; run \"quizrun init\" or remove the directory", ConfigDir(dir), ConfigFileName)
	}
	return "", nil
}
