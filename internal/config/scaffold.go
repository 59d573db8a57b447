package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
pool:
  # Local file or http(s) URL. Unreadable or invalid pools fall back to the
  # built-in questions.
  path: "data/questions.json"
  timeout_seconds: 5

quiz:
  size: "10"

ui:
  mode: auto
  no_color: false

log:
  level: info
  file: ""

serve:
  addr: "127.0.0.1:5000"
`

// Scaffold writes a starter config under root plus the given pool payload at
// data/questions.json. Existing files are never overwritten.
func Scaffold(root string, pool []byte) ([]string, error) {
	if root == "" {
		return nil, fmt.Errorf("root directory is required")
	}
	configPath := ConfigPath(root)
	poolPath := filepath.Join(root, DefaultPoolPath)
	for _, path := range []string{configPath, poolPath} {
		if info, err := os.Stat(path); err == nil {
			if info.IsDir() {
				return nil, fmt.Errorf("path %q is a directory", path)
			}
			return nil, fmt.Errorf("file already exists at %q", path)
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat %q: %w", path, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(poolPath), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return nil, fmt.Errorf("write config file: %w", err)
	}
	if err := os.WriteFile(poolPath, pool, 0o644); err != nil {
		return nil, fmt.Errorf("write pool file: %w", err)
	}
	return []string{configPath, poolPath}, nil
}
