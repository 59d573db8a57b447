package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestValidateReportsPoolIssues verifies pool validation errors are surfaced.
func TestValidateReportsPoolIssues(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	poolPath := filepath.Join(dir, "pool.json")
	payload := `[{"id":"a","question":"Q?","options":["x","y"],"answers":[5]}]`
	if err := os.WriteFile(poolPath, []byte(payload), 0o644); err != nil {
		t.Fatalf("write pool: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "--pool", poolPath}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Validation failed") || !strings.Contains(stderr.String(), "answers") {
		t.Fatalf("expected answer issue, got %q", stderr.String())
	}
	if !strings.Contains(stdout.String(), "No config file found") {
		t.Fatalf("expected defaults notice, got %q", stdout.String())
	}
}

// TestValidateWarnsAboutSkippedRecords verifies a partly broken pool still validates.
func TestValidateWarnsAboutSkippedRecords(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	poolPath := filepath.Join(dir, "pool.json")
	payload := `[{"id":"a","question":"Q?","options":["x","y"],"answers":[5]},{"id":"b","question":"R?","options":["x","y"],"answers":[1],"source":"book"}]`
	if err := os.WriteFile(poolPath, []byte(payload), 0o644); err != nil {
		t.Fatalf("write pool: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "--pool", poolPath}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ok exit, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "Warning: questions[0]: skipped: answers[0] index 5 out of range") {
		t.Fatalf("expected skip warning, got %q", stderr.String())
	}
	if !strings.Contains(stdout.String(), "Pool OK: 1 questions") {
		t.Fatalf("expected pool summary, got %q", stdout.String())
	}
}

// TestValidateReportsConfigIssues verifies config validation errors are surfaced.
func TestValidateReportsConfigIssues(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".quizrun", "config.yml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(configPath, []byte("version: 1\nquiz:\n  size: \"zero\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "--config", configPath}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}
	if !strings.Contains(stderr.String(), "quiz.size") {
		t.Fatalf("expected quiz.size issue, got %q", stderr.String())
	}
}
