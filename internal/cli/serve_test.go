package cli

import (
	"bytes"
	"context"
	"testing"

	"quizrun/internal/poolserver"
)

// TestServeCommandPassesConfig ensures serve forwards parsed config to the server layer.
func TestServeCommandPassesConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	var gotConfig poolserver.Config
	origServe := servePool
	servePool = func(_ context.Context, cfg poolserver.Config) error {
		gotConfig = cfg
		cfg.Ready(cfg.Addr)
		return nil
	}
	t.Cleanup(func() { servePool = origServe })

	var stdout, stderr bytes.Buffer
	exitCode := Run([]string{"serve", "--addr", "127.0.0.1:5050"}, &stdout, &stderr)
	if exitCode != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", exitCode, stderr.String())
	}
	if gotConfig.Addr != "127.0.0.1:5050" {
		t.Fatalf("unexpected addr: %s", gotConfig.Addr)
	}
	if len(gotConfig.Pool) != 12 || gotConfig.Source != "builtin" {
		t.Fatalf("expected the built-in pool, got %d questions from %q", len(gotConfig.Pool), gotConfig.Source)
	}
	if want := "http://127.0.0.1:5050/data/questions.json"; !bytes.Contains(stdout.Bytes(), []byte(want)) {
		t.Fatalf("expected %q in output, got %q", want, stdout.String())
	}
}

// TestServeCommandUsesConfiguredAddr verifies the default address comes from config.
func TestServeCommandUsesConfiguredAddr(t *testing.T) {
	t.Chdir(t.TempDir())
	var gotAddr string
	origServe := servePool
	servePool = func(_ context.Context, cfg poolserver.Config) error {
		gotAddr = cfg.Addr
		return nil
	}
	t.Cleanup(func() { servePool = origServe })

	var stdout, stderr bytes.Buffer
	if code := Run([]string{"serve"}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, stderr.String())
	}
	if gotAddr != "127.0.0.1:5000" {
		t.Fatalf("unexpected addr: %s", gotAddr)
	}
}
