// Package testutil holds helpers shared by quizrun's package tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// DefaultTimeout bounds tests that do not pick their own timeout.
const DefaultTimeout = 5 * time.Second

// Context returns a context that ends with the test or after timeout,
// whichever comes first. The timeout is trimmed to finish a second before
// the go test deadline.
func Context(t *testing.T, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if deadline, ok := t.Deadline(); ok {
		if left := time.Until(deadline) - time.Second; left > 0 {
			timeout = min(timeout, left)
		}
	}
	ctx, cancel := context.WithTimeout(t.Context(), timeout)
	t.Cleanup(cancel)
	return ctx
}

// WritePool writes a question pool payload into a fresh temp dir and returns
// its path. The name's extension decides how the pool is decoded.
func WritePool(t *testing.T, name, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write pool %s: %v", name, err)
	}
	return path
}
