package cli

import (
	"bytes"
	"encoding/json"
	"testing"
)

// TestSampleIsDeterministicForSeed verifies a seed fixes the sampled order.
func TestSampleIsDeterministicForSeed(t *testing.T) {
	t.Chdir(t.TempDir())
	first := runSampleCommand(t, "--size", "4", "--seed", "9")
	second := runSampleCommand(t, "--size", "4", "--seed", "9")

	if len(first.Questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(first.Questions))
	}
	if first.PoolSource != "builtin" {
		t.Fatalf("expected builtin pool, got %q", first.PoolSource)
	}
	for i := range first.Questions {
		a, b := first.Questions[i], second.Questions[i]
		if a.ID != b.ID || a.Options[0] != b.Options[0] {
			t.Fatalf("expected identical samples for the same seed at %d", i)
		}
	}
	for _, q := range first.Questions {
		for _, answer := range q.Answers {
			if answer < 0 || answer >= len(q.Options) {
				t.Fatalf("answer %d out of range for %s", answer, q.ID)
			}
		}
	}
}

// TestSampleOverflowRepeatsQuestions verifies sizes beyond the pool are filled.
func TestSampleOverflowRepeatsQuestions(t *testing.T) {
	t.Chdir(t.TempDir())
	out := runSampleCommand(t, "--size", "20", "--seed", "1")
	if len(out.Questions) != 20 {
		t.Fatalf("expected 20 questions, got %d", len(out.Questions))
	}
	seen := map[string]bool{}
	for _, q := range out.Questions {
		seen[q.ID] = true
	}
	if len(seen) != 12 {
		t.Fatalf("expected every built-in question at least once, saw %d", len(seen))
	}
}

func runSampleCommand(t *testing.T, args ...string) sampleOutput {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(append([]string{"sample"}, args...), &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, stderr.String())
	}
	var out sampleOutput
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		t.Fatalf("decode sample: %v", err)
	}
	return out
}
