package quiz

import (
	"errors"
	"strings"
	"testing"
)

// TestSampleWithoutReplacement verifies n <= |pool| yields distinct pool elements.
func TestSampleWithoutReplacement(t *testing.T) {
	pool := makePool(t, 8)
	ids := poolIDs(pool)
	rng := NewRand(7)
	for n := 1; n <= len(pool); n++ {
		out, err := Sample(pool, N(n), rng)
		if err != nil {
			t.Fatalf("n=%d: sample: %v", n, err)
		}
		if len(out) != n {
			t.Fatalf("n=%d: expected length %d, got %d", n, n, len(out))
		}
		seen := map[string]struct{}{}
		for _, record := range out {
			if _, ok := ids[record.ID]; !ok {
				t.Fatalf("n=%d: %q is not in the pool", n, record.ID)
			}
			if _, dup := seen[record.ID]; dup {
				t.Fatalf("n=%d: duplicate %q", n, record.ID)
			}
			seen[record.ID] = struct{}{}
		}
	}
}

// TestSampleWithReplacementOverflow verifies n > |pool| covers the pool and tops up.
func TestSampleWithReplacementOverflow(t *testing.T) {
	pool := makePool(t, 3)
	ids := poolIDs(pool)
	for _, n := range []int{4, 7, 20} {
		out, err := Sample(pool, N(n), NewRand(uint64(n)))
		if err != nil {
			t.Fatalf("n=%d: sample: %v", n, err)
		}
		if len(out) != n {
			t.Fatalf("n=%d: expected length %d, got %d", n, n, len(out))
		}
		counts := map[string]int{}
		for _, record := range out {
			if _, ok := ids[record.ID]; !ok {
				t.Fatalf("n=%d: %q is not in the pool", n, record.ID)
			}
			counts[record.ID]++
		}
		for id := range ids {
			if counts[id] == 0 {
				t.Fatalf("n=%d: pool element %q missing", n, id)
			}
		}
	}
}

// TestSampleAllOfTwo verifies "all" on a two-element pool is a permutation.
func TestSampleAllOfTwo(t *testing.T) {
	pool := makePool(t, 2)
	out, err := Sample(pool, AllQuestions, NewRand(3))
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if len(out) != 2 || out[0].ID == out[1].ID {
		t.Fatalf("expected a two-element permutation, got %+v", out)
	}
}

// TestSampleReturnsIndependentCopies verifies output never aliases the pool.
func TestSampleReturnsIndependentCopies(t *testing.T) {
	pool := makePool(t, 1)
	out, err := Sample(pool, N(3), NewRand(11))
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	out[0].Options[0] = "mutated"
	out[1].Answers[0] = 3
	if pool[0].Options[0] != "A" || pool[0].Answers[0] != 0 {
		t.Fatalf("pool was mutated: %+v", pool[0])
	}
	if out[2].Options[0] != "A" {
		t.Fatalf("duplicates share storage: %+v", out[2])
	}
}

// TestSampleOrderVaries verifies repeated sampling does not always return the same order.
func TestSampleOrderVaries(t *testing.T) {
	pool := makePool(t, 6)
	orders := map[string]struct{}{}
	rng := NewRand(0)
	for trial := 0; trial < 50; trial++ {
		out, err := Sample(pool, AllQuestions, rng)
		if err != nil {
			t.Fatalf("sample: %v", err)
		}
		ids := make([]string, len(out))
		for i, record := range out {
			ids[i] = record.ID
		}
		orders[strings.Join(ids, ",")] = struct{}{}
	}
	if len(orders) < 2 {
		t.Fatalf("expected varying orders across trials, got %d distinct", len(orders))
	}
}

// TestSampleUniformPermutations checks each ordering of three items appears
// roughly equally often.
func TestSampleUniformPermutations(t *testing.T) {
	pool := makePool(t, 3)
	rng := NewRand(42)
	const trials = 6000
	counts := map[string]int{}
	for trial := 0; trial < trials; trial++ {
		out, err := Sample(pool, AllQuestions, rng)
		if err != nil {
			t.Fatalf("sample: %v", err)
		}
		counts[out[0].ID+out[1].ID+out[2].ID]++
	}
	if len(counts) != 6 {
		t.Fatalf("expected all 6 orderings, got %v", counts)
	}
	for order, count := range counts {
		if count < 800 || count > 1200 {
			t.Fatalf("ordering %s appeared %d times out of %d", order, count, trials)
		}
	}
}

// TestSampleInvalidArguments verifies precondition failures.
func TestSampleInvalidArguments(t *testing.T) {
	if _, err := Sample(nil, N(1), nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for empty pool, got %v", err)
	}
	if _, err := Sample(makePool(t, 2), N(0), nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for zero count, got %v", err)
	}
}

// TestParseCount verifies quiz size parsing.
func TestParseCount(t *testing.T) {
	cases := []struct {
		input   string
		want    Count
		wantErr bool
	}{
		{input: "all", want: AllQuestions},
		{input: " ALL ", want: AllQuestions},
		{input: "10", want: N(10)},
		{input: "0", wantErr: true},
		{input: "-2", wantErr: true},
		{input: "ten", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseCount(tc.input)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("%q: expected ErrInvalidArgument, got %v", tc.input, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %+v, got %+v", tc.input, tc.want, got)
		}
		if reparsed, _ := ParseCount(got.String()); reparsed != got {
			t.Fatalf("%q: String did not round trip", tc.input)
		}
	}
}
