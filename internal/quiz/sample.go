package quiz

import (
	"fmt"
	"math/rand/v2"

	"quizrun/internal/question"
)

// Sample draws an ordered session from the pool.
//
// For AllQuestions, or a count no larger than the pool, the result is a
// uniform permutation truncated to the requested length. A larger count keeps
// every pool element once, tops up the remainder by drawing with replacement,
// and shuffles the whole sequence. Every returned record is an independent
// copy of its pool element.
func Sample(pool question.Pool, count Count, rng *rand.Rand) ([]question.Record, error) {
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: pool is empty", ErrInvalidArgument)
	}
	if err := count.Validate(); err != nil {
		return nil, err
	}
	rng = orDefault(rng)

	n := count.Resolve(len(pool))
	out := make([]question.Record, 0, max(n, len(pool)))
	for _, record := range pool {
		out = append(out, record.Clone())
	}
	shuffle(rng, out)
	if n <= len(pool) {
		return out[:n:n], nil
	}

	for len(out) < n {
		out = append(out, pool[rng.IntN(len(pool))].Clone())
	}
	shuffle(rng, out)
	return out, nil
}

// shuffle performs an in-place Fisher-Yates shuffle.
func shuffle[T any](rng *rand.Rand, items []T) {
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
