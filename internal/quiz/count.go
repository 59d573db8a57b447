package quiz

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidArgument marks violated preconditions on sampling and grading inputs.
var ErrInvalidArgument = errors.New("invalid argument")

// Count is the requested session length: every question, or a fixed number.
type Count struct {
	All bool
	N   int
}

// AllQuestions requests the entire pool.
var AllQuestions = Count{All: true}

// N requests a fixed number of questions.
func N(n int) Count {
	return Count{N: n}
}

// ParseCount parses "all" or a positive integer.
func ParseCount(value string) (Count, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "all" {
		return AllQuestions, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return Count{}, fmt.Errorf("%w: quiz size %q is neither \"all\" nor a number", ErrInvalidArgument, value)
	}
	count := N(n)
	if err := count.Validate(); err != nil {
		return Count{}, err
	}
	return count, nil
}

// Validate checks that a fixed count is at least one.
func (c Count) Validate() error {
	if !c.All && c.N < 1 {
		return fmt.Errorf("%w: quiz size must be >= 1, got %d", ErrInvalidArgument, c.N)
	}
	return nil
}

// Resolve returns the session length for a pool of the given size.
func (c Count) Resolve(poolSize int) int {
	if c.All {
		return poolSize
	}
	return c.N
}

// String renders the count the way ParseCount accepts it.
func (c Count) String() string {
	if c.All {
		return "all"
	}
	return strconv.Itoa(c.N)
}
