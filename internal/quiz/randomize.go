package quiz

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"quizrun/internal/question"
)

// SessionQuestion is a record prepared for presentation: its options in
// shuffled display order and the correct answers remapped to that order.
type SessionQuestion struct {
	question.Record
	PresentedOptions []string `json:"presented_options"`
	PresentedAnswers []int    `json:"presented_answers"`
}

// CorrectTexts returns the presented option texts that are correct.
func (q SessionQuestion) CorrectTexts() []string {
	return q.OptionTexts(q.PresentedAnswers)
}

// OptionTexts maps presented positions to option text, skipping invalid ones.
func (q SessionQuestion) OptionTexts(positions []int) []string {
	texts := make([]string, 0, len(positions))
	for _, position := range positions {
		if position >= 0 && position < len(q.PresentedOptions) {
			texts = append(texts, q.PresentedOptions[position])
		}
	}
	return texts
}

// IsCorrect reports whether a selection matches the presented answers exactly.
// Order and duplicates in selected are ignored.
func (q SessionQuestion) IsCorrect(selected []int) bool {
	return slices.Equal(normalizeSelection(selected), q.PresentedAnswers)
}

// Randomize shuffles a record's options and remaps its answer indices. The
// input record is not modified.
func Randomize(record question.Record, rng *rand.Rand) (SessionQuestion, error) {
	if len(record.Answers) == 0 {
		return SessionQuestion{}, fmt.Errorf("%w: question %q has no answers", ErrInvalidArgument, record.ID)
	}
	rng = orDefault(rng)

	clone := record.Clone()
	order := rng.Perm(len(clone.Options))
	presented := make([]string, len(order))
	positionOf := make([]int, len(order))
	for k, original := range order {
		presented[k] = clone.Options[original]
		positionOf[original] = k
	}

	answers := make([]int, 0, len(clone.Answers))
	for _, answer := range clone.Answers {
		if answer < 0 || answer >= len(clone.Options) {
			return SessionQuestion{}, fmt.Errorf("%w: question %q answer %d out of range for %d options", ErrInvalidArgument, record.ID, answer, len(clone.Options))
		}
		answers = append(answers, positionOf[answer])
	}

	return SessionQuestion{
		Record:           clone,
		PresentedOptions: presented,
		PresentedAnswers: normalizeSelection(answers),
	}, nil
}

// normalizeSelection returns a sorted, duplicate-free copy.
func normalizeSelection(values []int) []int {
	out := slices.Clone(values)
	if out == nil {
		out = []int{}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
