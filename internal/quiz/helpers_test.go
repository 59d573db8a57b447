package quiz

import (
	"fmt"
	"testing"

	"quizrun/internal/question"
)

// makePool builds a pool of n single-answer questions with ids p1..pn.
func makePool(t *testing.T, n int) question.Pool {
	t.Helper()
	pool := make(question.Pool, n)
	for i := range pool {
		pool[i] = question.Record{
			ID:       fmt.Sprintf("p%d", i+1),
			Domain:   "Testing",
			Question: fmt.Sprintf("Question %d", i+1),
			Options:  []string{"A", "B", "C", "D"},
			Answers:  []int{i % 4},
		}
	}
	return pool
}

// poolIDs indexes pool records by id.
func poolIDs(pool question.Pool) map[string]struct{} {
	ids := make(map[string]struct{}, len(pool))
	for _, record := range pool {
		ids[record.ID] = struct{}{}
	}
	return ids
}

// sessionQuestion builds a presented question with a fixed option order.
func sessionQuestion(id string, multi bool, options []string, answers []int) SessionQuestion {
	return SessionQuestion{
		Record: question.Record{
			ID:       id,
			Domain:   "Networking",
			Multi:    multi,
			Question: "Question " + id,
			Options:  options,
			Answers:  answers,
		},
		PresentedOptions: options,
		PresentedAnswers: answers,
	}
}
