package quiz

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"

	"quizrun/internal/question"
)

// Session is one run of the quiz: its sampled questions, the user's saved
// selections, and the question currently on screen.
type Session struct {
	ID        string
	Size      Count
	StartedAt time.Time
	Questions []SessionQuestion

	answers [][]int
	current int
}

// NewSession samples the pool and prepares every question for presentation.
func NewSession(pool question.Pool, count Count, rng *rand.Rand) (*Session, error) {
	rng = orDefault(rng)
	sampled, err := Sample(pool, count, rng)
	if err != nil {
		return nil, err
	}
	questions := make([]SessionQuestion, 0, len(sampled))
	for _, record := range sampled {
		prepared, err := Randomize(record, rng)
		if err != nil {
			return nil, err
		}
		questions = append(questions, prepared)
	}
	answers := make([][]int, len(questions))
	for i := range answers {
		answers[i] = []int{}
	}
	return &Session{
		ID:        uuid.NewString(),
		Size:      count,
		StartedAt: time.Now(),
		Questions: questions,
		answers:   answers,
	}, nil
}

// Len returns the number of questions in the session.
func (s *Session) Len() int {
	return len(s.Questions)
}

// Index returns the zero-based position of the current question.
func (s *Session) Index() int {
	return s.current
}

// Current returns the question on screen.
func (s *Session) Current() SessionQuestion {
	return s.Questions[s.current]
}

// HasPrev reports whether Prev would move.
func (s *Session) HasPrev() bool {
	return s.current > 0
}

// HasNext reports whether Next would move.
func (s *Session) HasNext() bool {
	return s.current < len(s.Questions)-1
}

// Next advances to the following question; it stays put on the last one.
func (s *Session) Next() bool {
	if !s.HasNext() {
		return false
	}
	s.current++
	return true
}

// Prev moves back one question; it stays put on the first one.
func (s *Session) Prev() bool {
	if !s.HasPrev() {
		return false
	}
	s.current--
	return true
}

// Goto jumps to a question by index.
func (s *Session) Goto(index int) error {
	if index < 0 || index >= len(s.Questions) {
		return fmt.Errorf("%w: question index %d out of range", ErrInvalidArgument, index)
	}
	s.current = index
	return nil
}

// Answer returns a copy of the saved selection for a question.
func (s *Session) Answer(index int) []int {
	if index < 0 || index >= len(s.answers) {
		return nil
	}
	return slices.Clone(s.answers[index])
}

// Save overwrites the saved selection for a question. Positions refer to
// PresentedOptions; they are stored sorted and without duplicates.
func (s *Session) Save(index int, selected []int) error {
	if index < 0 || index >= len(s.Questions) {
		return fmt.Errorf("%w: question index %d out of range", ErrInvalidArgument, index)
	}
	q := s.Questions[index]
	normalized := normalizeSelection(selected)
	for _, position := range normalized {
		if position < 0 || position >= len(q.PresentedOptions) {
			return fmt.Errorf("%w: option %d out of range for Q%d", ErrInvalidArgument, position+1, index+1)
		}
	}
	if !q.Multi && len(normalized) > 1 {
		return fmt.Errorf("%w: Q%d accepts a single option", ErrInvalidArgument, index+1)
	}
	s.answers[index] = normalized
	return nil
}

// SaveCurrent saves the selection for the question on screen.
func (s *Session) SaveCurrent(selected []int) error {
	return s.Save(s.current, selected)
}

// AnsweredCount returns how many questions have a non-empty selection.
func (s *Session) AnsweredCount() int {
	count := 0
	for _, answer := range s.answers {
		if len(answer) > 0 {
			count++
		}
	}
	return count
}

// Entries pairs every question with its saved selection, in session order.
func (s *Session) Entries() []Entry {
	entries := make([]Entry, len(s.Questions))
	for i, q := range s.Questions {
		entries[i] = Entry{Question: q, Answer: slices.Clone(s.answers[i])}
	}
	return entries
}

// Grade scores the session's answered questions.
func (s *Session) Grade() Report {
	return Grade(s.Entries())
}
