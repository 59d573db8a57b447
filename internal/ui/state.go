package ui

import (
	"slices"

	"quizrun/internal/quiz"
)

// Screen identifies which panel is active.
type Screen int

const (
	ScreenQuestion Screen = iota
	ScreenReview
)

// SessionFactory builds a fresh session of the requested length.
type SessionFactory func(count quiz.Count) (*quiz.Session, error)

// DefaultSizes are the quiz lengths offered when changing length mid-run.
var DefaultSizes = []quiz.Count{quiz.N(5), quiz.N(10), quiz.N(20), quiz.AllQuestions}

// State captures everything a front end needs to draw the quiz.
type State struct {
	Session *quiz.Session
	// Selected holds the pending, not yet saved, positions for the current question.
	Selected []int
	Cursor   int
	Screen   Screen
	Report   quiz.Report
	Graded   bool
	Toast    string
	Err      string
	Sizes    []quiz.Count
	// Pending is set while a restart waits for a yes or no.
	Pending *Pending
}

// Pending is a restart that discards saved answers once confirmed.
type Pending struct {
	Prompt string
	Count  quiz.Count
}

// NewState wraps a session, restoring any saved selection for its current question.
func NewState(session *quiz.Session, sizes []quiz.Count) State {
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	state := State{Session: session, Sizes: slices.Clone(sizes)}
	return loadSelection(state)
}

// IsSelected reports whether a presented option is part of the pending selection.
func (s State) IsSelected(option int) bool {
	return slices.Contains(s.Selected, option)
}

// Current returns the question on screen.
func (s State) Current() quiz.SessionQuestion {
	return s.Session.Current()
}

// loadSelection copies the saved answer of the current question into the pending selection.
func loadSelection(state State) State {
	state.Selected = state.Session.Answer(state.Session.Index())
	state.Cursor = 0
	if len(state.Selected) > 0 {
		state.Cursor = state.Selected[0]
	}
	return state
}
