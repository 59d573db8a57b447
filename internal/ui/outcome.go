package ui

import "quizrun/internal/quiz"

// Outcome is the state of the quiz when the user left it.
type Outcome struct {
	Session *quiz.Session
	Report  quiz.Report
	Graded  bool
}

// OutcomeOf summarizes a final state.
func OutcomeOf(state State) Outcome {
	return Outcome{Session: state.Session, Report: state.Report, Graded: state.Graded}
}
