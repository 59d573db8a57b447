package live

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"quizrun/internal/quiz"
	"quizrun/internal/ui"
)

// Run shows the quiz on the alternate screen until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, session *quiz.Session, factory ui.SessionFactory, stdin io.Reader, stdout io.Writer, opts Options) (ui.Outcome, error) {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	model := NewModel(session, factory, opts)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(stdin),
		tea.WithOutput(stdout),
		tea.WithAltScreen(),
	)
	final, err := program.Run()
	if err != nil {
		return ui.Outcome{Session: session}, fmt.Errorf("live ui: %w", err)
	}
	return outcomeOf(final, session), nil
}

func outcomeOf(final tea.Model, fallback *quiz.Session) ui.Outcome {
	model, ok := final.(Model)
	if !ok {
		return ui.Outcome{Session: fallback}
	}
	return ui.OutcomeOf(model.State())
}
