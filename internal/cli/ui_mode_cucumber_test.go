//go:build cucumber

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cucumber/godog"

	"quizrun/internal/question"
	"quizrun/internal/quiz"
	"quizrun/internal/ui/live"
)

// TestLiveUIScenarios runs the UI mode feature scenarios.
func TestLiveUIScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "features", "ui", "mode.feature")
	suite := godog.TestSuite{
		Name:                "ui-mode",
		ScenarioInitializer: InitializeLiveUIScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeLiveUIScenario wires steps for UI mode scenarios.
func InitializeLiveUIScenario(ctx *godog.ScenarioContext) {
	state := &liveUIScenarioState{}
	orig := isTerminal
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		isTerminal = func(any) bool { return state.isTTY }
		return ctx, nil
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		isTerminal = orig
		return ctx, nil
	})

	ctx.Step(`^an interactive terminal$`, state.givenTTY)
	ctx.Step(`^input and output are redirected$`, state.givenNonTTY)
	ctx.Step(`^a quiz of (\d+) questions$`, state.givenQuiz)
	ctx.Step(`^I run "([^"]+)"$`, state.whenIRun)
	ctx.Step(`^I select option (\d+) and save$`, state.whenISelectAndSave)
	ctx.Step(`^a live UI is shown$`, state.thenLiveUIShown)
	ctx.Step(`^the UI shows the progress line "([^"]+)"$`, state.thenUIShows)
	ctx.Step(`^the UI shows "([^"]+)"$`, state.thenUIShows)
	ctx.Step(`^the output uses plain prompts$`, state.thenPlainOutput)
}

type liveUIScenarioState struct {
	isTTY    bool
	choice   uiChoice
	model    live.Model
	hasModel bool
}

// reset clears scenario state.
func (s *liveUIScenarioState) reset() {
	s.isTTY = false
	s.choice = uiChoice{}
	s.model = live.Model{}
	s.hasModel = false
}

// givenTTY marks stdin and stdout as terminals.
func (s *liveUIScenarioState) givenTTY() error {
	s.isTTY = true
	return nil
}

// givenNonTTY marks stdin and stdout as redirected.
func (s *liveUIScenarioState) givenNonTTY() error {
	s.isTTY = false
	return nil
}

// givenQuiz builds a live model over a session of the built-in pool.
func (s *liveUIScenarioState) givenQuiz(count int) error {
	session, err := quiz.NewSession(question.Builtin(), quiz.N(count), quiz.NewRand(21))
	if err != nil {
		return err
	}
	s.model = live.NewModel(session, nil, live.Options{NoColor: true})
	s.hasModel = true
	return nil
}

// whenIRun evaluates the UI mode decision for the scenario.
func (s *liveUIScenarioState) whenIRun(_ string) error {
	choice, err := chooseUI(uiRequest{mode: "auto"}, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	s.choice = choice
	return nil
}

// whenISelectAndSave presses an option number then Enter.
func (s *liveUIScenarioState) whenISelectAndSave(option int) error {
	if !s.hasModel {
		return fmt.Errorf("quiz not initialized")
	}
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune(fmt.Sprint(option))},
		{Type: tea.KeyEnter},
	} {
		updated, _ := s.model.Update(msg)
		model, ok := updated.(live.Model)
		if !ok {
			return fmt.Errorf("unexpected model type %T", updated)
		}
		s.model = model
	}
	return nil
}

// thenLiveUIShown asserts the live UI is enabled.
func (s *liveUIScenarioState) thenLiveUIShown() error {
	if !s.choice.live {
		return fmt.Errorf("expected live UI to be enabled")
	}
	return nil
}

// thenUIShows asserts the rendered view contains text.
func (s *liveUIScenarioState) thenUIShows(text string) error {
	if !s.hasModel {
		return fmt.Errorf("quiz not initialized")
	}
	if view := s.model.View(); !strings.Contains(view, text) {
		return fmt.Errorf("expected %q in view:\n%s", text, view)
	}
	return nil
}

// thenPlainOutput asserts the live UI is disabled.
func (s *liveUIScenarioState) thenPlainOutput() error {
	if s.choice.live {
		return fmt.Errorf("expected plain output")
	}
	return nil
}
