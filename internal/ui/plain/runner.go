// Package plain runs the quiz as a line-oriented prompt for terminals without
// a live UI and for scripted input.
package plain

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quizrun/internal/quiz"
	"quizrun/internal/review"
	"quizrun/internal/ui"
)

const commandHelp = "Commands: <numbers> select (e.g. 1 or 1,3), s/Enter save, n next, p prev, g <n> go to question, f finish, r restart, +/- length, q quit"

// Options configures the plain runner.
type Options struct {
	Sizes []quiz.Count
}

// Run prompts for one command per line until the user quits, input ends, or
// ctx is cancelled.
func Run(ctx context.Context, session *quiz.Session, factory ui.SessionFactory, stdin io.Reader, stdout io.Writer, opts Options) (ui.Outcome, error) {
	reader := bufio.NewReader(stdin)
	state := ui.NewState(session, opts.Sizes)
	fmt.Fprintln(stdout, commandHelp)
	redraw := true
	for {
		if err := ctx.Err(); err != nil {
			return ui.OutcomeOf(state), err
		}
		if redraw {
			if err := render(stdout, state); err != nil {
				return ui.OutcomeOf(state), err
			}
		}
		fmt.Fprint(stdout, "> ")
		line, readErr := ReadLine(reader)
		if readErr != nil && readErr != io.EOF {
			return ui.OutcomeOf(state), fmt.Errorf("read command: %w", readErr)
		}
		action, quit, ok := parseCommand(line, state.Screen)
		if quit || (readErr == io.EOF && strings.TrimSpace(line) == "") {
			fmt.Fprintln(stdout)
			return ui.OutcomeOf(state), nil
		}
		if !ok {
			fmt.Fprintln(stdout, commandHelp)
			redraw = false
			continue
		}
		before := state.Session.Index()
		state = ui.Reduce(state, action, factory)
		if state.Pending != nil {
			confirmed, err := Confirm(reader, stdout, state.Pending.Prompt, false)
			if err != nil {
				return ui.OutcomeOf(state), fmt.Errorf("read answer: %w", err)
			}
			answer := ui.Action{Kind: ui.ActionCancel}
			if confirmed {
				answer = ui.Action{Kind: ui.ActionConfirm}
			}
			state = ui.Reduce(state, answer, factory)
			action = answer
		}
		if state.Err != "" {
			fmt.Fprintf(stdout, "Error: %s\n", state.Err)
		} else if action.Kind == ui.ActionSelect {
			fmt.Fprintf(stdout, "Selected: %s\n", selectionText(state))
		} else if state.Toast != "" && action.Kind != ui.ActionFinish {
			fmt.Fprintln(stdout, state.Toast)
			state.Toast = ""
		}
		redraw = redrawAfter(action, before, state)
		if readErr == io.EOF {
			return ui.OutcomeOf(state), nil
		}
	}
}

// redrawAfter reports whether the screen changed enough to print it again.
func redrawAfter(action ui.Action, before int, state ui.State) bool {
	switch action.Kind {
	case ui.ActionNext, ui.ActionPrev, ui.ActionGoto:
		return state.Session.Index() != before
	case ui.ActionFinish, ui.ActionResume, ui.ActionConfirm:
		return state.Err == ""
	default:
		return false
	}
}

func selectionText(state ui.State) string {
	if len(state.Selected) == 0 {
		return "nothing"
	}
	return strings.Join(state.Current().OptionTexts(state.Selected), ", ")
}

// render prints the active screen.
func render(w io.Writer, state ui.State) error {
	if state.Screen == ui.ScreenReview {
		if err := review.WriteText(w, state.Report); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, "\nReview: b back to questions, r restart, +/- length, q quit")
		return err
	}
	session := state.Session
	q := state.Current()
	var b strings.Builder
	fmt.Fprintf(&b, "\nQuestion %d / %d\n", session.Index()+1, session.Len())
	header := fmt.Sprintf("Q%d", session.Index()+1)
	if q.Domain != "" {
		header += " • " + q.Domain
	}
	if q.Multi {
		header += " • select all that apply"
	}
	b.WriteString(header + "\n")
	b.WriteString(q.Question + "\n")
	for i, option := range q.PresentedOptions {
		marker := " "
		if state.IsSelected(i) {
			marker = "x"
		}
		fmt.Fprintf(&b, "  [%s] %d. %s\n", marker, i+1, option)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// parseCommand maps an input line to an action. quit is set for q; ok is
// false for unrecognized input.
func parseCommand(line string, screen ui.Screen) (action ui.Action, quit bool, ok bool) {
	command := strings.ToLower(strings.TrimSpace(line))
	switch command {
	case "q", "quit", "exit":
		return ui.Action{}, true, true
	case "+":
		return ui.Resize(1), false, true
	case "-":
		return ui.Resize(-1), false, true
	case "r", "restart":
		return ui.Action{Kind: ui.ActionRestart}, false, true
	}
	if screen == ui.ScreenReview {
		if command == "b" || command == "back" {
			return ui.Action{Kind: ui.ActionResume}, false, true
		}
		return ui.Action{}, false, false
	}
	switch command {
	case "", "s", "save":
		return ui.Action{Kind: ui.ActionSave}, false, true
	case "n", "next":
		return ui.Action{Kind: ui.ActionNext}, false, true
	case "p", "prev":
		return ui.Action{Kind: ui.ActionPrev}, false, true
	case "f", "finish":
		return ui.Action{Kind: ui.ActionFinish}, false, true
	case "c", "clear":
		return ui.Select(), false, true
	}
	if target, found := strings.CutPrefix(command, "g"); found {
		target = strings.TrimSpace(strings.TrimPrefix(target, "oto"))
		n, err := strconv.Atoi(target)
		if err != nil {
			return ui.Action{}, false, false
		}
		return ui.Goto(n - 1), false, true
	}
	options, ok := parseOptions(command)
	if !ok {
		return ui.Action{}, false, false
	}
	return ui.Select(options...), false, true
}

// parseOptions reads one-based option numbers separated by commas or spaces.
func parseOptions(value string) ([]int, bool) {
	fields := strings.FieldsFunc(value, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) == 0 {
		return nil, false
	}
	options := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, false
		}
		options = append(options, n-1)
	}
	return options, true
}
