package ui

import (
	"fmt"
	"math"
	"slices"

	"quizrun/internal/quiz"
)

const (
	restartPrompt = "Restart the quiz? Your current progress will be lost."
	resizePrompt  = "Change quiz length to %s and restart? Your current progress will be lost."
)

// Reduce applies a user action to the quiz state. Navigation and finishing
// save the pending selection first. Restarts and length changes only ask for
// confirmation; the factory runs once ActionConfirm arrives.
func Reduce(state State, action Action, factory SessionFactory) State {
	if state.Session == nil {
		return state
	}
	state.Err = ""
	if state.Pending != nil {
		return resolvePending(state, action, factory)
	}
	switch action.Kind {
	case ActionCursorUp:
		state.Cursor = max(state.Cursor-1, 0)
	case ActionCursorDown:
		state.Cursor = min(state.Cursor+1, len(state.Current().PresentedOptions)-1)
	case ActionToggle:
		state = toggle(state, state.Cursor)
	case ActionChoose:
		if action.Option < 0 || action.Option >= len(state.Current().PresentedOptions) {
			state.Err = fmt.Sprintf("no option %d", action.Option+1)
			return state
		}
		state.Cursor = action.Option
		state = toggle(state, action.Option)
	case ActionSelect:
		state = replaceSelection(state, action.Options)
	case ActionSave:
		state = save(state)
	case ActionNext:
		state = save(state)
		if state.Err == "" && state.Session.Next() {
			state = loadSelection(state)
		}
	case ActionPrev:
		state = save(state)
		if state.Err == "" && state.Session.Prev() {
			state = loadSelection(state)
		}
	case ActionGoto:
		state = save(state)
		if state.Err != "" {
			return state
		}
		if err := state.Session.Goto(action.Option); err != nil {
			state.Err = fmt.Sprintf("no question %d", action.Option+1)
			return state
		}
		state = loadSelection(state)
	case ActionFinish:
		state = save(state)
		if state.Err != "" {
			return state
		}
		state.Report = state.Session.Grade()
		state.Graded = true
		state.Screen = ScreenReview
		state.Toast = ""
	case ActionResume:
		state.Screen = ScreenQuestion
	case ActionRestart:
		state = askRestart(state, state.Session.Size, restartPrompt, factory)
	case ActionResize:
		size := stepSize(state.Sizes, state.Session.Size, action.Delta)
		if size == state.Session.Size {
			state.Toast = fmt.Sprintf("Quiz length is already %s", size)
			return state
		}
		state = askRestart(state, size, fmt.Sprintf(resizePrompt, size), factory)
	}
	return state
}

// askRestart parks a restart until the user answers its prompt.
func askRestart(state State, count quiz.Count, prompt string, factory SessionFactory) State {
	if factory == nil {
		state.Err = "restart is not available"
		return state
	}
	state.Pending = &Pending{Prompt: prompt, Count: count}
	state.Toast = ""
	return state
}

// resolvePending handles the answer to an open prompt. Other actions are
// ignored until the prompt is answered.
func resolvePending(state State, action Action, factory SessionFactory) State {
	pending := *state.Pending
	switch action.Kind {
	case ActionConfirm:
		state.Pending = nil
		return restart(state, pending.Count, factory)
	case ActionCancel:
		state.Pending = nil
		state.Toast = "Kept the current quiz"
	}
	return state
}

// toggle flips an option in the pending selection. Single-select questions
// behave like radio buttons.
func toggle(state State, option int) State {
	if !state.Current().Multi {
		state.Selected = []int{option}
		return state
	}
	selected := slices.Clone(state.Selected)
	if index := slices.Index(selected, option); index >= 0 {
		selected = slices.Delete(selected, index, index+1)
	} else {
		selected = append(selected, option)
		slices.Sort(selected)
	}
	state.Selected = selected
	return state
}

// replaceSelection swaps the pending selection for the given positions.
func replaceSelection(state State, options []int) State {
	q := state.Current()
	selected := slices.Clone(options)
	slices.Sort(selected)
	selected = slices.Compact(selected)
	for _, option := range selected {
		if option < 0 || option >= len(q.PresentedOptions) {
			state.Err = fmt.Sprintf("no option %d", option+1)
			return state
		}
	}
	if !q.Multi && len(selected) > 1 {
		state.Err = fmt.Sprintf("Q%d accepts a single option", state.Session.Index()+1)
		return state
	}
	if selected == nil {
		selected = []int{}
	}
	state.Selected = selected
	if len(selected) > 0 {
		state.Cursor = selected[0]
	}
	return state
}

func save(state State) State {
	if err := state.Session.SaveCurrent(state.Selected); err != nil {
		state.Err = err.Error()
		return state
	}
	state.Toast = fmt.Sprintf("Saved answer for Q%d", state.Session.Index()+1)
	return state
}

func restart(state State, count quiz.Count, factory SessionFactory) State {
	if factory == nil {
		state.Err = "restart is not available"
		return state
	}
	session, err := factory(count)
	if err != nil {
		state.Err = err.Error()
		return state
	}
	next := NewState(session, state.Sizes)
	next.Toast = fmt.Sprintf("Started a new quiz with %d questions", session.Len())
	return next
}

// stepSize moves through the size list relative to the current size. A size
// missing from the list steps to its nearest neighbour in that direction.
func stepSize(sizes []quiz.Count, current quiz.Count, delta int) quiz.Count {
	if len(sizes) == 0 || delta == 0 {
		return current
	}
	index := slices.Index(sizes, current)
	if index >= 0 {
		return sizes[min(max(index+delta, 0), len(sizes)-1)]
	}
	if delta > 0 {
		for _, size := range sizes {
			if rank(size) > rank(current) {
				return size
			}
		}
		return sizes[len(sizes)-1]
	}
	for i := len(sizes) - 1; i >= 0; i-- {
		if rank(sizes[i]) < rank(current) {
			return sizes[i]
		}
	}
	return sizes[0]
}

// rank orders counts with "all" above every fixed length.
func rank(count quiz.Count) int {
	if count.All {
		return math.MaxInt
	}
	return count.N
}
