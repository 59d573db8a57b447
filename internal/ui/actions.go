package ui

// ActionKind enumerates the user intents a quiz front end can raise.
type ActionKind string

const (
	ActionCursorUp   ActionKind = "cursor_up"
	ActionCursorDown ActionKind = "cursor_down"
	ActionToggle     ActionKind = "toggle"
	ActionChoose     ActionKind = "choose"
	ActionSelect     ActionKind = "select"
	ActionSave       ActionKind = "save"
	ActionNext       ActionKind = "next"
	ActionPrev       ActionKind = "prev"
	ActionGoto       ActionKind = "goto"
	ActionFinish     ActionKind = "finish"
	ActionResume     ActionKind = "resume"
	ActionRestart    ActionKind = "restart"
	ActionResize     ActionKind = "resize"
	ActionConfirm    ActionKind = "confirm"
	ActionCancel     ActionKind = "cancel"
)

// Action is a single user intent. Option is the zero-based presented option
// for ActionChoose and the zero-based question index for ActionGoto, Options replaces the pending selection for ActionSelect,
// and Delta is the size step for ActionResize.
type Action struct {
	Kind    ActionKind
	Option  int
	Options []int
	Delta   int
}

// Choose builds an action that picks a presented option.
func Choose(option int) Action {
	return Action{Kind: ActionChoose, Option: option}
}

// Select builds an action that replaces the pending selection.
func Select(options ...int) Action {
	return Action{Kind: ActionSelect, Options: options}
}

// Resize builds an action that steps through the configured quiz lengths.
func Resize(delta int) Action {
	return Action{Kind: ActionResize, Delta: delta}
}

// Goto builds an action that jumps to a question by zero-based index.
func Goto(index int) Action {
	return Action{Kind: ActionGoto, Option: index}
}
