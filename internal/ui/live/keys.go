package live

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings shown in the help footer.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Save    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Finish  key.Binding
	Back    key.Binding
	Restart key.Binding
	Longer  key.Binding
	Shorter key.Binding
	Yes     key.Binding
	No      key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "select")),
		Save:    key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "save")),
		Next:    key.NewBinding(key.WithKeys("n", "N", "right"), key.WithHelp("n", "next")),
		Prev:    key.NewBinding(key.WithKeys("p", "P", "left"), key.WithHelp("p", "prev")),
		Finish:  key.NewBinding(key.WithKeys("f", "F"), key.WithHelp("f", "finish")),
		Back:    key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b", "back to questions")),
		Restart: key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "restart")),
		Longer:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "quiz length")),
		Shorter: key.NewBinding(key.WithKeys("-", "_")),
		Yes:     key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
		No:      key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "keep quiz")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Save, k.Next, k.Prev, k.Finish, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Save},
		{k.Next, k.Prev, k.Finish, k.Back},
		{k.Restart, k.Longer, k.Help, k.Quit},
	}
}
