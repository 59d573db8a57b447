package live

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizrun/internal/quiz"
	"quizrun/internal/ui"
)

// Model renders the interactive quiz using Bubble Tea.
type Model struct {
	state        ui.State
	factory      ui.SessionFactory
	keys         keyMap
	help         help.Model
	table        table.Model
	toastTimeout time.Duration
	toastSeq     int
	width        int
	noColor      bool
	quitting     bool
}

// Options configures the live UI model.
type Options struct {
	NoColor      bool
	Sizes        []quiz.Count
	ToastTimeout time.Duration
}

// NewModel constructs a live UI model for a session. The factory builds
// replacement sessions on restart and length changes.
func NewModel(session *quiz.Session, factory ui.SessionFactory, opts Options) Model {
	toastTimeout := opts.ToastTimeout
	if toastTimeout <= 0 {
		toastTimeout = 1500 * time.Millisecond
	}
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(8),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		state:        ui.NewState(session, opts.Sizes),
		factory:      factory,
		keys:         defaultKeyMap(),
		help:         help.New(),
		table:        t,
		toastTimeout: toastTimeout,
		noColor:      opts.NoColor,
	}
}

// State returns the current quiz state.
func (m Model) State() ui.State {
	return m.state
}

// Init has no startup work.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update consumes key presses, resizes, and toast expiry.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.help.Width = typed.Width
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(typed.Height-10, 3))
		m.table.SetColumns(columnsForWidth(typed.Width))
		return m, nil
	case clearToastMsg:
		if int(typed) == m.toastSeq {
			m.state.Toast = ""
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

// handleKey maps a key press to a quiz action.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if m.state.Pending != nil {
		return m.handlePromptKey(msg)
	}
	if m.state.Screen == ui.ScreenReview {
		return m.handleReviewKey(msg)
	}
	if option, ok := optionNumber(msg); ok {
		return m.apply(ui.Choose(option))
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		return m.apply(ui.Action{Kind: ui.ActionCursorUp})
	case key.Matches(msg, m.keys.Down):
		return m.apply(ui.Action{Kind: ui.ActionCursorDown})
	case key.Matches(msg, m.keys.Toggle):
		return m.apply(ui.Action{Kind: ui.ActionToggle})
	case key.Matches(msg, m.keys.Save):
		return m.apply(ui.Action{Kind: ui.ActionSave})
	case key.Matches(msg, m.keys.Next):
		return m.apply(ui.Action{Kind: ui.ActionNext})
	case key.Matches(msg, m.keys.Prev):
		return m.apply(ui.Action{Kind: ui.ActionPrev})
	case key.Matches(msg, m.keys.Finish):
		return m.apply(ui.Action{Kind: ui.ActionFinish})
	case key.Matches(msg, m.keys.Restart):
		return m.apply(ui.Action{Kind: ui.ActionRestart})
	case key.Matches(msg, m.keys.Longer):
		return m.apply(ui.Resize(1))
	case key.Matches(msg, m.keys.Shorter):
		return m.apply(ui.Resize(-1))
	}
	return m, nil
}

// handlePromptKey answers an open restart prompt.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		return m.apply(ui.Action{Kind: ui.ActionConfirm})
	case key.Matches(msg, m.keys.No):
		return m.apply(ui.Action{Kind: ui.ActionCancel})
	}
	return m, nil
}

// handleReviewKey routes keys while the review panel is shown.
func (m Model) handleReviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m.apply(ui.Action{Kind: ui.ActionResume})
	case key.Matches(msg, m.keys.Restart):
		return m.apply(ui.Action{Kind: ui.ActionRestart})
	case key.Matches(msg, m.keys.Longer):
		return m.apply(ui.Resize(1))
	case key.Matches(msg, m.keys.Shorter):
		return m.apply(ui.Resize(-1))
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// apply reduces an action and schedules expiry of any toast it leaves behind.
func (m Model) apply(action ui.Action) (tea.Model, tea.Cmd) {
	m.state = ui.Reduce(m.state, action, m.factory)
	if action.Kind == ui.ActionFinish && m.state.Screen == ui.ScreenReview {
		m.table.SetRows(rowsForReport(m.state.Report))
		m.table.GotoTop()
	}
	if m.state.Toast == "" {
		return m, nil
	}
	m.toastSeq++
	return m, clearToastAfter(m.toastTimeout, m.toastSeq)
}

// View renders the active panel.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var body string
	if m.state.Screen == ui.ScreenReview {
		body = m.reviewView()
	} else {
		body = m.questionView()
	}
	footer := m.help.View(m.keys)
	if m.state.Pending != nil {
		footer = m.help.ShortHelpView([]key.Binding{m.keys.Yes, m.keys.No})
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, "", footer)
}

// clearToastMsg expires the toast with the matching sequence number.
type clearToastMsg int

func clearToastAfter(timeout time.Duration, seq int) tea.Cmd {
	return tea.Tick(timeout, func(time.Time) tea.Msg { return clearToastMsg(seq) })
}

// optionNumber maps keys 1-9 to zero-based option positions.
func optionNumber(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}
