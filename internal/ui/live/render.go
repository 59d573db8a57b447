package live

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// questionView renders the progress line, the question, and its options.
func (m Model) questionView() string {
	state := m.state
	session := state.Session
	q := state.Current()

	progress := stylize(fmt.Sprintf("Question %d / %d", session.Index()+1, session.Len()), m.noColor, lipgloss.Color("33"))
	header := fmt.Sprintf("Q%d", session.Index()+1)
	if q.Domain != "" {
		header += " • " + q.Domain
	}
	if q.Multi {
		header += " • select all that apply"
	}
	lines := []string{
		progress + stylize(fmt.Sprintf("   answered %d", session.AnsweredCount()), m.noColor, lipgloss.Color("242")),
		stylize(header, m.noColor, lipgloss.Color("240")),
		"",
		m.wrap(q.Question),
		"",
	}
	for i, option := range q.PresentedOptions {
		lines = append(lines, m.optionLine(i, option, q.Multi))
	}
	lines = append(lines, "", m.statusLine())
	return strings.Join(lines, "\n")
}

// optionLine renders one presented option with its marker and cursor.
func (m Model) optionLine(index int, text string, multi bool) string {
	cursor := "  "
	if index == m.state.Cursor {
		cursor = stylize("> ", m.noColor, lipgloss.Color("212"))
	}
	marker := "( )"
	if multi {
		marker = "[ ]"
	}
	if m.state.IsSelected(index) {
		marker = "(•)"
		if multi {
			marker = "[x]"
		}
		marker = stylize(marker, m.noColor, lipgloss.Color("42"))
	}
	return fmt.Sprintf("%s%s %d. %s", cursor, marker, index+1, text)
}

// statusLine renders an open prompt, the latest error, or a toast.
func (m Model) statusLine() string {
	if pending := m.state.Pending; pending != nil {
		return stylize(pending.Prompt+" [y/N]", m.noColor, lipgloss.Color("214"))
	}
	if m.state.Err != "" {
		return stylize("Error: "+m.state.Err, m.noColor, lipgloss.Color("196"))
	}
	return stylize(m.state.Toast, m.noColor, lipgloss.Color("42"))
}

// reviewView renders the score summary, the results table, and the
// explanation for the highlighted row.
func (m Model) reviewView() string {
	report := m.state.Report
	summary := stylize(report.Summary(), m.noColor, lipgloss.Color("33"))
	if !report.Scored {
		return strings.Join([]string{
			stylize("Review", m.noColor, lipgloss.Color("240")),
			summary,
			"",
			"Press b to return to the questions or r to restart.",
			m.statusLine(),
		}, "\n")
	}
	parts := []string{
		stylize("Review", m.noColor, lipgloss.Color("240")),
		summary,
		m.table.View(),
	}
	if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(report.Results) {
		result := report.Results[cursor]
		parts = append(parts,
			m.wrap(result.Question.Question),
			"Your answer: "+strings.Join(result.SelectedText, ", "),
			"Correct:     "+stylize(strings.Join(result.CorrectText, ", "), m.noColor, lipgloss.Color("42")),
			m.wrap("Explanation: "+result.Explanation),
		)
	}
	parts = append(parts, m.statusLine())
	return strings.Join(parts, "\n")
}

// wrap fits text to the terminal width once it is known.
func (m Model) wrap(text string) string {
	if m.width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(m.width).Render(text)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor || text == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
