package live

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"quizrun/internal/quiz"
)

// defaultColumns returns the review table columns.
func defaultColumns() []table.Column {
	return columnsForWidth(100)
}

// columnsForWidth sizes the answer columns to the terminal width.
func columnsForWidth(width int) []table.Column {
	fixed := 4 + 18 + 9
	answer := max((width-fixed-8)/2, 12)
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Domain", Width: 18},
		{Title: "Result", Width: 9},
		{Title: "Your answer", Width: answer},
		{Title: "Correct", Width: answer},
	}
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = styles.Selected.UnsetForeground().UnsetBackground().Bold(true)
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// rowsForReport converts graded results into table rows.
func rowsForReport(report quiz.Report) []table.Row {
	rows := make([]table.Row, 0, len(report.Results))
	for _, result := range report.Results {
		status := "wrong"
		if result.Correct {
			status = "correct"
		}
		rows = append(rows, table.Row{
			"Q" + strconv.Itoa(result.Index+1),
			result.Question.Domain,
			status,
			strings.Join(result.SelectedText, ", "),
			strings.Join(result.CorrectText, ", "),
		})
	}
	return rows
}
