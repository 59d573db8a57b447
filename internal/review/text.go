package review

import (
	"fmt"
	"io"
	"strings"

	"quizrun/internal/quiz"
)

// WriteText writes the review as plain text, one block per answered question.
func WriteText(w io.Writer, report quiz.Report) error {
	var b strings.Builder
	b.WriteString(report.Summary())
	b.WriteString("\n")
	if !report.Scored {
		b.WriteString("No answered questions to review.\n")
	}
	for _, result := range report.Results {
		mark := "✗"
		if result.Correct {
			mark = "✓"
		}
		q := result.Question
		b.WriteString("\n")
		if q.Domain != "" {
			fmt.Fprintf(&b, "%s Q%d [%s] %s\n", mark, result.Index+1, q.Domain, q.Question)
		} else {
			fmt.Fprintf(&b, "%s Q%d %s\n", mark, result.Index+1, q.Question)
		}
		fmt.Fprintf(&b, "  Your answer: %s\n", strings.Join(result.SelectedText, ", "))
		fmt.Fprintf(&b, "  Correct:     %s\n", strings.Join(result.CorrectText, ", "))
		fmt.Fprintf(&b, "  Explanation: %s\n", result.Explanation)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
