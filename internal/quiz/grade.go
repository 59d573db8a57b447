package quiz

import (
	"fmt"
	"math"
	"strings"
)

// Entry pairs a session question with the user's saved selection.
type Entry struct {
	Question SessionQuestion
	Answer   []int
}

// Result is the graded outcome of one answered question.
type Result struct {
	Index        int
	Question     SessionQuestion
	Selected     []int
	Correct      bool
	SelectedText []string
	CorrectText  []string
	Explanation  string
}

// Report summarizes a graded session. Scored is false when nothing was
// answered; Percentage is meaningless in that case.
type Report struct {
	Total      int
	Answered   int
	Correct    int
	Percentage int
	Scored     bool
	Results    []Result
}

// Grade scores every entry with a non-empty answer. Unanswered questions are
// excluded rather than counted wrong.
func Grade(entries []Entry) Report {
	report := Report{Total: len(entries)}
	for index, entry := range entries {
		if len(entry.Answer) == 0 {
			continue
		}
		selected := normalizeSelection(entry.Answer)
		q := entry.Question
		result := Result{
			Index:        index,
			Question:     q,
			Selected:     selected,
			Correct:      q.IsCorrect(selected),
			SelectedText: q.OptionTexts(selected),
			CorrectText:  q.CorrectTexts(),
		}
		result.Explanation = explanationFor(result)
		report.Results = append(report.Results, result)
		report.Answered++
		if result.Correct {
			report.Correct++
		}
	}
	if report.Answered > 0 {
		report.Scored = true
		report.Percentage = int(math.Round(float64(report.Correct) / float64(report.Answered) * 100))
	}
	return report
}

// explanationFor prefers the record's explanation and otherwise builds a
// short rationale from the expected answers.
func explanationFor(result Result) string {
	if explanation := strings.TrimSpace(result.Question.Explanation); explanation != "" {
		return explanation
	}
	expected := strings.Join(result.CorrectText, ", ")
	if result.Correct {
		return fmt.Sprintf("Your selection matches the expected answer(s): %s.", expected)
	}
	domain := result.Question.Domain
	if domain == "" {
		domain = "topic"
	}
	return fmt.Sprintf("The expected answer(s): %s. Review the domain (%s) for details.", expected, domain)
}

// Summary renders the one-line score shown after grading.
func (r Report) Summary() string {
	if !r.Scored {
		return "No answers saved. Answer some questions before grading."
	}
	return fmt.Sprintf("Answered: %d / %d • Score: %d / %d (%d%%)", r.Answered, r.Total, r.Correct, r.Answered, r.Percentage)
}
