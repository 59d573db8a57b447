package question

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyPool indicates a payload decoded to zero questions.
var ErrEmptyPool = errors.New("question pool is empty")

// Issue captures a validation problem in a question pool.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question pool validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Normalize trims text fields, fills in missing ids, and checks every record.
// Records that cannot be asked are skipped and records with fixable problems
// are repaired; both are reported as issues. The error is non-nil only when
// no usable record remains. The input pool is not modified.
func Normalize(pool Pool) (Pool, []Issue, error) {
	if len(pool) == 0 {
		return nil, nil, ErrEmptyPool
	}
	warnings := &issueCollector{}
	out := make(Pool, 0, len(pool))
	seenIDs := map[string]struct{}{}
	for i, record := range pool.Clone() {
		prefix := fmt.Sprintf("questions[%d]", i)
		record = trimRecord(record)
		if problems := recordProblems(record); len(problems) > 0 {
			warnings.add(prefix, "skipped: "+strings.Join(problems, "; "))
			continue
		}

		if record.ID == "" {
			record.ID = fmt.Sprintf("q%d", i+1)
		}
		if _, exists := seenIDs[record.ID]; exists {
			renamed := uniqueID(record.ID, i, seenIDs)
			warnings.add(prefix+".id", fmt.Sprintf("duplicate id %q renamed to %q", record.ID, renamed))
			record.ID = renamed
		}
		seenIDs[record.ID] = struct{}{}

		if answers := dedupAnswers(record.Answers); len(answers) != len(record.Answers) {
			warnings.add(prefix+".answers", "duplicate indexes removed")
			record.Answers = answers
		}
		if !record.Multi && len(record.Answers) > 1 {
			warnings.add(prefix+".multi", fmt.Sprintf("set to true: %d answers are correct", len(record.Answers)))
			record.Multi = true
		}
		out = append(out, record)
	}

	if len(out) == 0 {
		return nil, warnings.issues, warnings.result()
	}
	return out, warnings.issues, nil
}

func trimRecord(record Record) Record {
	record.ID = strings.TrimSpace(record.ID)
	record.Domain = strings.TrimSpace(record.Domain)
	record.Explanation = strings.TrimSpace(record.Explanation)
	record.Question = strings.TrimSpace(record.Question)
	record.Options = trimStrings(record.Options)
	return record
}

// recordProblems lists what keeps a record from being asked.
func recordProblems(record Record) []string {
	var problems []string
	if record.Question == "" {
		problems = append(problems, "question is required")
	}
	if len(record.Options) == 0 {
		problems = append(problems, "options must include at least one entry")
	}
	for index, option := range record.Options {
		if option == "" {
			problems = append(problems, fmt.Sprintf("options[%d] is required", index))
		}
	}
	if len(record.Answers) == 0 {
		problems = append(problems, "answers must include at least one entry")
	}
	for index, answer := range record.Answers {
		if answer < 0 || answer >= len(record.Options) {
			problems = append(problems, fmt.Sprintf("answers[%d] index %d out of range for %d options", index, answer, len(record.Options)))
		}
	}
	return problems
}

func dedupAnswers(answers []int) []int {
	seen := make(map[int]struct{}, len(answers))
	out := make([]int, 0, len(answers))
	for _, answer := range answers {
		if _, ok := seen[answer]; ok {
			continue
		}
		seen[answer] = struct{}{}
		out = append(out, answer)
	}
	return out
}

func uniqueID(id string, index int, taken map[string]struct{}) string {
	candidate := fmt.Sprintf("%s-%d", id, index+1)
	for n := 2; ; n++ {
		if _, exists := taken[candidate]; !exists {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d-%d", id, index+1, n)
	}
}

func trimStrings(values []string) []string {
	trimmed := make([]string, 0, len(values))
	for _, value := range values {
		trimmed = append(trimmed, strings.TrimSpace(value))
	}
	return trimmed
}
