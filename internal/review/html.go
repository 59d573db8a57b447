package review

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"quizrun/internal/quiz"
)

// Meta describes the session a review belongs to.
type Meta struct {
	SessionID  string
	PoolSource string
	GradedAt   time.Time
}

func answeredText(report quiz.Report) string {
	return fmt.Sprintf("%d / %d", report.Answered, report.Total)
}

func scoreText(report quiz.Report) string {
	return fmt.Sprintf("%d / %d (%d%%)", report.Correct, report.Answered, report.Percentage)
}

func rowClass(result quiz.Result) string {
	if result.Correct {
		return "correct"
	}
	return "incorrect"
}

func questionLabel(result quiz.Result) string {
	return fmt.Sprintf("Q%d", result.Index+1)
}

func joinTexts(values []string) string {
	return strings.Join(values, ", ")
}

func metaLine(meta Meta) string {
	parts := make([]string, 0, 3)
	if meta.SessionID != "" {
		parts = append(parts, "Session "+meta.SessionID)
	}
	if meta.PoolSource != "" {
		parts = append(parts, "Pool: "+meta.PoolSource)
	}
	if !meta.GradedAt.IsZero() {
		parts = append(parts, "Graded "+meta.GradedAt.UTC().Format(time.RFC3339))
	}
	return strings.Join(parts, " | ")
}

// RenderHTML renders the review page into a string.
func RenderHTML(ctx context.Context, report quiz.Report, meta Meta) (string, error) {
	var builder strings.Builder
	if err := Page(report, meta).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// WriteHTMLFile renders the review page to path, creating parent directories.
func WriteHTMLFile(ctx context.Context, path string, report quiz.Report, meta Meta) error {
	html, err := RenderHTML(ctx, report, meta)
	if err != nil {
		return fmt.Errorf("render review: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create review dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write review: %w", err)
	}
	return nil
}
