package poolserver

import (
	"fmt"

	"quizrun/internal/question"
)

type domainCount struct {
	Domain string
	Count  int
}

type poolSummary struct {
	Source  string
	Total   int
	Multi   int
	Domains []domainCount
}

func summarize(pool question.Pool, source string) poolSummary {
	counts := map[string]int{}
	summary := poolSummary{Source: source, Total: len(pool)}
	for _, record := range pool {
		counts[record.Domain]++
		if record.Multi {
			summary.Multi++
		}
	}
	for _, domain := range pool.Domains() {
		summary.Domains = append(summary.Domains, domainCount{Domain: domain, Count: counts[domain]})
	}
	if n := counts[""]; n > 0 {
		summary.Domains = append(summary.Domains, domainCount{Domain: "(none)", Count: n})
	}
	return summary
}

func (s poolSummary) totals() string {
	return fmt.Sprintf("%d questions, %d multi-select.", s.Total, s.Multi)
}
