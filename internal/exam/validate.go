package exam

import (
	"fmt"
	"strings"
)

// Issue captures one structural problem in an exam block.
type Issue struct {
	// Block is the 1-based index of the offending question block.
	Block   int
	Field   string
	Message string
}

// MalformedError reports one or more structural problems in exam markdown.
type MalformedError struct {
	Issues []Issue
}

// Error returns a readable message for a malformed exam.
func (err *MalformedError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("block %d: %s: %s", issue.Block, issue.Field, issue.Message))
	}
	return fmt.Sprintf("malformed exam: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(block int, field, message string) {
	collector.issues = append(collector.issues, Issue{Block: block, Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &MalformedError{Issues: collector.issues}
}

// validateQuestion checks a parsed block's invariants: choices present, no
// duplicate labels, a discoverable answer marker, and every correct label
// naming a parsed choice.
func validateQuestion(collector *issueCollector, block int, q Question) {
	if q.Text == "" {
		collector.add(block, "question", "is required")
	}
	if len(q.Choices) == 0 {
		collector.add(block, "choices", "must include at least one entry")
	}
	seenLabels := map[string]struct{}{}
	for _, choice := range q.Choices {
		if _, exists := seenLabels[choice.Label]; exists {
			collector.add(block, "choices", fmt.Sprintf("duplicate label %q", choice.Label))
			continue
		}
		seenLabels[choice.Label] = struct{}{}
	}
	if len(q.CorrectLabels) == 0 {
		collector.add(block, "answer", "no answer marker found")
		return
	}
	seenCorrect := map[string]struct{}{}
	for _, label := range q.CorrectLabels {
		if _, exists := seenCorrect[label]; exists {
			collector.add(block, "answer", fmt.Sprintf("duplicate correct label %q", label))
			continue
		}
		seenCorrect[label] = struct{}{}
		if !q.HasChoice(label) {
			collector.add(block, "answer", fmt.Sprintf("unknown choice label %q", label))
		}
	}
}
