package live

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mcq/internal/exam"
	"mcq/internal/quiz"
)

var (
	headerColor    = lipgloss.Color("33")
	promptColor    = lipgloss.Color("252")
	choiceColor    = lipgloss.Color("245")
	errorColor     = lipgloss.Color("203")
	correctColor   = lipgloss.Color("42")
	incorrectColor = lipgloss.Color("196")
)

// renderQuestion renders the prompt, choices, and the answer input.
func renderQuestion(q exam.Question, position, total int, inputView, errText string, noColor bool) string {
	lines := []string{
		stylize(fmt.Sprintf("Question %d of %d", position, total), noColor, headerColor),
		stylize(q.Text, noColor, promptColor),
		"",
	}
	for _, choice := range q.Choices {
		lines = append(lines, stylize(fmt.Sprintf("  %s. %s", choice.Label, choice.Text), noColor, choiceColor))
	}
	lines = append(lines, "", inputView)
	if errText != "" {
		lines = append(lines, stylize(errText+". Try again.", noColor, errorColor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

// renderFeedback renders per-question correctness and the running score.
func renderFeedback(outcome quiz.Outcome, noColor bool) string {
	var lines []string
	if outcome.Correct {
		lines = append(lines, stylize("Correct!", noColor, correctColor))
	} else {
		parts := make([]string, 0, len(outcome.CorrectChoices))
		for _, choice := range outcome.CorrectChoices {
			parts = append(parts, fmt.Sprintf("%s. %s", choice.Label, choice.Text))
		}
		lines = append(lines,
			stylize("Incorrect.", noColor, incorrectColor),
			"Correct answer: "+strings.Join(parts, ", "))
	}
	lines = append(lines,
		fmt.Sprintf("Score: %d/%d", outcome.Score, outcome.Answered),
		"",
		stylize("Press enter to continue.", noColor, choiceColor))
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

// renderSummary renders the final report.
func renderSummary(summary quiz.Summary, noColor bool) string {
	verdict := fmt.Sprintf("Failed (threshold %.0f%%)", summary.Threshold*100)
	color := incorrectColor
	if summary.Passed {
		verdict = fmt.Sprintf("Passed (threshold %.0f%%)", summary.Threshold*100)
		color = correctColor
	}
	lines := []string{
		fmt.Sprintf("Your final score: %d/%d (%s%%)", summary.Score, summary.Total, quiz.FormatPercentage(summary.Percentage)),
		stylize(verdict, noColor, color),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
