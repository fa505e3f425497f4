package quiz

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	correctColor   = lipgloss.Color("42")
	incorrectColor = lipgloss.Color("196")
	summaryColor   = lipgloss.Color("33")
)

// printOutcome writes per-question feedback and the running score.
func printOutcome(out io.Writer, outcome Outcome, noColor bool) {
	if outcome.Correct {
		fmt.Fprintln(out, stylize("Correct!", noColor, correctColor))
	} else {
		fmt.Fprintln(out, stylize("Incorrect.", noColor, incorrectColor))
		parts := make([]string, 0, len(outcome.CorrectChoices))
		for _, choice := range outcome.CorrectChoices {
			parts = append(parts, fmt.Sprintf("%s. %s", choice.Label, choice.Text))
		}
		fmt.Fprintf(out, "Correct answer: %s\n", strings.Join(parts, ", "))
	}
	fmt.Fprintf(out, "Score: %d/%d\n", outcome.Score, outcome.Answered)
}

// printSummary writes the final report with the pass/fail verdict.
func printSummary(out io.Writer, summary Summary, noColor bool) {
	fmt.Fprintf(out, "\nYour final score: %d/%d (%s%%)\n", summary.Score, summary.Total, FormatPercentage(summary.Percentage))
	verdict := fmt.Sprintf("Failed (threshold %.0f%%)", summary.Threshold*100)
	color := incorrectColor
	if summary.Passed {
		verdict = fmt.Sprintf("Passed (threshold %.0f%%)", summary.Threshold*100)
		color = summaryColor
	}
	fmt.Fprintln(out, stylize(verdict, noColor, color))
}

// FormatPercentage renders a percentage with one decimal place.
func FormatPercentage(value float64) string {
	return fmt.Sprintf("%.1f", value)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
