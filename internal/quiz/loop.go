package quiz

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// RunLoop drives a plain, line-oriented pass over the session. The only
// blocking point is the interactive read; invalid input re-prompts
// indefinitely. EOF or a quit word ends the pass early and the summary covers
// the questions answered so far.
func RunLoop(session *Session, in io.Reader, out io.Writer, noColor bool) Summary {
	reader := bufio.NewReader(in)
	total := len(session.Questions)

	for {
		q, ok := session.Current()
		if !ok {
			break
		}
		fmt.Fprintf(out, "\nQuestion %d of %d\n", session.Index+1, total)
		fmt.Fprintln(out, q.Text)
		for _, choice := range q.Choices {
			fmt.Fprintf(out, "  %s. %s\n", choice.Label, choice.Text)
		}

		labels, quit := promptAnswer(reader, out, session)
		if quit {
			fmt.Fprintln(out, "\nInput closed.")
			break
		}
		outcome := session.Submit(labels)
		printOutcome(out, outcome, noColor)
	}

	summary := session.Summarize()
	printSummary(out, summary, noColor)
	return summary
}

// promptAnswer is the read-and-validate step wrapped in a retry loop. It
// returns quit=true on EOF or an explicit quit word.
func promptAnswer(reader *bufio.Reader, out io.Writer, session *Session) ([]string, bool) {
	q, _ := session.Current()
	for {
		fmt.Fprint(out, "Select your answer: ")
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(strings.TrimRight(line, "\r\n"))
		if isQuitWord(line) {
			return nil, true
		}
		if line != "" {
			labels, parseErr := ParseResponse(line, q)
			if parseErr == nil {
				return labels, false
			}
			fmt.Fprintf(out, "%s. Try again.\n", capitalize(parseErr.Error()))
		} else if err == nil {
			fmt.Fprintln(out, "Please enter at least one letter. Try again.")
		}
		if err != nil {
			return nil, true
		}
	}
}

func isQuitWord(line string) bool {
	switch strings.ToLower(line) {
	case "quit", "exit":
		return true
	default:
		return false
	}
}

func capitalize(text string) string {
	if text == "" {
		return text
	}
	return strings.ToUpper(text[:1]) + text[1:]
}
