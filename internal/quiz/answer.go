package quiz

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"mcq/internal/exam"
)

var letterRE = regexp.MustCompile(`[A-Za-z]`)

// ParseResponse validates raw interactive input against a question and
// returns the submitted labels, deduplicated and uppercased. Accepted formats
// include "B", "BD", and "B,D". Errors are meant to be shown to the user
// before re-prompting, never to end the run.
func ParseResponse(raw string, q exam.Question) ([]string, error) {
	letters := letterRE.FindAllString(raw, -1)
	if len(letters) == 0 {
		return nil, fmt.Errorf("please enter at least one letter")
	}

	seen := map[string]struct{}{}
	labels := make([]string, 0, len(letters))
	var invalid []string
	for _, letter := range letters {
		label := strings.ToUpper(letter)
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		if !q.HasChoice(label) {
			invalid = append(invalid, label)
			continue
		}
		labels = append(labels, label)
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return nil, fmt.Errorf("invalid option(s): %s", strings.Join(invalid, ", "))
	}

	expected := 1
	if q.IsMultiSelect() {
		expected = q.ExpectedCount()
	}
	if len(labels) != expected {
		if expected == 1 {
			return nil, fmt.Errorf("please select exactly one letter")
		}
		return nil, fmt.Errorf("please select exactly %d unique letters", expected)
	}
	return labels, nil
}
