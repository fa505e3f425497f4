package exam

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

var (
	questionRE = regexp.MustCompile(`^\s*(\d+)\.\s+(.*)`)
	choiceRE   = regexp.MustCompile(`^\s*-\s*([A-Z])\.\s*(.*)`)
	correctRE  = regexp.MustCompile(`(?i)Correct\s+Answer:\s*([A-Z]+)`)
	chooseRE   = regexp.MustCompile(`(?i)\(\s*Choose\s+(one|two|three|four|five)\.?\s*\)`)
)

var chooseWords = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
}

// Parse converts exam markdown into a sequence of questions, preserving block
// order. Preamble and formatting noise around well-formed blocks is ignored.
// Structural problems are reported as a MalformedError carrying the 1-based
// index of each offending block.
func Parse(rawText string) ([]Question, error) {
	collector := &issueCollector{}
	var questions []Question
	var current *Question
	markerSeen := false

	flush := func() {
		if current == nil {
			return
		}
		current.Text = CleanPrompt(current.Text)
		questions = append(questions, *current)
		current = nil
	}

	scanner := bufio.NewScanner(strings.NewReader(rawText))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		if match := questionRE.FindStringSubmatch(line); match != nil {
			flush()
			number, _ := strconv.Atoi(match[1])
			current = &Question{Number: number, Text: strings.TrimSpace(match[2])}
			markerSeen = false
			if hint := chooseRE.FindStringSubmatch(current.Text); hint != nil {
				current.ChooseN = chooseWords[strings.ToLower(hint[1])]
			}
			continue
		}
		if current == nil {
			continue
		}

		if match := choiceRE.FindStringSubmatch(line); match != nil {
			current.Choices = append(current.Choices, Choice{
				Label: strings.ToUpper(match[1]),
				Text:  strings.TrimSpace(match[2]),
			})
			continue
		}

		if match := correctRE.FindStringSubmatch(line); match != nil {
			if markerSeen {
				collector.add(len(questions)+1, "answer", "multiple answer markers in one block")
				continue
			}
			markerSeen = true
			for _, letter := range strings.ToUpper(match[1]) {
				current.CorrectLabels = append(current.CorrectLabels, string(letter))
			}
			continue
		}

		// Wrapped prompt text. Answer-section scaffolding is skipped.
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "-") && !strings.HasPrefix(trimmed, "Answer") {
			current.Text += " " + trimmed
		}
	}
	flush()
	if err := scanner.Err(); err != nil {
		collector.add(len(questions)+1, "input", err.Error())
		return nil, collector.result()
	}

	if len(questions) == 0 {
		collector.add(0, "questions", "no question blocks found")
		return nil, collector.result()
	}
	for i, q := range questions {
		validateQuestion(collector, i+1, q)
	}
	if err := collector.result(); err != nil {
		return nil, err
	}
	return questions, nil
}
