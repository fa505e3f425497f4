package exam

// Choice is one selectable option within a question.
type Choice struct {
	Label string
	Text  string
}

// Question represents a single exam item parsed from markdown.
type Question struct {
	// Number is the question number from the source markdown.
	Number int
	// Text is the cleaned prompt.
	Text string
	// Choices holds the options in source order, labels attached.
	Choices []Choice
	// CorrectLabels are the labels of the correct choice(s).
	CorrectLabels []string
	// ChooseN is the "(Choose two.)" hint when present, otherwise 0.
	ChooseN int
}

// IsMultiSelect reports whether the question requires more than one label.
func (q Question) IsMultiSelect() bool {
	return len(q.CorrectLabels) > 1
}

// ExpectedCount returns how many labels a submission must contain.
func (q Question) ExpectedCount() int {
	if q.ChooseN > 0 {
		return q.ChooseN
	}
	return len(q.CorrectLabels)
}

// HasChoice reports whether a label names one of the question's choices.
func (q Question) HasChoice(label string) bool {
	for _, choice := range q.Choices {
		if choice.Label == label {
			return true
		}
	}
	return false
}

// ChoiceText returns the display text for a label, or "" when unknown.
func (q Question) ChoiceText(label string) string {
	for _, choice := range q.Choices {
		if choice.Label == label {
			return choice.Text
		}
	}
	return ""
}
