// Package quiz drives one interactive pass over a parsed exam: ordering,
// answer validation, grading, and the final report.
package quiz

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"mcq/internal/exam"
)

// DefaultPassThreshold is the fraction of correct answers required to pass.
const DefaultPassThreshold = 0.7

// Options configures a session. The flags are independent of each other.
type Options struct {
	ShuffleQuestions bool
	ShuffleChoices   bool
	// Limit caps the number of presented questions, applied after shuffling.
	// Zero means no limit.
	Limit int
	// Seed fixes the random generators for reproducible shuffling. Nil uses a
	// non-deterministic source.
	Seed *int64
	// PassThreshold overrides DefaultPassThreshold when non-zero.
	PassThreshold float64
}

// Session is the transient run-state for one quiz pass.
type Session struct {
	AttemptID string
	Questions []exam.Question
	Index     int
	Score     int
	Answered  int
	threshold float64
}

// Outcome reports the grading of one submission.
type Outcome struct {
	Correct bool
	// CorrectChoices are the correct label/text pairs, for feedback on a miss.
	CorrectChoices []exam.Choice
	Score          int
	Answered       int
}

// Summary is the final report for a session.
type Summary struct {
	AttemptID  string
	Score      int
	Total      int
	Percentage float64
	Threshold  float64
	Passed     bool
}

// NewSession builds run-state from parsed questions. Shuffling is a pure
// function of the input sequence and the seeded generators: choice order is
// derived before question order so toggling one flag never disturbs the
// other's permutation.
func NewSession(questions []exam.Question, opts Options) *Session {
	ordered := make([]exam.Question, len(questions))
	copy(ordered, questions)

	questionRand, choiceRand := generators(opts.Seed)
	if opts.ShuffleChoices {
		for i := range ordered {
			shuffled := make([]exam.Choice, len(ordered[i].Choices))
			copy(shuffled, ordered[i].Choices)
			choiceRand.Shuffle(len(shuffled), func(a, b int) {
				shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
			})
			ordered[i].Choices = shuffled
		}
	}
	if opts.ShuffleQuestions {
		questionRand.Shuffle(len(ordered), func(a, b int) {
			ordered[a], ordered[b] = ordered[b], ordered[a]
		})
	}
	if opts.Limit > 0 && opts.Limit < len(ordered) {
		ordered = ordered[:opts.Limit]
	}

	threshold := opts.PassThreshold
	if threshold == 0 {
		threshold = DefaultPassThreshold
	}
	return &Session{
		AttemptID: uuid.NewString(),
		Questions: ordered,
		threshold: threshold,
	}
}

// generators derives distinct sources for question and choice shuffling so
// the two permutations stay independent under the same seed.
func generators(seed *int64) (*rand.Rand, *rand.Rand) {
	if seed != nil {
		return rand.New(rand.NewPCG(uint64(*seed), 0)), rand.New(rand.NewPCG(uint64(*seed), 1))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Current returns the question at the cursor, or false when the pass is over.
func (s *Session) Current() (exam.Question, bool) {
	if s.Index >= len(s.Questions) {
		return exam.Question{}, false
	}
	return s.Questions[s.Index], true
}

// Submit grades a validated label set against the current question, updates
// the running score, and advances the cursor.
func (s *Session) Submit(labels []string) Outcome {
	q := s.Questions[s.Index]
	correct := grade(q, labels)
	s.Index++
	s.Answered++
	if correct {
		s.Score++
	}
	outcome := Outcome{
		Correct:  correct,
		Score:    s.Score,
		Answered: s.Answered,
	}
	for _, label := range q.CorrectLabels {
		outcome.CorrectChoices = append(outcome.CorrectChoices, exam.Choice{Label: label, Text: q.ChoiceText(label)})
	}
	return outcome
}

// grade applies exact-match semantics: single-select compares the sole label,
// multi-select requires set equality with no partial credit.
func grade(q exam.Question, labels []string) bool {
	if !q.IsMultiSelect() {
		return len(labels) == 1 && labels[0] == q.CorrectLabels[0]
	}
	if len(labels) != len(q.CorrectLabels) {
		return false
	}
	want := map[string]struct{}{}
	for _, label := range q.CorrectLabels {
		want[label] = struct{}{}
	}
	for _, label := range labels {
		if _, ok := want[label]; !ok {
			return false
		}
	}
	return true
}

// Summarize computes the final report. Total counts the questions actually
// answered, so an early exit reports over the answered prefix.
func (s *Session) Summarize() Summary {
	summary := Summary{
		AttemptID: s.AttemptID,
		Score:     s.Score,
		Total:     s.Answered,
		Threshold: s.threshold,
	}
	if summary.Total > 0 {
		summary.Percentage = float64(summary.Score) / float64(summary.Total) * 100
		summary.Passed = summary.Percentage >= s.threshold*100
	}
	return summary
}
