package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"mcq/internal/cli"
	"mcq/internal/exam"
	"mcq/internal/quiz"
)

const featureExam = `# Practice Exam

1. Pick the prime.
   - A. 4
   - B. 7
   - C. 9
   - D. 12

   Correct Answer: B

2. Pick the evens. (Choose two.)
   - A. 2
   - B. 3
   - C. 8
   - D. 5

   Correct Answer: AC

3. Pick the vowel.
   - A. e
   - B. k
   - C. t

   Correct Answer: A
`

const brokenExam = `1. Question without a marker?
   - A. Yes
   - B. No
`

// featureState holds scenario state for the exam runner features.
type featureState struct {
	workDir   string
	examPath  string
	firstOut  string
	secondOut string
	lastOut   string
	lastErr   string
	exitCode  int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		dir, err := os.MkdirTemp("", "mcq-cucumber-*")
		if err != nil {
			return ctx, err
		}
		*state = featureState{workDir: dir}
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if state.workDir != "" {
			_ = os.RemoveAll(state.workDir)
		}
		return ctx, nil
	})

	ctx.Step(`^a local exam file with 3 questions including one multi-select$`, state.aLocalExamFile)
	ctx.Step(`^a local exam file missing its answer marker$`, state.aBrokenExamFile)
	ctx.Step(`^I run the exam with seed 42, both shuffles, and limit 2, answering correctly$`, state.runSeededExam)
	ctx.Step(`^I run the exam again with the same flags and answers$`, state.runSeededExamAgain)
	ctx.Step(`^I run the exam answering "([^"]+)" before each correct answer$`, state.runExamWithNoise)
	ctx.Step(`^I try to run the exam$`, state.tryRunExam)
	ctx.Step(`^both runs present the questions and choices in the same order$`, state.runsMatch)
	ctx.Step(`^the final score is "([^"]+)" at "([^"]+)" and the verdict is "([^"]+)"$`, state.finalScoreIs)
	ctx.Step(`^the exit code is non-zero$`, state.exitCodeNonZero)
	ctx.Step(`^the error points at block 1$`, state.errorPointsAtBlock)
	ctx.Step(`^the runner prompts again after each invalid answer$`, state.runnerReprompts)
}

func (s *featureState) aLocalExamFile() error {
	return s.writeExam(featureExam)
}

func (s *featureState) aBrokenExamFile() error {
	return s.writeExam(brokenExam)
}

func (s *featureState) writeExam(content string) error {
	s.examPath = filepath.Join(s.workDir, "exam.md")
	return os.WriteFile(s.examPath, []byte(content), 0o644)
}

// seededArgs are the flags for the determinism scenario.
func (s *featureState) seededArgs() []string {
	return []string{
		"run", "--source", "local", "--exam-md", s.examPath, "--ui", "plain",
		"--shuffle-questions", "--shuffle-choices", "--limit", "2", "--seed", "42",
	}
}

// seededAnswers replays the session setup to learn the presented order and
// each question's correct labels.
func (s *featureState) seededAnswers() (string, error) {
	questions, err := exam.Parse(featureExam)
	if err != nil {
		return "", fmt.Errorf("parse fixture: %w", err)
	}
	seed := int64(42)
	session := quiz.NewSession(questions, quiz.Options{
		ShuffleQuestions: true,
		ShuffleChoices:   true,
		Limit:            2,
		Seed:             &seed,
	})
	var lines []string
	for _, q := range session.Questions {
		lines = append(lines, strings.Join(q.CorrectLabels, ""))
	}
	return strings.Join(lines, "\n") + "\n", nil
}

func (s *featureState) runCLI(args []string, input string) {
	var out, errOut bytes.Buffer
	s.exitCode = cli.Run(args, strings.NewReader(input), &out, &errOut)
	s.lastOut = out.String()
	s.lastErr = errOut.String()
}

func (s *featureState) runSeededExam() error {
	input, err := s.seededAnswers()
	if err != nil {
		return err
	}
	s.runCLI(s.seededArgs(), input)
	if s.exitCode != 0 {
		return fmt.Errorf("run exited %d: %s", s.exitCode, s.lastErr)
	}
	s.firstOut = s.lastOut
	return nil
}

func (s *featureState) runSeededExamAgain() error {
	input, err := s.seededAnswers()
	if err != nil {
		return err
	}
	s.runCLI(s.seededArgs(), input)
	if s.exitCode != 0 {
		return fmt.Errorf("run exited %d: %s", s.exitCode, s.lastErr)
	}
	s.secondOut = s.lastOut
	s.lastOut = s.firstOut
	return nil
}

func (s *featureState) runExamWithNoise(noise string) error {
	questions, err := exam.Parse(featureExam)
	if err != nil {
		return fmt.Errorf("parse fixture: %w", err)
	}
	var lines []string
	for _, q := range questions {
		lines = append(lines, noise, strings.Join(q.CorrectLabels, ""))
	}
	input := strings.Join(lines, "\n") + "\n"
	s.runCLI([]string{"run", "--source", "local", "--exam-md", s.examPath, "--ui", "plain"}, input)
	if s.exitCode != 0 {
		return fmt.Errorf("run exited %d: %s", s.exitCode, s.lastErr)
	}
	return nil
}

func (s *featureState) tryRunExam() error {
	s.runCLI([]string{"run", "--source", "local", "--exam-md", s.examPath, "--ui", "plain"}, "")
	return nil
}

// stripAttemptLines drops the per-run attempt id so outputs can be compared.
func stripAttemptLines(output string) string {
	lines := strings.Split(output, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, "Attempt ") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func (s *featureState) runsMatch() error {
	if s.firstOut == "" || s.secondOut == "" {
		return fmt.Errorf("both runs must have happened")
	}
	if stripAttemptLines(s.firstOut) != stripAttemptLines(s.secondOut) {
		return fmt.Errorf("seeded runs differ:\n%s\n---\n%s", s.firstOut, s.secondOut)
	}
	return nil
}

func (s *featureState) finalScoreIs(score, percentage, verdict string) error {
	want := fmt.Sprintf("Your final score: %s (%s)", score, percentage)
	if !strings.Contains(s.lastOut, want) {
		return fmt.Errorf("expected %q in output:\n%s", want, s.lastOut)
	}
	if !strings.Contains(s.lastOut, verdict+" (threshold") {
		return fmt.Errorf("expected verdict %q in output:\n%s", verdict, s.lastOut)
	}
	return nil
}

func (s *featureState) exitCodeNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) errorPointsAtBlock() error {
	if !strings.Contains(s.lastErr, "block 1") {
		return fmt.Errorf("expected block pointer in stderr: %s", s.lastErr)
	}
	return nil
}

func (s *featureState) runnerReprompts() error {
	prompts := strings.Count(s.lastOut, "Select your answer:")
	if prompts != 6 {
		return fmt.Errorf("expected 6 prompts (one retry per question), got %d:\n%s", prompts, s.lastOut)
	}
	return nil
}
