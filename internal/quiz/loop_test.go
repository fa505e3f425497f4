package quiz

import (
	"bytes"
	"strings"
	"testing"
)

// TestRunLoopAllCorrect verifies a full pass with correct answers.
func TestRunLoopAllCorrect(t *testing.T) {
	session := NewSession(fixtureQuestions(), Options{})
	in := strings.NewReader("B\nAC\nA\n")
	var out bytes.Buffer

	summary := RunLoop(session, in, &out, true)
	if summary.Score != 3 || summary.Total != 3 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if !summary.Passed {
		t.Fatalf("expected pass")
	}
	output := out.String()
	if !strings.Contains(output, "Question 1 of 3") {
		t.Fatalf("expected question header, got %q", output)
	}
	if !strings.Contains(output, "Your final score: 3/3 (100.0%)") {
		t.Fatalf("expected final score, got %q", output)
	}
	if !strings.Contains(output, "Passed (threshold 70%)") {
		t.Fatalf("expected verdict, got %q", output)
	}
}

// TestRunLoopRepromptsOnInvalidInput verifies bad input never ends the run.
func TestRunLoopRepromptsOnInvalidInput(t *testing.T) {
	session := NewSession(fixtureQuestions(), Options{Limit: 1})
	in := strings.NewReader("\nZ\nAB\nB\n")
	var out bytes.Buffer

	summary := RunLoop(session, in, &out, true)
	if summary.Score != 1 || summary.Total != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	output := out.String()
	if !strings.Contains(output, "Invalid option(s): Z") {
		t.Fatalf("expected invalid option message, got %q", output)
	}
	if !strings.Contains(output, "Please select exactly one letter") {
		t.Fatalf("expected count message, got %q", output)
	}
	if strings.Count(output, "Select your answer:") != 4 {
		t.Fatalf("expected 4 prompts, got %q", output)
	}
}

// TestRunLoopIncorrectFeedback verifies the correct answer is revealed on a
// miss together with the running score.
func TestRunLoopIncorrectFeedback(t *testing.T) {
	session := NewSession(fixtureQuestions(), Options{Limit: 1})
	in := strings.NewReader("A\n")
	var out bytes.Buffer

	summary := RunLoop(session, in, &out, true)
	if summary.Score != 0 || summary.Total != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	output := out.String()
	if !strings.Contains(output, "Incorrect.") {
		t.Fatalf("expected incorrect feedback, got %q", output)
	}
	if !strings.Contains(output, "Correct answer: B. 7") {
		t.Fatalf("expected revealed answer, got %q", output)
	}
	if !strings.Contains(output, "Score: 0/1") {
		t.Fatalf("expected running score, got %q", output)
	}
}

// TestRunLoopEarlyExit verifies a quit word stops the pass and the summary
// covers only the answered prefix.
func TestRunLoopEarlyExit(t *testing.T) {
	session := NewSession(fixtureQuestions(), Options{})
	in := strings.NewReader("B\nquit\n")
	var out bytes.Buffer

	summary := RunLoop(session, in, &out, true)
	if summary.Score != 1 || summary.Total != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if !strings.Contains(out.String(), "Input closed.") {
		t.Fatalf("expected early exit notice, got %q", out.String())
	}
}

// TestRunLoopEOF verifies input running dry behaves like an early exit.
func TestRunLoopEOF(t *testing.T) {
	session := NewSession(fixtureQuestions(), Options{})
	in := strings.NewReader("B\n")
	var out bytes.Buffer

	summary := RunLoop(session, in, &out, true)
	if summary.Score != 1 || summary.Total != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}
