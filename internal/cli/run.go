package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"mcq/internal/exam"
	"mcq/internal/quiz"
	"mcq/internal/ui/live"
)

// runRun builds the handler for the run command.
func runRun(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		sourceArgs := addSourceFlags(fs)
		shuffleQuestions := fs.Bool("shuffle-questions", false, "Shuffle question order")
		shuffleChoices := fs.Bool("shuffle-choices", false, "Shuffle choices within each question")
		limit := fs.Int("limit", 0, "Limit to the first N questions after optional shuffle")
		seed := fs.Int64("seed", 0, "Random seed for reproducibility when shuffling")
		uiMode := fs.String("ui", "auto", "UI mode: auto, live, or plain")
		noColor := fs.Bool("no-color", false, "Disable colored output")
		if err := fs.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		var seedValue *int64
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "seed" {
				seedValue = seed
			}
		})

		if err := sourceArgs.check(); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		cfg, err := sourceArgs.loadConfig()
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		text, err := sourceArgs.loadText(context.Background(), cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load exam: %v\n", err)
			return ExitError
		}
		questions, err := exam.Parse(text)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to parse exam: %v\n", err)
			return ExitError
		}

		session := quiz.NewSession(questions, quiz.Options{
			ShuffleQuestions: *shuffleQuestions,
			ShuffleChoices:   *shuffleChoices,
			Limit:            *limit,
			Seed:             seedValue,
			PassThreshold:    cfg.Quiz.PassThreshold,
		})

		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		if decision.useLive {
			return runLive(session, *noColor, stdin, stdout, stderr)
		}
		plainNoColor := *noColor || !isTerminal(stdout)
		summary := quiz.RunLoop(session, stdin, stdout, plainNoColor)
		fmt.Fprintf(stdout, "Attempt %s completed\n", summary.AttemptID)
		return ExitOK
	}
}

// runLive drives the session through the Bubble Tea UI.
func runLive(session *quiz.Session, noColor bool, stdin io.Reader, stdout, stderr io.Writer) int {
	program := tea.NewProgram(live.NewModel(session, noColor), tea.WithInput(stdin), tea.WithOutput(stdout))
	final, err := program.Run()
	if err != nil {
		fmt.Fprintf(stderr, "UI failed: %v\n", err)
		return ExitError
	}
	if model, ok := final.(live.Model); ok {
		if summary, done := model.Summary(); done {
			fmt.Fprintf(stdout, "Attempt %s completed\n", summary.AttemptID)
		}
	}
	return ExitOK
}
