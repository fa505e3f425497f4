// Package live renders the quiz as a full Bubble Tea program: a text input
// for answer entry, immediate per-question feedback, and a final report. The
// grading semantics are the session's; this package only presents them.
package live

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"mcq/internal/quiz"
)

type phase int

const (
	phaseAsking phase = iota
	phaseFeedback
	phaseDone
)

// Model drives one quiz pass as a Bubble Tea model.
type Model struct {
	session *quiz.Session
	input   textinput.Model
	phase   phase
	errText string
	outcome quiz.Outcome
	summary quiz.Summary
	noColor bool
	width   int
}

// NewModel constructs a quiz UI over a prepared session.
func NewModel(session *quiz.Session, noColor bool) Model {
	input := textinput.New()
	input.Prompt = "Select your answer: "
	input.Placeholder = "e.g. B or B,D"
	input.CharLimit = 16
	input.Focus()
	model := Model{
		session: session,
		input:   input,
		noColor: noColor,
	}
	if _, ok := session.Current(); !ok {
		model.summary = session.Summarize()
		model.phase = phaseDone
	}
	return model
}

// Summary returns the final report once the pass is over.
func (m Model) Summary() (quiz.Summary, bool) {
	if m.phase != phaseDone {
		return quiz.Summary{}, false
	}
	return m.summary, true
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key input and window sizing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		return m, nil
	case tea.KeyMsg:
		switch typed.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.summary = m.session.Summarize()
			m.phase = phaseDone
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleEnter()
		}
	}
	if m.phase == phaseAsking {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleEnter submits an answer, acknowledges feedback, or quits, depending
// on the current phase.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseAsking:
		q, ok := m.session.Current()
		if !ok {
			m.summary = m.session.Summarize()
			m.phase = phaseDone
			return m, tea.Quit
		}
		labels, err := quiz.ParseResponse(m.input.Value(), q)
		if err != nil {
			m.errText = err.Error()
			m.input.SetValue("")
			return m, nil
		}
		m.errText = ""
		m.outcome = m.session.Submit(labels)
		m.input.SetValue("")
		m.phase = phaseFeedback
		return m, nil
	case phaseFeedback:
		if _, ok := m.session.Current(); ok {
			m.phase = phaseAsking
			return m, nil
		}
		m.summary = m.session.Summarize()
		m.phase = phaseDone
		return m, tea.Quit
	default:
		return m, tea.Quit
	}
}

// View renders the current phase.
func (m Model) View() string {
	switch m.phase {
	case phaseFeedback:
		return renderFeedback(m.outcome, m.noColor)
	case phaseDone:
		return renderSummary(m.summary, m.noColor)
	default:
		q, ok := m.session.Current()
		if !ok {
			return ""
		}
		return renderQuestion(q, m.session.Index+1, len(m.session.Questions), m.input.View(), m.errText, m.noColor)
	}
}
