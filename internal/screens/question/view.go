package question

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/bookworm/internal/quiz"
	"github.com/abhisek/bookworm/internal/ui/components"
	"github.com/abhisek/bookworm/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *QuestionScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Prompt (centered).
	promptStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(promptStyle.Render(s.q.Prompt))
	b.WriteString("\n\n")

	// Answer area.
	if s.q.Kind == quiz.AnswerChoice {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View()))
	}
	b.WriteString("\n\n")

	switch s.st.Phase() {
	case quiz.PhaseChecking:
		b.WriteString(s.renderChecking(width))
	case quiz.PhaseCorrect, quiz.PhaseIncorrect:
		b.WriteString(s.renderFeedback(width))
	default:
		if s.introFailed {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Italic(true).
				Render("The intro didn't play. Press Ctrl+P to hear it."))
		}
	}

	return b.String()
}

// renderInfoLine shows the question label and position within the book.
func (s *QuestionScreen) renderInfoLine(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", s.q.Label))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", s.q.Number, len(s.book.Questions)))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

func (s *QuestionScreen) renderChecking(width int) string {
	frame := spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(frame + " Checking your answer...")
}

func (s *QuestionScreen) renderFeedback(width int) string {
	fb := s.st.Feedback()
	if fb == nil {
		return ""
	}

	var b strings.Builder
	center := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	if fb.Correct {
		center(lipgloss.NewStyle().Foreground(theme.Success).Bold(true), "Excellent!")
	} else {
		center(lipgloss.NewStyle().Foreground(theme.Error).Bold(true), "Not quite right")
	}

	if fb.Message != "" {
		center(lipgloss.NewStyle().Foreground(theme.Text), fb.Message)
	}

	// The reader's answer, with any flagged words underlined.
	if len(fb.MisspelledWords) > 0 && s.lastAnswer != "" {
		b.WriteString("\n")
		answer := components.HighlightMisspelled(s.lastAnswer, fb.MisspelledWords)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, "You wrote: "+answer))
		b.WriteString("\n")
	}

	// Only shown when the checker explicitly allows it.
	if s.st.RevealAnswer() && fb.CorrectAnswer != "" {
		b.WriteString("\n")
		center(lipgloss.NewStyle().Foreground(theme.TextDim),
			fmt.Sprintf("The correct answer is: %s", fb.CorrectAnswer))
	}

	return b.String()
}
