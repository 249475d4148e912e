package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bookworm/internal/router"
	"github.com/abhisek/bookworm/internal/screen"
	"github.com/abhisek/bookworm/internal/session"
	"github.com/abhisek/bookworm/internal/ui/components"
	"github.com/abhisek/bookworm/internal/ui/layout"
	"github.com/abhisek/bookworm/internal/ui/theme"
)

// SummaryScreen displays the end-of-book summary.
type SummaryScreen struct {
	summary *session.Summary
	back    components.Button
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary) *SummaryScreen {
	back := components.NewButton("Back to the bookshelf", true, func() tea.Cmd {
		return func() tea.Msg { return router.PopScreenMsg{} }
	})
	return &SummaryScreen{summary: summary, back: back}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Well Done"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to books"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.back, cmd = s.back.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder
	center := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		fmt.Sprintf("You finished %s!", sum.BookTitle))
	b.WriteString("\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Time: %d:%02d", mins, secs))
	b.WriteString("\n")

	accuracy := fmt.Sprintf("%.0f%%", sum.Accuracy*100)
	center(lipgloss.NewStyle().Foreground(theme.Text),
		fmt.Sprintf("Questions: %d        Right first try: %d        Accuracy: %s",
			sum.TotalQuestions, sum.FirstTry, accuracy))
	b.WriteString("\n")

	switch {
	case sum.Accuracy >= 0.9:
		center(lipgloss.NewStyle().Foreground(theme.Success).Bold(true), "Amazing reading! You really know this story.")
	case sum.Accuracy >= 0.6:
		center(lipgloss.NewStyle().Foreground(theme.Secondary), "Great job! Keep reading and you'll get them all.")
	default:
		center(lipgloss.NewStyle().Foreground(theme.Accent), "Good effort! Try reading the story again.")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(s.back.View()))

	return b.String()
}
