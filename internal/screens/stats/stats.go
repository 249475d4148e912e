package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bookworm/internal/quiz"
	"github.com/abhisek/bookworm/internal/screen"
	"github.com/abhisek/bookworm/internal/store"
	"github.com/abhisek/bookworm/internal/ui/components"
	"github.com/abhisek/bookworm/internal/ui/layout"
	"github.com/abhisek/bookworm/internal/ui/theme"
)

// bookRow pairs aggregated answer counts with the book's display title.
type bookRow struct {
	Title    string
	Answered int
	Correct  int
}

// StatsScreen shows reading accuracy per book and narration backend health.
type StatsScreen struct {
	books   []bookRow
	speech  []store.SpeechStats
	loadErr error
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New loads aggregates from the event repo. A load failure is kept and
// rendered instead of the tables.
func New(events store.EventRepo, catalog *quiz.Catalog) *StatsScreen {
	s := &StatsScreen{}
	if events == nil {
		return s
	}

	ctx := context.Background()

	bookStats, err := events.BookStats(ctx)
	if err != nil {
		s.loadErr = err
		return s
	}
	for _, bs := range bookStats {
		title := bs.BookID
		if catalog != nil {
			if b := catalog.BookByID(bs.BookID); b != nil {
				title = b.Title
			}
		}
		s.books = append(s.books, bookRow{
			Title:    title,
			Answered: bs.Answered,
			Correct:  bs.Correct,
		})
	}

	speechStats, err := events.SpeechStats(ctx)
	if err != nil {
		s.loadErr = err
		return s
	}
	s.speech = speechStats

	return s
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Reading Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.loadErr != nil {
		return lipgloss.NewStyle().
			Foreground(theme.Error).
			Width(width).
			Align(lipgloss.Center).
			Render(fmt.Sprintf("Could not load stats: %v", s.loadErr))
	}

	sectionStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	barWidth := width - 8
	if barWidth > 60 {
		barWidth = 60
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + sectionStyle.Render("Books") + "\n\n")

	if len(s.books) == 0 {
		b.WriteString("  " + dimStyle.Render("No questions answered yet. Pick a book!") + "\n")
	}
	for _, row := range s.books {
		accuracy := 0.0
		if row.Answered > 0 {
			accuracy = float64(row.Correct) / float64(row.Answered)
		}
		bar := components.NewProgressBar(
			fmt.Sprintf("%-28s", row.Title), accuracy, true, barWidth)
		b.WriteString("  " + bar.View() + "\n")
		b.WriteString("  " + dimStyle.Render(
			fmt.Sprintf("%d answered, %d right", row.Answered, row.Correct)) + "\n\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + sectionStyle.Render("Narration") + "\n\n")

	if len(s.speech) == 0 {
		b.WriteString("  " + dimStyle.Render("No narration recorded yet.") + "\n")
	}
	for _, sp := range s.speech {
		ok := sp.Attempts - sp.Failures
		line := fmt.Sprintf("%-12s %d spoken, %d failed", sp.Backend, ok, sp.Failures)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if sp.Failures > 0 && ok == 0 {
			style = lipgloss.NewStyle().Foreground(theme.Warning)
		}
		b.WriteString("  " + style.Render(line) + "\n")
	}

	return b.String()
}
