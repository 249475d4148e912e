package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bookworm/internal/router"
	"github.com/abhisek/bookworm/internal/session"
)

func testSummary() *session.Summary {
	return &session.Summary{
		BookTitle:      "The Tale of Peter Rabbit",
		Duration:       8*time.Minute + 5*time.Second,
		TotalQuestions: 14,
		TotalCorrect:   12,
		FirstTry:       11,
		Accuracy:       float64(11) / float64(14),
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Well Done" {
		t.Errorf("Title = %q, want %q", s.Title(), "Well Done")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	if !strings.Contains(view, "You finished The Tale of Peter Rabbit!") {
		t.Error("expected book title in summary view")
	}
	if !strings.Contains(view, "Time: 8:05") {
		t.Error("expected formatted duration in summary view")
	}
}

func TestSummaryScreen_Encouragement(t *testing.T) {
	tests := []struct {
		name     string
		accuracy float64
		want     string
	}{
		{"high", 0.95, "Amazing reading!"},
		{"middle", 0.7, "Great job!"},
		{"low", 0.3, "Good effort!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := testSummary()
			sum.Accuracy = tt.accuracy
			view := New(sum).View(80, 24)
			if !strings.Contains(view, tt.want) {
				t.Errorf("expected %q in view", tt.want)
			}
		})
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter (pop)")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
