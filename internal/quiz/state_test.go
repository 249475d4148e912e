package quiz

import (
	"errors"
	"testing"

	"github.com/abhisek/bookworm/internal/scoring"
)

func TestInitialState(t *testing.T) {
	s := NewState()
	if s.Phase() != PhaseUnanswered {
		t.Errorf("phase = %s, want %s", s.Phase(), PhaseUnanswered)
	}
	if s.Status() != StatusIdle {
		t.Errorf("status = %s, want %s", s.Status(), StatusIdle)
	}
	if s.Feedback() != nil {
		t.Error("expected nil feedback")
	}
	if s.RevealAnswer() {
		t.Error("expected reveal = false")
	}
}

func TestCanSubmit(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"plain answer", "Fiction", true},
		{"padded answer", "  Fiction  ", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			if got := s.CanSubmit(tt.answer); got != tt.want {
				t.Errorf("CanSubmit(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestCanSubmitBlockedWhileChecking(t *testing.T) {
	s := NewState()
	if err := s.BeginCheck("Fiction"); err != nil {
		t.Fatalf("begin check: %v", err)
	}
	if s.CanSubmit("Fiction") {
		t.Error("submit must be disabled while checking")
	}
}

func TestBeginCheckTrimsAndTransitions(t *testing.T) {
	s := NewState()
	if err := s.BeginCheck("  Fiction "); err != nil {
		t.Fatalf("begin check: %v", err)
	}
	if s.Answer() != "Fiction" {
		t.Errorf("answer = %q, want trimmed %q", s.Answer(), "Fiction")
	}
	if s.Phase() != PhaseChecking {
		t.Errorf("phase = %s, want %s", s.Phase(), PhaseChecking)
	}
	if s.Status() != StatusSubmitting {
		t.Errorf("status = %s, want %s", s.Status(), StatusSubmitting)
	}
}

func TestBeginCheckRejectsEmptyAnswer(t *testing.T) {
	s := NewState()
	if err := s.BeginCheck("   "); err == nil {
		t.Fatal("expected error for empty answer")
	}
	if s.Phase() != PhaseUnanswered {
		t.Errorf("phase = %s, want unchanged %s", s.Phase(), PhaseUnanswered)
	}
}

func TestBeginCheckRejectsDoubleSubmit(t *testing.T) {
	s := NewState()
	if err := s.BeginCheck("Fiction"); err != nil {
		t.Fatalf("begin check: %v", err)
	}
	err := s.BeginCheck("Fiction")
	var trErr *ErrTransition
	if !errors.As(err, &trErr) {
		t.Fatalf("expected ErrTransition, got %v", err)
	}
}

func TestResolveCorrect(t *testing.T) {
	s := NewState()
	_ = s.BeginCheck("Fiction")
	fb := &scoring.Feedback{Correct: true, Message: "Well done!"}
	if err := s.Resolve(fb); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if s.Phase() != PhaseCorrect {
		t.Errorf("phase = %s, want %s", s.Phase(), PhaseCorrect)
	}
	if s.Status() != StatusResolved {
		t.Errorf("status = %s, want %s", s.Status(), StatusResolved)
	}
	if s.CanTryAgain() {
		t.Error("try again must not be offered after a correct answer")
	}
	if !s.CanProceed() {
		t.Error("proceed must be offered after a correct answer")
	}
}

func TestResolveIncorrectKeepsServerRevealFlag(t *testing.T) {
	tests := []struct {
		name string
		fb   scoring.Feedback
	}{
		{"reveal on", scoring.Feedback{Correct: false, Message: "Not quite.", CorrectAnswer: "Fiction", ShowAnswer: true}},
		// The payload may carry a correct answer even when the server
		// withholds permission to show it.
		{"reveal off with answer present", scoring.Feedback{Correct: false, Message: "Not quite.", CorrectAnswer: "Fiction", ShowAnswer: false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			_ = s.BeginCheck("x")
			if err := s.Resolve(&tt.fb); err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if s.Phase() != PhaseIncorrect {
				t.Errorf("phase = %s, want %s", s.Phase(), PhaseIncorrect)
			}
			if s.RevealAnswer() != tt.fb.ShowAnswer {
				t.Errorf("reveal = %v, want server value %v", s.RevealAnswer(), tt.fb.ShowAnswer)
			}
			if !s.CanTryAgain() || !s.CanProceed() {
				t.Error("incorrect state must offer both try-again and proceed")
			}
		})
	}
}

func TestResolveRequiresChecking(t *testing.T) {
	s := NewState()
	err := s.Resolve(&scoring.Feedback{Correct: true})
	var trErr *ErrTransition
	if !errors.As(err, &trErr) {
		t.Fatalf("expected ErrTransition, got %v", err)
	}
}

func TestTryAgainResetsEverything(t *testing.T) {
	s := NewState()
	_ = s.BeginCheck("wrong")
	_ = s.Resolve(&scoring.Feedback{Correct: false, Message: "No.", CorrectAnswer: "Fiction", ShowAnswer: true})

	if err := s.TryAgain(); err != nil {
		t.Fatalf("try again: %v", err)
	}
	if s.Phase() != PhaseUnanswered || s.Status() != StatusIdle {
		t.Errorf("state not reset: phase=%s status=%s", s.Phase(), s.Status())
	}
	if s.Answer() != "" || s.Feedback() != nil || s.RevealAnswer() {
		t.Error("answer, feedback and reveal must be cleared")
	}
}

func TestTryAgainRejectedAfterCorrect(t *testing.T) {
	s := NewState()
	_ = s.BeginCheck("Fiction")
	_ = s.Resolve(&scoring.Feedback{Correct: true, Message: "Yes!"})

	if err := s.TryAgain(); err == nil {
		t.Fatal("try again must be rejected from the correct state")
	}
}

func TestProceedGuards(t *testing.T) {
	s := NewState()
	if err := s.Proceed(); err == nil {
		t.Fatal("proceed must be rejected while unanswered")
	}

	_ = s.BeginCheck("x")
	if err := s.Proceed(); err == nil {
		t.Fatal("proceed must be rejected while checking")
	}

	_ = s.Resolve(&scoring.Feedback{Correct: false, Message: "No."})
	if err := s.Proceed(); err != nil {
		t.Fatalf("proceed from incorrect: %v", err)
	}
}
