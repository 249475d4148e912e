package quiz

import (
	"fmt"
	"strings"

	"github.com/abhisek/bookworm/internal/scoring"
)

// Phase is the presentation state of a question.
type Phase string

const (
	PhaseUnanswered Phase = "unanswered"
	PhaseChecking   Phase = "checking"
	PhaseCorrect    Phase = "correct"
	PhaseIncorrect  Phase = "incorrect"
)

// SubmissionStatus tracks the scoring call independently of the phase.
type SubmissionStatus string

const (
	StatusIdle       SubmissionStatus = "idle"
	StatusSubmitting SubmissionStatus = "submitting"
	StatusResolved   SubmissionStatus = "resolved"
)

// ErrTransition is returned when a lifecycle method is called in a phase
// where it is not allowed.
type ErrTransition struct {
	From Phase
	Op   string
}

func (e *ErrTransition) Error() string {
	return fmt.Sprintf("cannot %s while %s", e.Op, e.From)
}

// State is the per-question answer lifecycle:
//
//	Unanswered → Checking → Correct | Incorrect
//	Incorrect --TryAgain--> Unanswered
//	Correct | Incorrect --Proceed--> (terminal, navigation takes over)
//
// It is created fresh on question mount and discarded on navigation; nothing
// persists across questions. All mutation happens through the transition
// methods so the guards stay authoritative.
type State struct {
	answer   string
	status   SubmissionStatus
	phase    Phase
	feedback *scoring.Feedback
	reveal   bool
}

// NewState returns a State in the initial Unanswered/Idle configuration.
func NewState() *State {
	return &State{
		status: StatusIdle,
		phase:  PhaseUnanswered,
	}
}

func (s *State) Phase() Phase             { return s.phase }
func (s *State) Status() SubmissionStatus { return s.status }
func (s *State) Answer() string           { return s.answer }

// Feedback returns the resolved result, or nil before resolution.
func (s *State) Feedback() *scoring.Feedback { return s.feedback }

// RevealAnswer reports whether the correct answer may be shown or spoken.
// It is exactly the server-declared flag, never inferred.
func (s *State) RevealAnswer() bool { return s.reveal }

// CanSubmit reports whether the submit control should be enabled: a trimmed
// non-empty answer while no submission is in flight.
func (s *State) CanSubmit(answer string) bool {
	return s.phase == PhaseUnanswered && strings.TrimSpace(answer) != ""
}

// BeginCheck enters Checking with the given answer. The caller enforces the
// non-empty precondition through CanSubmit; BeginCheck double-checks it so a
// bypassed guard fails loudly instead of submitting garbage.
func (s *State) BeginCheck(answer string) error {
	if s.phase != PhaseUnanswered {
		return &ErrTransition{From: s.phase, Op: "submit"}
	}
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return fmt.Errorf("submit requires a non-empty answer")
	}
	s.answer = trimmed
	s.phase = PhaseChecking
	s.status = StatusSubmitting
	return nil
}

// Resolve records the scoring result and enters Correct or Incorrect.
func (s *State) Resolve(fb *scoring.Feedback) error {
	if s.phase != PhaseChecking {
		return &ErrTransition{From: s.phase, Op: "resolve"}
	}
	s.feedback = fb
	s.reveal = fb.ShowAnswer
	s.status = StatusResolved
	if fb.Correct {
		s.phase = PhaseCorrect
	} else {
		s.phase = PhaseIncorrect
	}
	return nil
}

// CanTryAgain reports whether the retry control should be offered.
func (s *State) CanTryAgain() bool { return s.phase == PhaseIncorrect }

// CanProceed reports whether the proceed control should be offered. Moving
// on is allowed after an incorrect answer too; the app never forces a child
// to get a question right.
func (s *State) CanProceed() bool {
	return s.phase == PhaseCorrect || s.phase == PhaseIncorrect
}

// TryAgain resets to the initial state. Only valid from Incorrect.
func (s *State) TryAgain() error {
	if !s.CanTryAgain() {
		return &ErrTransition{From: s.phase, Op: "try again"}
	}
	*s = *NewState()
	return nil
}

// Proceed validates that the question is in a terminal feedback state.
// Navigation itself is the screen's job; the state is simply discarded.
func (s *State) Proceed() error {
	if !s.CanProceed() {
		return &ErrTransition{From: s.phase, Op: "proceed"}
	}
	return nil
}
