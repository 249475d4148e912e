package question

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/bookworm/internal/quiz"
	"github.com/abhisek/bookworm/internal/router"
	"github.com/abhisek/bookworm/internal/scoring"
	"github.com/abhisek/bookworm/internal/screen"
	"github.com/abhisek/bookworm/internal/screens/summary"
	sess "github.com/abhisek/bookworm/internal/session"
	"github.com/abhisek/bookworm/internal/speech"
	"github.com/abhisek/bookworm/internal/ui/components"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func testBook() *quiz.Book {
	return &quiz.Book{
		ID:     "peter-rabbit",
		Title:  "The Tale of Peter Rabbit",
		Author: "Beatrix Potter",
		Questions: []quiz.Question{
			{
				ID:       "peter-1",
				Number:   1,
				Prompt:   "Is this story fiction or nonfiction?",
				Label:    "Genre",
				Kind:     quiz.AnswerFreeText,
				Endpoint: "/check/genre",
			},
			{
				ID:       "peter-2",
				Number:   2,
				Prompt:   "Who chased Peter out of the garden?",
				Label:    "Character",
				Kind:     quiz.AnswerChoice,
				Choices:  []string{"Mr. McGregor", "Mrs. Rabbit", "Benjamin Bunny"},
				Endpoint: "/check/character",
			},
		},
	}
}

func testScreen(startAt int) *QuestionScreen {
	book := testBook()
	log := zerolog.Nop()
	workflow := quiz.NewWorkflow(scoring.NewMockScorer(), log)
	svc := speech.NewServiceWithEngines(log)
	session := sess.New(book, nil, nil, log)

	s := New(book, startAt, workflow, svc, nil, session)
	s.Init()
	return s
}

// submitAnswer types the answer, presses enter, and delivers the result
// the way the check command would.
func submitAnswer(t *testing.T, s *QuestionScreen, answer string, fb *scoring.Feedback) *QuestionScreen {
	t.Helper()
	s.input.Model.SetValue(answer)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuestionScreen)
	if qs.st.Phase() != quiz.PhaseChecking {
		t.Fatalf("phase after submit = %q, want %q", qs.st.Phase(), quiz.PhaseChecking)
	}

	scr, _ = qs.Update(checkResultMsg{Answer: answer, Feedback: fb})
	return scr.(*QuestionScreen)
}

func TestQuestionScreen_Title(t *testing.T) {
	s := testScreen(1)
	if s.Title() != "The Tale of Peter Rabbit" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestQuestionScreen_StartsAtResumePoint(t *testing.T) {
	s := testScreen(2)
	if s.q.Number != 2 {
		t.Errorf("question number = %d, want 2", s.q.Number)
	}

	// An out-of-range start falls back to the first question.
	s = testScreen(9)
	if s.q.Number != 1 {
		t.Errorf("question number = %d, want 1", s.q.Number)
	}
}

func TestQuestionScreen_EmptyAnswerIgnored(t *testing.T) {
	s := testScreen(1)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuestionScreen)

	if qs.st.Phase() != quiz.PhaseUnanswered {
		t.Errorf("phase = %q, want unanswered", qs.st.Phase())
	}
}

func TestQuestionScreen_CorrectAnswer(t *testing.T) {
	s := testScreen(1)
	s = submitAnswer(t, s, "Fiction", &scoring.Feedback{
		Correct: true,
		Message: "Peter Rabbit is a made-up story.",
	})

	if s.st.Phase() != quiz.PhaseCorrect {
		t.Errorf("phase = %q, want correct", s.st.Phase())
	}
	correct, total := s.Score()
	if correct != 1 || total != 2 {
		t.Errorf("score = %d/%d, want 1/2", correct, total)
	}

	view := s.View(100, 30)
	if !strings.Contains(view, "Excellent!") {
		t.Error("expected correct banner in view")
	}
}

func TestQuestionScreen_IncorrectAnswer(t *testing.T) {
	s := testScreen(1)
	s = submitAnswer(t, s, "Nonfiction", &scoring.Feedback{
		Correct: false,
		Message: "Think about whether rabbits can talk.",
	})

	if s.st.Phase() != quiz.PhaseIncorrect {
		t.Errorf("phase = %q, want incorrect", s.st.Phase())
	}
	correct, _ := s.Score()
	if correct != 0 {
		t.Errorf("score = %d, want 0", correct)
	}

	view := s.View(100, 30)
	if !strings.Contains(view, "Not quite right") {
		t.Error("expected incorrect banner in view")
	}
}

func TestQuestionScreen_FrozenWhileChecking(t *testing.T) {
	s := testScreen(1)
	s.input.Model.SetValue("Fiction")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuestionScreen)

	// Typing and re-submitting while the check is in flight do nothing.
	scr, _ = qs.Update(keyPress('x'))
	qs = scr.(*QuestionScreen)
	if qs.input.Value() != "Fiction" {
		t.Errorf("input changed while checking: %q", qs.input.Value())
	}
	scr, _ = qs.Update(specialKey(tea.KeyEnter))
	qs = scr.(*QuestionScreen)
	if qs.st.Phase() != quiz.PhaseChecking {
		t.Errorf("phase = %q, want checking", qs.st.Phase())
	}
}

func TestQuestionScreen_AnswerNeverShownWithoutReveal(t *testing.T) {
	s := testScreen(1)
	s = submitAnswer(t, s, "Nonfiction", &scoring.Feedback{
		Correct:       false,
		Message:       "Have another look at the story.",
		CorrectAnswer: "Fiction",
		ShowAnswer:    false,
	})

	view := s.View(100, 30)
	if strings.Contains(view, "The correct answer is") {
		t.Error("answer revealed without the server flag")
	}
	if strings.Contains(view, "Fiction") {
		t.Error("correct answer leaked into the view")
	}
}

func TestQuestionScreen_AnswerShownWhenRevealed(t *testing.T) {
	s := testScreen(1)
	s = submitAnswer(t, s, "Nonfiction", &scoring.Feedback{
		Correct:       false,
		Message:       "That was the last try.",
		CorrectAnswer: "Fiction",
		ShowAnswer:    true,
	})

	view := s.View(100, 30)
	if !strings.Contains(view, "The correct answer is: Fiction") {
		t.Error("expected revealed answer in view")
	}
}

func TestQuestionScreen_TryAgainResets(t *testing.T) {
	s := testScreen(1)
	s = submitAnswer(t, s, "Nonfiction", &scoring.Feedback{Correct: false, Message: "Not this time."})

	var scr screen.Screen = s
	scr, _ = scr.Update(ctrlKey('t'))
	qs := scr.(*QuestionScreen)

	if qs.st.Phase() != quiz.PhaseUnanswered {
		t.Errorf("phase = %q, want unanswered", qs.st.Phase())
	}
	if qs.input.Value() != "" {
		t.Errorf("input not cleared: %q", qs.input.Value())
	}
}

func TestQuestionScreen_TryAgainOnlyWhenIncorrect(t *testing.T) {
	s := testScreen(1)
	s = submitAnswer(t, s, "Fiction", &scoring.Feedback{Correct: true, Message: "Yes!"})

	var scr screen.Screen = s
	scr, _ = scr.Update(ctrlKey('t'))
	qs := scr.(*QuestionScreen)

	if qs.st.Phase() != quiz.PhaseCorrect {
		t.Errorf("phase = %q, want correct", qs.st.Phase())
	}
}

func TestQuestionScreen_StaleResultDropped(t *testing.T) {
	s := testScreen(1)
	s = submitAnswer(t, s, "Nonfiction", &scoring.Feedback{Correct: false, Message: "No."})

	var scr screen.Screen = s
	scr, _ = scr.Update(ctrlKey('t'))
	qs := scr.(*QuestionScreen)

	// A result for the abandoned check arrives after the reset.
	scr, _ = qs.Update(checkResultMsg{
		Answer:   "Nonfiction",
		Feedback: &scoring.Feedback{Correct: false, Message: "No."},
	})
	qs = scr.(*QuestionScreen)

	if qs.st.Phase() != quiz.PhaseUnanswered {
		t.Errorf("phase = %q, want unanswered", qs.st.Phase())
	}
}

func TestQuestionScreen_ProceedAdvances(t *testing.T) {
	s := testScreen(1)
	s = submitAnswer(t, s, "Fiction", &scoring.Feedback{Correct: true, Message: "Yes!"})

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuestionScreen)

	if qs.q.Number != 2 {
		t.Errorf("question number = %d, want 2", qs.q.Number)
	}
	if qs.st.Phase() != quiz.PhaseUnanswered {
		t.Errorf("phase = %q, want unanswered", qs.st.Phase())
	}
}

func TestQuestionScreen_ProceedFromIncorrect(t *testing.T) {
	s := testScreen(1)
	s = submitAnswer(t, s, "Nonfiction", &scoring.Feedback{Correct: false, Message: "No."})

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('n'))
	qs := scr.(*QuestionScreen)

	if qs.q.Number != 2 {
		t.Errorf("question number = %d, want 2", qs.q.Number)
	}
}

func TestQuestionScreen_ChoiceLocksOnSubmit(t *testing.T) {
	s := testScreen(2)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuestionScreen)

	if qs.st.Phase() != quiz.PhaseChecking {
		t.Fatalf("phase = %q, want checking", qs.st.Phase())
	}
	if !qs.choices.Locked {
		t.Error("choices not locked while checking")
	}

	scr, _ = qs.Update(checkResultMsg{
		Answer:   qs.choices.Value(),
		Feedback: &scoring.Feedback{Correct: false, Message: "Try once more."},
	})
	qs = scr.(*QuestionScreen)
	scr, _ = qs.Update(ctrlKey('t'))
	qs = scr.(*QuestionScreen)

	if qs.choices.Locked {
		t.Error("choices still locked after try again")
	}
	if qs.choices.Verdict != components.VerdictNone {
		t.Errorf("verdict = %v, want none after try again", qs.choices.Verdict)
	}
}

func TestQuestionScreen_FinishReplacesWithSummary(t *testing.T) {
	s := testScreen(2)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuestionScreen)
	scr, _ = qs.Update(checkResultMsg{
		Answer:   "Mr. McGregor",
		Feedback: &scoring.Feedback{Correct: true, Message: "He did!"},
	})
	qs = scr.(*QuestionScreen)

	_, cmd := qs.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command after finishing the book")
	}
	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want router.ReplaceScreenMsg", msg)
	}
	if _, ok := replace.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("replacement screen = %T, want summary", replace.Screen)
	}
}

func TestQuestionScreen_MisspelledHighlight(t *testing.T) {
	s := testScreen(1)
	s = submitAnswer(t, s, "ficshun", &scoring.Feedback{
		Correct:         false,
		Message:         "Check your spelling.",
		MisspelledWords: []string{"ficshun"},
	})

	view := s.View(100, 30)
	if !strings.Contains(view, "You wrote:") {
		t.Error("expected the echoed answer for misspelling feedback")
	}
}
