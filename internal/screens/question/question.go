package question

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bookworm/internal/audio"
	"github.com/abhisek/bookworm/internal/quiz"
	"github.com/abhisek/bookworm/internal/router"
	"github.com/abhisek/bookworm/internal/screen"
	sess "github.com/abhisek/bookworm/internal/session"
	"github.com/abhisek/bookworm/internal/screens/summary"
	"github.com/abhisek/bookworm/internal/speech"
	"github.com/abhisek/bookworm/internal/ui/components"
	"github.com/abhisek/bookworm/internal/ui/layout"
)

const spinnerInterval = 100 * time.Millisecond

// QuestionScreen walks the reader through one book's questions: intro
// audio, answer entry, server check, spoken feedback, retry or advance.
type QuestionScreen struct {
	book     *quiz.Book
	workflow *quiz.Workflow
	speech   *speech.Service
	intro    *audio.IntroPlayer
	session  *sess.Session

	q  *quiz.Question
	st *quiz.State

	input   components.TextInput
	choices components.ChoiceList

	lastAnswer   string
	introFailed  bool
	introCancel  context.CancelFunc
	muted        bool
	spinnerFrame int
	correctCount int
	ended        bool
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)
var _ screen.ScoreProvider = (*QuestionScreen)(nil)
var _ screen.Leaver = (*QuestionScreen)(nil)

// New creates a QuestionScreen starting at question number startAt.
func New(book *quiz.Book, startAt int, workflow *quiz.Workflow, speechSvc *speech.Service, intro *audio.IntroPlayer, session *sess.Session) *QuestionScreen {
	s := &QuestionScreen{
		book:     book,
		workflow: workflow,
		speech:   speechSvc,
		intro:    intro,
		session:  session,
	}
	if q := book.QuestionAt(startAt); q != nil {
		s.q = q
	} else {
		s.q = &book.Questions[0]
	}
	s.st = quiz.NewState()
	return s
}

func (s *QuestionScreen) Init() tea.Cmd {
	s.session.Start(context.Background())
	return s.loadQuestion(s.q)
}

func (s *QuestionScreen) Title() string {
	return s.book.Title
}

// Score feeds the header's running score.
func (s *QuestionScreen) Score() (int, int) {
	return s.correctCount, len(s.book.Questions)
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	switch s.st.Phase() {
	case quiz.PhaseChecking:
		return []layout.KeyHint{{Key: "...", Description: "Checking"}}
	case quiz.PhaseCorrect:
		return s.resolvedHints(false)
	case quiz.PhaseIncorrect:
		return s.resolvedHints(true)
	default:
		hints := []layout.KeyHint{
			{Key: "Enter", Description: "Check answer"},
			{Key: "Esc", Description: "Back"},
		}
		if s.introFailed {
			hints = append(hints, layout.KeyHint{Key: "Ctrl+P", Description: "Play intro"})
		}
		return hints
	}
}

func (s *QuestionScreen) resolvedHints(retry bool) []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Next"}}
	if retry {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+T", Description: "Try again"})
	}
	if s.speech.Enabled() {
		hints = append(hints,
			layout.KeyHint{Key: "Ctrl+R", Description: "Hear again"},
			layout.KeyHint{Key: "Ctrl+S", Description: s.muteLabel()},
		)
	}
	return hints
}

func (s *QuestionScreen) muteLabel() string {
	if s.muted {
		return "Voice on"
	}
	return "Voice off"
}

// Leave releases audio and closes out the session when the reader backs
// out mid-book.
func (s *QuestionScreen) Leave() {
	if s.introCancel != nil {
		s.introCancel()
	}
	s.speech.Stop()
	if !s.ended {
		s.ended = true
		s.session.End(context.Background(), s.q.Number, false)
	}
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case checkResultMsg:
		return s.handleCheckResult(msg)

	case narrateMsg:
		return s, s.narrate(quiz.NarrationText(s.st.Feedback()))

	case narrationDoneMsg, introDoneMsg:
		return s.handleAudioDone(msg)

	case spinnerTickMsg:
		if s.st.Status() != quiz.StatusSubmitting {
			return s, nil
		}
		s.spinnerFrame++
		return s, spinnerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forward(msg)
}

func (s *QuestionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// The voice toggle works in every phase.
	if key == "ctrl+s" && s.speech.Enabled() {
		s.muted = !s.muted
		if s.muted {
			s.speech.Stop()
		}
		return s, nil
	}

	switch s.st.Phase() {
	case quiz.PhaseUnanswered:
		switch key {
		case "enter":
			return s.submit()
		case "ctrl+p":
			if s.introFailed {
				return s, s.playIntroNow()
			}
			return s, nil
		}
		return s.forward(msg)

	case quiz.PhaseChecking:
		// Input is frozen while the check is in flight.
		return s, nil

	case quiz.PhaseCorrect:
		switch key {
		case "enter", "n":
			return s.proceed()
		case "ctrl+r":
			return s, s.replay()
		}

	case quiz.PhaseIncorrect:
		switch key {
		case "ctrl+t", "t":
			return s.tryAgain()
		case "enter", "n":
			return s.proceed()
		case "ctrl+r":
			return s, s.replay()
		}
	}

	return s, nil
}

// forward passes a message to whichever answer widget is active.
func (s *QuestionScreen) forward(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.st.Phase() != quiz.PhaseUnanswered {
		return s, nil
	}
	var cmd tea.Cmd
	if s.q.Kind == quiz.AnswerChoice {
		s.choices, cmd = s.choices.Update(msg)
	} else {
		s.input, cmd = s.input.Update(msg)
	}
	return s, cmd
}

// loadQuestion resets the screen for q and starts its intro audio.
func (s *QuestionScreen) loadQuestion(q *quiz.Question) tea.Cmd {
	s.q = q
	s.st = quiz.NewState()
	s.lastAnswer = ""
	s.introFailed = false
	s.session.QuestionShown()

	cmds := []tea.Cmd{s.playIntro()}
	if q.Kind == quiz.AnswerChoice {
		s.choices = components.NewChoiceList(q.Choices)
	} else {
		s.input = components.NewTextInput("Type your answer...", 80)
		cmds = append(cmds, s.input.Init())
	}
	return tea.Batch(cmds...)
}

// submit sends the answer to the checker.
func (s *QuestionScreen) submit() (screen.Screen, tea.Cmd) {
	var answer string
	if s.q.Kind == quiz.AnswerChoice {
		answer = s.choices.Value()
	} else {
		answer = s.input.Value()
	}
	if !s.st.CanSubmit(answer) {
		return s, nil
	}
	if err := s.st.BeginCheck(answer); err != nil {
		return s, nil
	}
	s.lastAnswer = s.st.Answer()
	if s.q.Kind == quiz.AnswerChoice {
		s.choices.Freeze()
	}

	// The intro should not talk over the feedback.
	if s.introCancel != nil {
		s.introCancel()
	}

	q, answerText := s.q, s.st.Answer()
	check := func() tea.Msg {
		fb := s.workflow.Check(context.Background(), q, answerText)
		return checkResultMsg{Answer: answerText, Feedback: fb}
	}
	return s, tea.Batch(check, spinnerTick())
}

func (s *QuestionScreen) handleCheckResult(msg checkResultMsg) (screen.Screen, tea.Cmd) {
	if err := s.st.Resolve(msg.Feedback); err != nil {
		// A stale result after try-again or navigation. Drop it.
		return s, nil
	}
	s.session.RecordAnswer(context.Background(), s.q, msg.Answer, msg.Feedback)

	if msg.Feedback.Correct {
		s.correctCount++
		s.input.Submit(true)
		s.choices.Verdict = components.VerdictCorrect
	} else {
		s.input.Submit(false)
		s.choices.Verdict = components.VerdictIncorrect
	}

	if s.muted || !s.speech.Enabled() {
		return s, nil
	}
	return s, tea.Tick(quiz.NarrationDelay, func(time.Time) tea.Msg {
		return narrateMsg{}
	})
}

func (s *QuestionScreen) tryAgain() (screen.Screen, tea.Cmd) {
	if err := s.st.TryAgain(); err != nil {
		return s, nil
	}
	s.speech.Stop()
	s.session.QuestionShown()
	if s.q.Kind == quiz.AnswerChoice {
		s.choices.Unfreeze()
		return s, nil
	}
	s.input.Reset()
	return s, s.input.Init()
}

func (s *QuestionScreen) proceed() (screen.Screen, tea.Cmd) {
	if err := s.st.Proceed(); err != nil {
		return s, nil
	}
	s.speech.Stop()

	next := s.book.Next(s.q)
	if next == nil {
		return s.finishBook()
	}
	return s, s.loadQuestion(next)
}

func (s *QuestionScreen) finishBook() (screen.Screen, tea.Cmd) {
	s.ended = true
	s.session.End(context.Background(), 1, true)
	sum := s.session.BuildSummary()
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

// playIntro plays the question's intro clip after the on-screen settle
// delay. Cancelled when the reader submits or moves on.
func (s *QuestionScreen) playIntro() tea.Cmd {
	if s.intro == nil || s.q.IntroClip == "" {
		return nil
	}
	if s.introCancel != nil {
		s.introCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.introCancel = cancel
	clip := s.q.IntroClip
	return func() tea.Msg {
		return introDoneMsg{Err: s.intro.Play(ctx, clip)}
	}
}

// playIntroNow is the manual control after autoplay fails.
func (s *QuestionScreen) playIntroNow() tea.Cmd {
	if s.intro == nil {
		return nil
	}
	if s.introCancel != nil {
		s.introCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.introCancel = cancel
	clip := s.q.IntroClip
	return func() tea.Msg {
		return introDoneMsg{Err: s.intro.PlayNow(ctx, clip)}
	}
}

func (s *QuestionScreen) handleAudioDone(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(introDoneMsg); ok {
		if m.Err != nil && !errors.Is(m.Err, context.Canceled) {
			s.introFailed = true
		} else {
			s.introFailed = false
		}
	}
	// Narration completion is informational.
	return s, nil
}

// narrate speaks text without blocking the UI loop.
func (s *QuestionScreen) narrate(text string) tea.Cmd {
	if s.muted || text == "" {
		return nil
	}
	svc := s.speech
	return func() tea.Msg {
		return narrationDoneMsg{Err: svc.Speak(context.Background(), text)}
	}
}

// replay re-speaks the current feedback without the verdict prefix.
func (s *QuestionScreen) replay() tea.Cmd {
	fb := s.st.Feedback()
	if fb == nil {
		return nil
	}
	return s.narrate(quiz.ReplayText(fb))
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
