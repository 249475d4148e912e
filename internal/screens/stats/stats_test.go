package stats

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/bookworm/internal/quiz"
	"github.com/abhisek/bookworm/internal/store"
)

type stubEventRepo struct {
	books  []store.BookStats
	speech []store.SpeechStats
	err    error
}

func (s *stubEventRepo) AppendAnswer(context.Context, store.AnswerEventData) error   { return nil }
func (s *stubEventRepo) AppendSession(context.Context, store.SessionEventData) error { return nil }
func (s *stubEventRepo) AppendSpeech(context.Context, store.SpeechEventData) error   { return nil }
func (s *stubEventRepo) Reset(context.Context) error                                 { return nil }
func (s *stubEventRepo) BookStats(context.Context) ([]store.BookStats, error) {
	return s.books, s.err
}
func (s *stubEventRepo) SpeechStats(context.Context) ([]store.SpeechStats, error) {
	return s.speech, s.err
}

func testCatalog() *quiz.Catalog {
	return &quiz.Catalog{Books: []quiz.Book{
		{ID: "peter-rabbit", Title: "The Tale of Peter Rabbit"},
	}}
}

func TestStatsScreen_ShowsBookTitles(t *testing.T) {
	repo := &stubEventRepo{
		books:  []store.BookStats{{BookID: "peter-rabbit", Answered: 10, Correct: 7}},
		speech: []store.SpeechStats{{Backend: "elevenlabs", Attempts: 5, Failures: 1}},
	}
	s := New(repo, testCatalog())

	view := s.View(100, 30)
	if !strings.Contains(view, "The Tale of Peter Rabbit") {
		t.Error("expected book title in view")
	}
	if !strings.Contains(view, "10 answered, 7 right") {
		t.Error("expected answer counts in view")
	}
	if !strings.Contains(view, "elevenlabs") {
		t.Error("expected speech backend in view")
	}
}

func TestStatsScreen_UnknownBookFallsBackToID(t *testing.T) {
	repo := &stubEventRepo{
		books: []store.BookStats{{BookID: "mystery-book", Answered: 1, Correct: 1}},
	}
	s := New(repo, testCatalog())

	if !strings.Contains(s.View(100, 30), "mystery-book") {
		t.Error("expected raw book ID for unknown book")
	}
}

func TestStatsScreen_Empty(t *testing.T) {
	s := New(&stubEventRepo{}, testCatalog())
	view := s.View(100, 30)
	if !strings.Contains(view, "No questions answered yet") {
		t.Error("expected empty-state message")
	}
}

func TestStatsScreen_LoadError(t *testing.T) {
	s := New(&stubEventRepo{err: errors.New("db locked")}, testCatalog())
	view := s.View(100, 30)
	if !strings.Contains(view, "Could not load stats") {
		t.Error("expected error message in view")
	}
}
