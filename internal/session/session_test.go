package session

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/abhisek/bookworm/internal/quiz"
	"github.com/abhisek/bookworm/internal/scoring"
	"github.com/abhisek/bookworm/internal/store"
)

func testBook() *quiz.Book {
	return &quiz.Book{
		ID:     "goldilocks",
		Title:  "Goldilocks and the Three Bears",
		Author: "Traditional",
		Questions: []quiz.Question{
			{ID: "goldilocks-1", Number: 1, Prompt: "What is the title?", Kind: quiz.AnswerFreeText, Endpoint: "/api/check-question1/"},
			{ID: "goldilocks-2", Number: 2, Prompt: "Who wrote it?", Kind: quiz.AnswerFreeText, Endpoint: "/api/check-question2/"},
		},
	}
}

type recordingRepo struct {
	store.EventRepo
	answers  []store.AnswerEventData
	sessions []store.SessionEventData
}

func (r *recordingRepo) AppendAnswer(_ context.Context, d store.AnswerEventData) error {
	r.answers = append(r.answers, d)
	return nil
}

func (r *recordingRepo) AppendSession(_ context.Context, d store.SessionEventData) error {
	r.sessions = append(r.sessions, d)
	return nil
}

func TestSessionCountsFirstAttemptOnce(t *testing.T) {
	book := testBook()
	repo := &recordingRepo{}
	s := New(book, repo, nil, zerolog.Nop())
	s.Start(context.Background())
	s.QuestionShown()

	q := &book.Questions[0]
	s.RecordAnswer(context.Background(), q, "wrong", &scoring.Feedback{Correct: false})
	s.RecordAnswer(context.Background(), q, "Goldilocks and the Three Bears", &scoring.Feedback{Correct: true})

	sum := s.BuildSummary()
	if sum.TotalQuestions != 1 {
		t.Errorf("questions = %d, want 1 despite two attempts", sum.TotalQuestions)
	}
	if sum.FirstTry != 0 {
		t.Errorf("first-try = %d, want 0", sum.FirstTry)
	}
	if sum.TotalCorrect != 1 {
		t.Errorf("correct = %d, want 1", sum.TotalCorrect)
	}

	if len(repo.answers) != 2 {
		t.Fatalf("answer events = %d, want 2", len(repo.answers))
	}
	if repo.answers[0].Attempt != 1 || repo.answers[1].Attempt != 2 {
		t.Errorf("attempts = %d, %d", repo.answers[0].Attempt, repo.answers[1].Attempt)
	}
}

func TestSessionEvents(t *testing.T) {
	book := testBook()
	repo := &recordingRepo{}
	s := New(book, repo, nil, zerolog.Nop())
	s.Start(context.Background())
	s.QuestionShown()
	s.RecordAnswer(context.Background(), &book.Questions[0], "x", &scoring.Feedback{Correct: true})
	s.End(context.Background(), 2, false)

	if len(repo.sessions) != 2 {
		t.Fatalf("session events = %d, want start and end", len(repo.sessions))
	}
	if repo.sessions[0].Action != "start" || repo.sessions[0].BookID != "goldilocks" {
		t.Errorf("start event = %+v", repo.sessions[0])
	}
	end := repo.sessions[1]
	if end.Action != "end" || end.QuestionsAnswered != 1 || end.CorrectAnswers != 1 {
		t.Errorf("end event = %+v", end)
	}
}

func TestSessionWithoutStoreIsInMemory(t *testing.T) {
	book := testBook()
	s := New(book, nil, nil, zerolog.Nop())
	s.Start(context.Background())
	s.QuestionShown()
	s.RecordAnswer(context.Background(), &book.Questions[0], "x", &scoring.Feedback{Correct: true})
	s.End(context.Background(), 2, false)

	sum := s.BuildSummary()
	if sum.TotalQuestions != 1 || sum.TotalCorrect != 1 || sum.FirstTry != 1 {
		t.Errorf("summary = %+v", sum)
	}
}

type snapshotStub struct {
	saved  []*store.Snapshot
	latest *store.Snapshot
}

func (s *snapshotStub) Save(_ context.Context, snap *store.Snapshot) error {
	s.saved = append(s.saved, snap)
	s.latest = snap
	return nil
}

func (s *snapshotStub) Latest(_ context.Context) (*store.Snapshot, error) { return s.latest, nil }
func (s *snapshotStub) Prune(_ context.Context, _ int) error              { return nil }
func (s *snapshotStub) Reset(_ context.Context) error                     { s.latest = nil; return nil }

func TestEndSnapshotsProgress(t *testing.T) {
	book := testBook()
	snaps := &snapshotStub{
		latest: &store.Snapshot{Data: store.SnapshotData{
			Version: 1,
			Books: map[string]store.BookProgress{
				"peter-rabbit": {BookID: "peter-rabbit", NextQuestion: 7},
			},
		}},
	}
	s := New(book, nil, snaps, zerolog.Nop())
	s.Start(context.Background())
	s.End(context.Background(), 2, false)

	if len(snaps.saved) != 1 {
		t.Fatalf("snapshots saved = %d, want 1", len(snaps.saved))
	}
	data := snaps.saved[0].Data
	if p := data.Books["goldilocks"]; p.NextQuestion != 2 || p.Completed {
		t.Errorf("goldilocks progress = %+v", p)
	}
	// Other books' progress carries over.
	if p := data.Books["peter-rabbit"]; p.NextQuestion != 7 {
		t.Errorf("peter-rabbit progress lost: %+v", p)
	}
}

func TestResumePoint(t *testing.T) {
	book := testBook()

	if got := ResumePoint(context.Background(), nil, book); got != 1 {
		t.Errorf("no store: resume = %d, want 1", got)
	}

	snaps := &snapshotStub{latest: &store.Snapshot{Data: store.SnapshotData{
		Books: map[string]store.BookProgress{
			"goldilocks": {BookID: "goldilocks", NextQuestion: 2},
		},
	}}}
	if got := ResumePoint(context.Background(), snaps, book); got != 2 {
		t.Errorf("resume = %d, want 2", got)
	}

	snaps.latest.Data.Books["goldilocks"] = store.BookProgress{BookID: "goldilocks", NextQuestion: 2, Completed: true}
	if got := ResumePoint(context.Background(), snaps, book); got != 1 {
		t.Errorf("completed book: resume = %d, want 1", got)
	}

	snaps.latest.Data.Books["goldilocks"] = store.BookProgress{BookID: "goldilocks", NextQuestion: 99}
	if got := ResumePoint(context.Background(), snaps, book); got != 1 {
		t.Errorf("out of range: resume = %d, want 1", got)
	}
}
