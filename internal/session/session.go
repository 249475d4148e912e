// Package session tracks one reading session: a pass over a single
// book's questions, from start through the summary screen.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/bookworm/internal/quiz"
	"github.com/abhisek/bookworm/internal/scoring"
	"github.com/abhisek/bookworm/internal/store"
)

// Session accumulates results while the reader works through a book.
// Persistence is best-effort: a broken database degrades to an
// in-memory session rather than blocking the reader.
type Session struct {
	ID   string
	Book *quiz.Book

	events    store.EventRepo
	snapshots store.SnapshotRepo
	log       zerolog.Logger

	startTime     time.Time
	questionStart time.Time

	answered     int
	correct      int
	attempts     map[string]int // question ID -> tries so far
	firstTry     int
	questionDone map[string]bool
}

// New creates a session for the given book. events and snapshots may
// be nil when the store could not be opened.
func New(book *quiz.Book, events store.EventRepo, snapshots store.SnapshotRepo, log zerolog.Logger) *Session {
	return &Session{
		ID:           uuid.NewString(),
		Book:         book,
		events:       events,
		snapshots:    snapshots,
		log:          log,
		attempts:     make(map[string]int),
		questionDone: make(map[string]bool),
	}
}

// Start marks the session begun and records the start event.
func (s *Session) Start(ctx context.Context) {
	s.startTime = time.Now()
	if s.events == nil {
		return
	}
	err := s.events.AppendSession(ctx, store.SessionEventData{
		SessionID: s.ID,
		Action:    "start",
		BookID:    s.Book.ID,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("recording session start failed")
	}
}

// QuestionShown marks the moment a question appears, for answer timing.
func (s *Session) QuestionShown() {
	s.questionStart = time.Now()
}

// RecordAnswer folds one checked answer into the session and appends
// an answer event.
func (s *Session) RecordAnswer(ctx context.Context, q *quiz.Question, answer string, fb *scoring.Feedback) {
	s.attempts[q.ID]++
	attempt := s.attempts[q.ID]

	// Count each question once, on its first attempt.
	if !s.questionDone[q.ID] {
		s.questionDone[q.ID] = true
		s.answered++
		if fb.Correct {
			s.firstTry++
		}
	}
	if fb.Correct {
		s.correct++
	}

	if s.events == nil {
		return
	}
	format := "free_text"
	if q.Kind == quiz.AnswerChoice {
		format = "choice"
	}
	err := s.events.AppendAnswer(ctx, store.AnswerEventData{
		SessionID:     s.ID,
		BookID:        s.Book.ID,
		QuestionID:    q.ID,
		Prompt:        q.Prompt,
		LearnerAnswer: answer,
		Correct:       fb.Correct,
		AnswerShown:   fb.ShowAnswer,
		Attempt:       attempt,
		TimeMs:        int(time.Since(s.questionStart).Milliseconds()),
		AnswerFormat:  format,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("recording answer failed")
	}
}

// End records the end event and snapshots progress so the reader can
// resume the book later. nextQuestion is the question number to resume
// at; completed marks the whole book finished.
func (s *Session) End(ctx context.Context, nextQuestion int, completed bool) {
	if s.events != nil {
		err := s.events.AppendSession(ctx, store.SessionEventData{
			SessionID:         s.ID,
			Action:            "end",
			BookID:            s.Book.ID,
			QuestionsAnswered: s.answered,
			CorrectAnswers:    s.correct,
			DurationSecs:      int(time.Since(s.startTime).Seconds()),
		})
		if err != nil {
			s.log.Warn().Err(err).Msg("recording session end failed")
		}
	}
	s.snapshotProgress(ctx, nextQuestion, completed)
}

// snapshotProgress merges this book's progress into the latest snapshot
// and saves a new one.
func (s *Session) snapshotProgress(ctx context.Context, nextQuestion int, completed bool) {
	if s.snapshots == nil {
		return
	}

	data := store.SnapshotData{Version: 1, Books: map[string]store.BookProgress{}}
	if prev, err := s.snapshots.Latest(ctx); err != nil {
		s.log.Warn().Err(err).Msg("loading previous snapshot failed")
	} else if prev != nil && prev.Data.Books != nil {
		data = prev.Data
	}
	data.Books[s.Book.ID] = store.BookProgress{
		BookID:       s.Book.ID,
		NextQuestion: nextQuestion,
		Completed:    completed,
	}

	err := s.snapshots.Save(ctx, &store.Snapshot{Timestamp: time.Now().UTC(), Data: data})
	if err != nil {
		s.log.Warn().Err(err).Msg("saving progress snapshot failed")
		return
	}
	if err := s.snapshots.Prune(ctx, 10); err != nil {
		s.log.Warn().Err(err).Msg("pruning snapshots failed")
	}
}

// ResumePoint returns the question number to resume book at, based on
// the latest snapshot. 1 when the book has never been started or was
// completed.
func ResumePoint(ctx context.Context, snapshots store.SnapshotRepo, book *quiz.Book) int {
	if snapshots == nil {
		return 1
	}
	snap, err := snapshots.Latest(ctx)
	if err != nil || snap == nil {
		return 1
	}
	p, ok := snap.Data.Books[book.ID]
	if !ok || p.Completed || p.NextQuestion < 1 || p.NextQuestion > len(book.Questions) {
		return 1
	}
	return p.NextQuestion
}
