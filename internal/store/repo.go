package store

import (
	"context"
	"time"
)

// AnswerEventData captures one checked answer.
type AnswerEventData struct {
	SessionID     string
	BookID        string
	QuestionID    string
	Prompt        string
	LearnerAnswer string
	Correct       bool
	AnswerShown   bool
	Attempt       int
	TimeMs        int
	AnswerFormat  string // "free_text" or "choice"
}

// SessionEventData captures a session start or end.
type SessionEventData struct {
	SessionID         string
	Action            string // "start" or "end"
	BookID            string
	QuestionsAnswered int
	CorrectAnswers    int
	DurationSecs      int
}

// SpeechEventData captures one synthesis attempt.
type SpeechEventData struct {
	Backend   string
	LatencyMs int64
	Success   bool
	Fallback  bool
}

// BookStats aggregates a reader's history for one book.
type BookStats struct {
	BookID   string
	Answered int
	Correct  int
}

// SpeechStats aggregates synthesis attempts per backend.
type SpeechStats struct {
	Backend  string
	Attempts int
	Failures int
}

// EventRepo provides append and aggregate access to domain events.
type EventRepo interface {
	// AppendAnswer records a checked answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendSession records a session start or end.
	AppendSession(ctx context.Context, data SessionEventData) error

	// AppendSpeech records a synthesis attempt.
	AppendSpeech(ctx context.Context, data SpeechEventData) error

	// BookStats aggregates answers per book across all sessions.
	BookStats(ctx context.Context) ([]BookStats, error)

	// SpeechStats aggregates synthesis attempts per backend.
	SpeechStats(ctx context.Context) ([]SpeechStats, error)

	// Reset deletes every event. Progress snapshots are deleted
	// separately through SnapshotRepo.
	Reset(ctx context.Context) error
}

// BookProgress is the per-book portion of a snapshot.
type BookProgress struct {
	BookID       string `json:"book_id"`
	NextQuestion int    `json:"next_question"`
	Completed    bool   `json:"completed"`
}

// SnapshotData captures the reader's progress at a point in time.
type SnapshotData struct {
	Version int                     `json:"version"`
	Books   map[string]BookProgress `json:"books"`
}

// Snapshot represents a point-in-time capture of reader progress.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages reader progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error

	// Reset deletes every snapshot.
	Reset(ctx context.Context) error
}
